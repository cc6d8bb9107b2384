package seq

import "github.com/npillmayer/fingertree/persistent/fingertree"

// Builder accumulates elements into a Sequence. It mirrors the
// obtain-a-handle, mutate-through-it, Build()-to-freeze shape of
// transactional builders elsewhere in the persistent-collection ecosystem
// (e.g. a radix tree's Txn): a Builder is not itself persistent and must
// not be shared between goroutines, but every Sequence it eventually
// produces via Build is an ordinary, freely shareable, fully invariant-
// satisfying value. Every push is already an O(1)-amortized fingertree
// operation, so a Builder adds no algorithmic trick of its own — its
// purpose is solely to give bulk construction (OfSlice, OfIterator) a
// named, reusable single-pass entry point rather than repeating the same
// loop at every call site.
type Builder[T any] struct {
	tree fingertree.Tree[T]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{tree: fingertree.Empty[T]()}
}

// PushBack appends x, returning the Builder for chaining.
func (b *Builder[T]) PushBack(x T) *Builder[T] {
	b.tree = b.tree.PushRight(x)
	return b
}

// PushFront prepends x, returning the Builder for chaining.
func (b *Builder[T]) PushFront(x T) *Builder[T] {
	b.tree = b.tree.PushLeft(x)
	return b
}

// Len reports how many elements have been pushed so far.
func (b *Builder[T]) Len() int {
	return b.tree.Measure()
}

// Build finalizes the Builder into a Sequence. The Builder must not be
// used afterwards.
func (b *Builder[T]) Build() Sequence[T] {
	tracer().Debugf("seq: builder: finalizing %d-element sequence", b.tree.Measure())
	return Sequence[T]{tree: b.tree}
}
