package seq

import (
	"github.com/npillmayer/fingertree/persistent/fingertree"
)

// Sequence is an immutable, persistent ordered list. The zero value is the
// empty sequence and is ready to use.
type Sequence[T any] struct {
	tree  fingertree.Tree[T]
	debug bool
}

// Empty returns the canonical empty sequence.
func Empty[T any](opts ...Option) Sequence[T] {
	c := newConfig(opts)
	return Sequence[T]{tree: fingertree.Empty[T](), debug: c.debugCheck}
}

// Of builds a sequence from the given elements, in order.
func Of[T any](xs ...T) Sequence[T] {
	return OfSlice(xs)
}

// OfSlice builds a sequence from the elements of xs, in order, using a
// Builder so the slice is walked exactly once.
func OfSlice[T any](xs []T, opts ...Option) Sequence[T] {
	c := newConfig(opts)
	b := NewBuilder[T]()
	for _, x := range xs {
		b.PushBack(x)
	}
	return Sequence[T]{tree: b.Build().tree, debug: c.debugCheck}
}

// OfIterator builds a sequence by pulling elements from next until it
// returns ok=false, walking next exactly once. It fails with
// ErrNullArgument if next is nil.
func OfIterator[T any](next func() (T, bool), opts ...Option) (Sequence[T], error) {
	if next == nil {
		return Empty[T](opts...), ErrNullArgument
	}
	c := newConfig(opts)
	b := NewBuilder[T]()
	for {
		x, ok := next()
		if !ok {
			break
		}
		b.PushBack(x)
	}
	return Sequence[T]{tree: b.Build().tree, debug: c.debugCheck}, nil
}

// wrap builds a derived Sequence sharing this one's configuration. In
// self-check mode it walks the new tree and panics on the first violated
// invariant, since that indicates a bug in this package, not a caller
// mistake.
func (s Sequence[T]) wrap(t fingertree.Tree[T]) Sequence[T] {
	if s.debug {
		if err := fingertree.Check(t); err != nil {
			tracer().Debugf("seq: self-check failed: %s", err)
			panic(err)
		}
	}
	return Sequence[T]{tree: t, debug: s.debug}
}

// Count returns the number of elements, in O(1).
func (s Sequence[T]) Count() int { return s.tree.Measure() }

// IsEmpty reports whether Count() == 0.
func (s Sequence[T]) IsEmpty() bool { return s.tree.IsEmpty() }

// First returns the leftmost element. It fails with ErrEmpty if the
// sequence is empty.
func (s Sequence[T]) First() (T, error) {
	v, err := s.tree.Left()
	if err != nil {
		var zero T
		return zero, emptyErr()
	}
	return v, nil
}

// Last returns the rightmost element. It fails with ErrEmpty if the
// sequence is empty.
func (s Sequence[T]) Last() (T, error) {
	v, err := s.tree.Right()
	if err != nil {
		var zero T
		return zero, emptyErr()
	}
	return v, nil
}

// AddFirst returns a new sequence with x inserted at the front.
func (s Sequence[T]) AddFirst(x T) Sequence[T] {
	return s.wrap(s.tree.PushLeft(x))
}

// AddLast returns a new sequence with x inserted at the back.
func (s Sequence[T]) AddLast(x T) Sequence[T] {
	return s.wrap(s.tree.PushRight(x))
}

// DropFirst returns a new sequence with the leftmost element removed. It
// fails with ErrEmpty if the sequence is empty.
func (s Sequence[T]) DropFirst() (Sequence[T], error) {
	_, rest, err := s.tree.PopLeft()
	if err != nil {
		return s, emptyErr()
	}
	return s.wrap(rest), nil
}

// DropLast returns a new sequence with the rightmost element removed. It
// fails with ErrEmpty if the sequence is empty.
func (s Sequence[T]) DropLast() (Sequence[T], error) {
	_, rest, err := s.tree.PopRight()
	if err != nil {
		return s, emptyErr()
	}
	return s.wrap(rest), nil
}

// normalize maps a possibly-negative read-index onto [0, count).
func (s Sequence[T]) normalize(i int) int {
	if i < 0 {
		return i + s.Count()
	}
	return i
}

// Get returns the element at index i. A negative i counts from the end
// (i+count). It fails with ErrOutOfRange if the normalized index is
// outside [0, count).
func (s Sequence[T]) Get(i int) (T, error) {
	v, err := s.tree.Get(s.normalize(i))
	if err != nil {
		var zero T
		return zero, rangeErr("get", i)
	}
	return v, nil
}

// Set returns a new sequence with the element at index i replaced by x.
// Same negative-index rule and error condition as Get.
func (s Sequence[T]) Set(i int, x T) (Sequence[T], error) {
	t2, err := s.tree.Set(s.normalize(i), x)
	if err != nil {
		return s, rangeErr("set", i)
	}
	return s.wrap(t2), nil
}

// Insert returns a new sequence with x inserted before position i. A
// negative i counts from count+1; inserting at count is equivalent to
// AddLast. It fails with ErrOutOfRange if i is outside [-count-1, count].
func (s Sequence[T]) Insert(i int, x T) (Sequence[T], error) {
	count := s.Count()
	idx := i
	if idx < 0 {
		idx = i + count + 1
	}
	if idx < 0 || idx > count {
		return s, rangeErr("insert", i)
	}
	if idx == count {
		return s.AddLast(x), nil
	}
	if idx == 0 {
		return s.AddFirst(x), nil
	}
	left, right, err := s.tree.Split(idx)
	if err != nil {
		return s, rangeErr("insert", i)
	}
	return s.wrap(fingertree.Concat(left.PushRight(x), right)), nil
}

// Remove returns a new sequence with the element at index i removed. Same
// negative-index rule as Get.
func (s Sequence[T]) Remove(i int) (Sequence[T], error) {
	idx := s.normalize(i)
	if idx < 0 || idx >= s.Count() {
		return s, rangeErr("remove", i)
	}
	left, right, err := s.tree.Split(idx)
	if err != nil {
		return s, rangeErr("remove", i)
	}
	_, right2, err := right.PopLeft()
	if err != nil {
		panic("seq: Remove: split produced an unexpectedly empty right side")
	}
	return s.wrap(fingertree.Concat(left, right2)), nil
}

// InsertRange returns a new sequence with the elements of xs inserted
// before position i. Same index rule as Insert.
func (s Sequence[T]) InsertRange(i int, xs Sequence[T]) (Sequence[T], error) {
	count := s.Count()
	idx := i
	if idx < 0 {
		idx = i + count + 1
	}
	if idx < 0 || idx > count {
		return s, rangeErr("insert-range", i)
	}
	left, right, err := s.tree.Split(idx)
	if err != nil {
		return s, rangeErr("insert-range", i)
	}
	return s.wrap(fingertree.Concat(fingertree.Concat(left, xs.tree), right)), nil
}

// AddFirstRange returns a new sequence with the elements of xs prepended,
// in order.
func (s Sequence[T]) AddFirstRange(xs Sequence[T]) Sequence[T] {
	return s.wrap(fingertree.Concat(xs.tree, s.tree))
}

// AddLastRange returns a new sequence with the elements of xs appended, in
// order.
func (s Sequence[T]) AddLastRange(xs Sequence[T]) Sequence[T] {
	return s.wrap(fingertree.Concat(s.tree, xs.tree))
}

// Concat returns a new sequence with the elements of other appended.
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	return s.wrap(fingertree.Concat(s.tree, other.tree))
}

// SplitAt returns the sub-sequences of length i and Count()-i. It fails
// with ErrOutOfRange if i is outside [0, count].
func (s Sequence[T]) SplitAt(i int) (Sequence[T], Sequence[T], error) {
	l, r, err := s.tree.Split(i)
	if err != nil {
		return s, Empty[T](), rangeErr("split-at", i)
	}
	return s.wrap(l), s.wrap(r), nil
}

// Slice returns the inclusive range [start, end]. Negative indices count
// from the end (-1 = last). It fails with ErrOutOfRange if either
// normalized bound falls outside [0, count). A normalized end preceding a
// normalized start yields an empty sequence rather than an error, since
// both bounds are individually in range.
func (s Sequence[T]) Slice(start, end int) (Sequence[T], error) {
	count := s.Count()
	ns, ne := s.normalize(start), s.normalize(end)
	if ns < 0 || (count == 0 && ns != 0) || (count > 0 && ns >= count) {
		return Empty[T](), rangeErr("slice", start)
	}
	if ne < 0 || (count == 0 && ne != 0) || (count > 0 && ne >= count) {
		return Empty[T](), rangeErr("slice", end)
	}
	if ne < ns {
		return Empty[T](), nil
	}
	_, right, err := s.tree.Split(ns)
	if err != nil {
		return Empty[T](), rangeErr("slice", start)
	}
	left, _, err := right.Split(ne - ns + 1)
	if err != nil {
		return Empty[T](), rangeErr("slice", end)
	}
	return s.wrap(left), nil
}

// Take returns the first n elements. It fails with ErrOutOfRange if n is
// outside [0, count].
func (s Sequence[T]) Take(n int) (Sequence[T], error) {
	l, _, err := s.tree.Split(n)
	if err != nil {
		return s, rangeErr("take", n)
	}
	return s.wrap(l), nil
}

// Skip returns every element after the first n. Same range as Take.
func (s Sequence[T]) Skip(n int) (Sequence[T], error) {
	_, r, err := s.tree.Split(n)
	if err != nil {
		return s, rangeErr("skip", n)
	}
	return s.wrap(r), nil
}

// Reverse returns a new sequence with element order reversed, in O(n).
func (s Sequence[T]) Reverse() Sequence[T] {
	out := fingertree.Empty[T]()
	s.tree.ForEach(func(x T) bool {
		out = out.PushLeft(x)
		return true
	})
	return s.wrap(out)
}

// ToSlice materializes the sequence via forward iteration.
func (s Sequence[T]) ToSlice() []T {
	out := make([]T, 0, s.Count())
	s.tree.ForEach(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}
