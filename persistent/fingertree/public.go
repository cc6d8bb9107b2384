package fingertree

// Tree is an immutable, persistent 2-3 finger tree over elements of type T,
// annotated with an element-count measure. The zero value is an empty tree,
// the same as the one Empty returns.
type Tree[T any] struct {
	t tree
}

// Empty returns the canonical empty tree for element type T.
func Empty[T any]() Tree[T] {
	return Tree[T]{t: emptyTree}
}

// Measure returns the number of elements in the tree, in O(1).
func (tr Tree[T]) Measure() int { return tr.t.measure }

// IsEmpty reports whether the tree holds no elements.
func (tr Tree[T]) IsEmpty() bool { return tr.t.isEmpty() }

// Left returns the leftmost element. It fails with ErrEmpty if the tree is
// empty.
func (tr Tree[T]) Left() (T, error) {
	m, err := left(tr.t)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.(leaf[T]).value, nil
}

// Right returns the rightmost element. It fails with ErrEmpty if the tree
// is empty.
func (tr Tree[T]) Right() (T, error) {
	m, err := right(tr.t)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.(leaf[T]).value, nil
}

// PushLeft returns a new tree with x inserted as the new leftmost element.
func (tr Tree[T]) PushLeft(x T) Tree[T] {
	return Tree[T]{t: pushLeft(tr.t, leaf[T]{value: x})}
}

// PushRight returns a new tree with x inserted as the new rightmost
// element.
func (tr Tree[T]) PushRight(x T) Tree[T] {
	return Tree[T]{t: pushRight(tr.t, leaf[T]{value: x})}
}

// PopLeft removes the leftmost element, returning it together with the
// remaining tree. It fails with ErrEmpty if the tree is empty.
func (tr Tree[T]) PopLeft() (T, Tree[T], error) {
	m, rest, err := popLeft(tr.t)
	if err != nil {
		var zero T
		return zero, tr, err
	}
	return m.(leaf[T]).value, Tree[T]{t: rest}, nil
}

// PopRight removes the rightmost element, returning it together with the
// remaining tree. It fails with ErrEmpty if the tree is empty.
func (tr Tree[T]) PopRight() (T, Tree[T], error) {
	m, rest, err := popRight(tr.t)
	if err != nil {
		var zero T
		return zero, tr, err
	}
	return m.(leaf[T]).value, Tree[T]{t: rest}, nil
}

// Get returns the element at index i (0-based). It fails with ErrOutOfRange
// if i is outside [0, Measure()).
func (tr Tree[T]) Get(i int) (T, error) {
	m, err := get(tr.t, i)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.(leaf[T]).value, nil
}

// Set returns a new tree with the element at index i replaced by x. It
// fails with ErrOutOfRange under the same condition as Get.
func (tr Tree[T]) Set(i int, x T) (Tree[T], error) {
	newT, err := set(tr.t, i, leaf[T]{value: x})
	if err != nil {
		return tr, err
	}
	return Tree[T]{t: newT}, nil
}

// Split divides the tree into a prefix of the first i elements and a suffix
// of the remaining elements. It fails with ErrOutOfRange if i is outside
// [0, Measure()].
func (tr Tree[T]) Split(i int) (Tree[T], Tree[T], error) {
	l, r, err := split(tr.t, i)
	if err != nil {
		return tr, Empty[T](), err
	}
	return Tree[T]{t: l}, Tree[T]{t: r}, nil
}

// ForEach visits every element left-to-right, stopping early if visit
// returns false.
func (tr Tree[T]) ForEach(visit func(T) bool) {
	forEach(tr.t, func(m measured) bool {
		return visit(m.(leaf[T]).value)
	})
}

// ForEachBack visits every element right-to-left, stopping early if visit
// returns false.
func (tr Tree[T]) ForEachBack(visit func(T) bool) {
	forEachBack(tr.t, func(m measured) bool {
		return visit(m.(leaf[T]).value)
	})
}

// Concat returns a tree whose elements are the elements of a followed by
// the elements of b, in amortized O(log(min(a.Measure(), b.Measure()))).
func Concat[T any](a, b Tree[T]) Tree[T] {
	return Tree[T]{t: concat(a.t, b.t)}
}

// FromSlice builds a tree containing the elements of xs, in the given
// order, in O(n).
func FromSlice[T any](xs []T) Tree[T] {
	t := emptyTree
	for _, x := range xs {
		t = pushRight(t, leaf[T]{value: x})
	}
	return Tree[T]{t: t}
}

// Check walks the tree and verifies every structural invariant: digit
// sizes in {1..4}, node sizes in {2,3}, and every cached measure equal to
// the sum of its children's measures. It is intended for tests and
// debugging; no runtime operation in this package depends on it.
func Check[T any](tr Tree[T]) error {
	_, err := check(tr.t)
	return err
}
