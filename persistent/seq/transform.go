package seq

import (
	"github.com/google/go-cmp/cmp"

	fp "github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/maybe"
)

// Map returns a new sequence of the same length with f applied to every
// element, in order.
func Map[T, U any](s Sequence[T], f func(T) U) Sequence[U] {
	b := NewBuilder[U]()
	s.tree.ForEach(func(x T) bool {
		b.PushBack(f(x))
		return true
	})
	return b.Build()
}

// MapCompose is Map(s, f) followed by Map(_, g) fused into a single pass,
// built with fp.Compose so the two functions are composed exactly once
// rather than per-element.
func MapCompose[T, U, S any](s Sequence[T], f func(T) U, g func(U) S) Sequence[S] {
	h := fp.Compose(f, g)
	return Map(s, h)
}

// FlatMap applies f to every element and concatenates the results, in
// order.
func FlatMap[T, U any](s Sequence[T], f func(T) Sequence[U]) Sequence[U] {
	out := Empty[U]()
	s.tree.ForEach(func(x T) bool {
		out = out.Concat(f(x))
		return true
	})
	return out
}

// Filter returns the sub-sequence of elements for which keep reports true,
// in their original relative order.
func Filter[T any](s Sequence[T], keep func(T) bool) Sequence[T] {
	b := NewBuilder[T]()
	s.tree.ForEach(func(x T) bool {
		if keep(x) {
			b.PushBack(x)
		}
		return true
	})
	return b.Build()
}

// Fold reduces the sequence left-to-right: acc = f(acc, x) for each x.
func Fold[T, A any](s Sequence[T], init A, f func(A, T) A) A {
	acc := init
	s.tree.ForEach(func(x T) bool {
		acc = f(acc, x)
		return true
	})
	return acc
}

// FoldBack reduces the sequence right-to-left: acc = f(x, acc) for each x.
func FoldBack[T, A any](s Sequence[T], init A, f func(T, A) A) A {
	acc := init
	s.tree.ForEachBack(func(x T) bool {
		acc = f(x, acc)
		return true
	})
	return acc
}

// All reports whether pred holds for every element. Vacuously true on an
// empty sequence.
func (s Sequence[T]) All(pred func(T) bool) bool {
	ok := true
	s.tree.ForEach(func(x T) bool {
		if !pred(x) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// Any reports whether pred holds for at least one element.
func (s Sequence[T]) Any(pred func(T) bool) bool {
	found := false
	s.tree.ForEach(func(x T) bool {
		if pred(x) {
			found = true
			return false
		}
		return true
	})
	return found
}

// IndexOf returns the index of the first element for which pred holds, or
// Nothing if no element matches. The absence of a match is an ordinary
// outcome, not a caller error, so it is expressed with maybe.Maybe rather
// than a sentinel error.
func (s Sequence[T]) IndexOf(pred func(T) bool) maybe.Maybe[int] {
	found := -1
	i := 0
	s.tree.ForEach(func(x T) bool {
		if pred(x) {
			found = i
			return false
		}
		i++
		return true
	})
	if found < 0 {
		return maybe.Nothing[int]()
	}
	return maybe.Just(found)
}

// SequenceEqual reports whether s and other hold equal-length, pairwise
// deep-equal element sequences, using go-cmp as the default comparator.
func (s Sequence[T]) SequenceEqual(other Sequence[T]) bool {
	return s.SequenceEqualWith(other, func(a, b T) bool { return cmp.Equal(a, b) })
}

// SequenceEqualWith is SequenceEqual with a caller-supplied element
// comparator in place of go-cmp's default deep equality.
func (s Sequence[T]) SequenceEqualWith(other Sequence[T], eq func(T, T) bool) bool {
	if s.Count() != other.Count() {
		return false
	}
	as, bs := s.ToSlice(), other.ToSlice()
	for i := range as {
		if !eq(as[i], bs[i]) {
			return false
		}
	}
	return true
}
