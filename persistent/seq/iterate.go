package seq

// Iterate calls visit with every element from first to last. It stops
// early if visit returns false.
func (s Sequence[T]) Iterate(visit func(T) bool) {
	s.tree.ForEach(visit)
}

// IterateBack calls visit with every element from last to first. It stops
// early if visit returns false.
func (s Sequence[T]) IterateBack(visit func(T) bool) {
	s.tree.ForEachBack(visit)
}

// IterateWhile calls visit with every element from first to last while
// pred holds for that element, stopping at the first element for which
// pred returns false.
func (s Sequence[T]) IterateWhile(pred func(T) bool, visit func(T)) {
	s.tree.ForEach(func(x T) bool {
		if !pred(x) {
			return false
		}
		visit(x)
		return true
	})
}

// IterateBackWhile is IterateWhile in last-to-first order.
func (s Sequence[T]) IterateBackWhile(pred func(T) bool, visit func(T)) {
	s.tree.ForEachBack(func(x T) bool {
		if !pred(x) {
			return false
		}
		visit(x)
		return true
	})
}
