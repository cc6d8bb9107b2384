package fingertree

// kind discriminates the three tree shapes.
type kind uint8

const (
	emptyKind kind = iota
	singleKind
	deepKind
)

// tree is the level-erased internal representation: the very same type is
// used for a leaf-level tree and for every spine one level deeper. Only the
// dynamic type stored inside `measured` fields (leaf[T] versus *node)
// distinguishes one level from the next; tree itself never needs to know
// which level it is at.
type tree struct {
	kind    kind
	single  measured // used when kind == singleKind
	left    *digit   // used when kind == deepKind
	spine   *tree    // used when kind == deepKind; itself a tree, one level deeper
	right   *digit   // used when kind == deepKind
	measure int
}

// emptyTree is shared by every empty tree at any level; it carries no data.
var emptyTree = tree{kind: emptyKind}

func single(x measured) tree {
	return tree{kind: singleKind, single: x, measure: x.Measure()}
}

func deep(l *digit, spine tree, r *digit) tree {
	return tree{
		kind:    deepKind,
		left:    l,
		spine:   &spine,
		right:   r,
		measure: l.measure + spine.measure + r.measure,
	}
}

// Measure implements measured, so a tree can itself appear as a spine
// element's measure source without unwrapping.
func (t tree) Measure() int { return t.measure }

func (t tree) isEmpty() bool { return t.kind == emptyKind }

func left(t tree) (measured, error) {
	switch t.kind {
	case emptyKind:
		return nil, ErrEmpty
	case singleKind:
		return t.single, nil
	default:
		return t.left.kids[0], nil
	}
}

func right(t tree) (measured, error) {
	switch t.kind {
	case emptyKind:
		return nil, ErrEmpty
	case singleKind:
		return t.single, nil
	default:
		return t.right.kids[t.right.size()-1], nil
	}
}

// pushLeft inserts x as the new leftmost child. When the left digit is
// already full, the three oldest children are grouped into a node and
// pushed recursively into the spine, matching the classic finger-tree
// overflow rule (Hinze/Paterson): deep [a,b,c,d] m sf, cons x
// -> deep [x,a] (cons (node3 b c d) m) sf.
func pushLeft(t tree, x measured) tree {
	switch t.kind {
	case emptyKind:
		return single(x)
	case singleKind:
		return deep(newDigit(x), emptyTree, newDigit(t.single))
	default:
		if nd, err := t.left.prepend(x); err == nil {
			return deep(nd, *t.spine, t.right)
		}
		old := t.left.kids
		n := newNode3(old[1], old[2], old[3])
		tracer().Debugf("fingertree: left digit overflow, pushing node into spine")
		newSpine := pushLeft(*t.spine, n)
		return deep(newDigit(x, old[0]), newSpine, t.right)
	}
}

// pushRight is the mirror image of pushLeft.
func pushRight(t tree, x measured) tree {
	switch t.kind {
	case emptyKind:
		return single(x)
	case singleKind:
		return deep(newDigit(t.single), emptyTree, newDigit(x))
	default:
		if nd, err := t.right.append(x); err == nil {
			return deep(t.left, *t.spine, nd)
		}
		old := t.right.kids
		n := newNode3(old[0], old[1], old[2])
		tracer().Debugf("fingertree: right digit overflow, pushing node into spine")
		newSpine := pushRight(*t.spine, n)
		return deep(t.left, newSpine, newDigit(old[3], x))
	}
}

// popLeft removes and returns the leftmost child.
func popLeft(t tree) (measured, tree, error) {
	switch t.kind {
	case emptyKind:
		return nil, t, ErrEmpty
	case singleKind:
		return t.single, emptyTree, nil
	default:
		x := t.left.kids[0]
		if t.left.size() > 1 {
			return x, deep(&digit{kids: t.left.kids[1:], measure: t.left.measure - x.Measure()}, *t.spine, t.right), nil
		}
		return x, deepL(nil, *t.spine, t.right), nil
	}
}

// popRight is the mirror image of popLeft.
func popRight(t tree) (measured, tree, error) {
	switch t.kind {
	case emptyKind:
		return nil, t, ErrEmpty
	case singleKind:
		return t.single, emptyTree, nil
	default:
		last := t.right.size() - 1
		x := t.right.kids[last]
		if t.right.size() > 1 {
			return x, deep(t.left, *t.spine, &digit{kids: t.right.kids[:last], measure: t.right.measure - x.Measure()}), nil
		}
		return x, deepR(t.left, *t.spine, nil), nil
	}
}

// deepL builds a Deep tree from a possibly-empty list of left items, a
// spine and a right digit. Non-empty leftItems become the left digit as
// they are. An empty leftItems (popLeft's case, after the left digit lost
// its only element) makes it borrow the leftmost node from the spine to
// refill the digit, or — if the spine is itself empty — collapse to
// whatever tree the (1-4 element) right digit represents on its own.
func deepL(leftItems []measured, spine tree, right *digit) tree {
	if len(leftItems) > 0 {
		return deep(&digit{kids: leftItems, measure: sumMeasures(leftItems)}, spine, right)
	}
	if spine.isEmpty() {
		return treeFromMeasured(right.kids)
	}
	n, spine2, _ := popLeft(spine)
	return deep(n.(*node).toDigit(), spine2, right)
}

// deepR mirrors deepL for the right side.
func deepR(left *digit, spine tree, rightItems []measured) tree {
	if len(rightItems) > 0 {
		return deep(left, spine, &digit{kids: rightItems, measure: sumMeasures(rightItems)})
	}
	if spine.isEmpty() {
		return treeFromMeasured(left.kids)
	}
	n, spine2, _ := popRight(spine)
	return deep(left, spine2, n.(*node).toDigit())
}

// treeFromMeasured builds a tree containing exactly the given items (1 to 4
// of them, the size of a digit) by repeated pushRight from empty. Pushing
// at most 4 items this way never triggers digit overflow, so it always
// terminates in O(1) steps and never recurses into pushLeft/pushRight's
// overflow branch.
func treeFromMeasured(items []measured) tree {
	t := emptyTree
	for _, x := range items {
		t = pushRight(t, x)
	}
	return t
}

func sumMeasures(items []measured) int {
	s := 0
	for _, x := range items {
		s += x.Measure()
	}
	return s
}
