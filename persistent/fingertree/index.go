package fingertree

// getElem descends through nested nodes to the leaf at local offset i within
// m, which may itself be a leaf (base case) or a node covering several
// levels of nesting.
func getElem(m measured, i int) measured {
	if nd, ok := m.(*node); ok {
		idx, off := locate(nd.kids, i)
		return getElem(nd.kids[idx], off)
	}
	return m
}

// setElem returns a copy of m with the leaf at local offset i replaced by
// x, rebuilding only the nodes on the path to that leaf.
func setElem(m measured, i int, x measured) measured {
	if nd, ok := m.(*node); ok {
		idx, off := locate(nd.kids, i)
		kids := make([]measured, len(nd.kids))
		copy(kids, nd.kids)
		kids[idx] = setElem(nd.kids[idx], off, x)
		return &node{kids: kids, measure: nd.measure}
	}
	return x
}

func get(t tree, i int) (measured, error) {
	if i < 0 || i >= t.measure {
		return nil, ErrOutOfRange
	}
	switch t.kind {
	case singleKind:
		return getElem(t.single, i), nil
	default:
		if i < t.left.measure {
			idx, off := locate(t.left.kids, i)
			return getElem(t.left.kids[idx], off), nil
		}
		i -= t.left.measure
		if i < t.spine.measure {
			return get(*t.spine, i)
		}
		i -= t.spine.measure
		idx, off := locate(t.right.kids, i)
		return getElem(t.right.kids[idx], off), nil
	}
}

func set(t tree, i int, x measured) (tree, error) {
	if i < 0 || i >= t.measure {
		return t, ErrOutOfRange
	}
	switch t.kind {
	case singleKind:
		return single(setElem(t.single, i, x)), nil
	default:
		if i < t.left.measure {
			idx, off := locate(t.left.kids, i)
			return deep(t.left.withReplaced(idx, setElem(t.left.kids[idx], off, x)), *t.spine, t.right), nil
		}
		i -= t.left.measure
		if i < t.spine.measure {
			newSpine, err := set(*t.spine, i, x)
			if err != nil {
				return t, err
			}
			return deep(t.left, newSpine, t.right), nil
		}
		i -= t.spine.measure
		idx, off := locate(t.right.kids, i)
		return deep(t.left, *t.spine, t.right.withReplaced(idx, setElem(t.right.kids[idx], off, x))), nil
	}
}
