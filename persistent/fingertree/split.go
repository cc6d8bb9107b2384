package fingertree

// split divides t into a prefix of the first i leaves and a suffix of the
// remaining leaves. i must lie in [0, measure(t)].
func split(t tree, i int) (tree, tree, error) {
	if i < 0 || i > t.measure {
		return tree{}, tree{}, ErrOutOfRange
	}
	if i == 0 {
		return emptyTree, t, nil
	}
	if i == t.measure {
		return t, emptyTree, nil
	}
	res := splitTreeAt(t, i)
	return res.left, pushLeft(res.right, res.mid), nil
}

// splitResult is the classic finger-tree Split record: everything strictly
// before the located element, the element itself, and everything strictly
// after.
type splitResult struct {
	left  tree
	mid   measured
	right tree
}

// splitTreeAt requires 0 <= i < t.measure and t.kind != emptyKind. The
// recursive call into the spine may pass i == 0.
func splitTreeAt(t tree, i int) splitResult {
	switch t.kind {
	case singleKind:
		return splitResult{left: emptyTree, mid: t.single, right: emptyTree}
	default:
		vpr := t.left.measure
		if i < vpr {
			ds := splitDigitAt(t.left.kids, i)
			return splitResult{
				left:  digitToTreeOrEmpty(ds.left),
				mid:   ds.mid,
				right: deepL(ds.right, *t.spine, t.right),
			}
		}
		vm := vpr + t.spine.measure
		if i < vm {
			sp := splitTreeAt(*t.spine, i-vpr)
			nd := sp.mid.(*node)
			ds := splitDigitAt(nd.kids, i-vpr-sp.left.measure)
			return splitResult{
				left:  deepR(t.left, sp.left, ds.left),
				mid:   ds.mid,
				right: deepL(ds.right, sp.right, t.right),
			}
		}
		ds := splitDigitAt(t.right.kids, i-vm)
		return splitResult{
			left:  deepR(t.left, *t.spine, ds.left),
			mid:   ds.mid,
			right: digitToTreeOrEmpty(ds.right),
		}
	}
}

func digitToTreeOrEmpty(items []measured) tree {
	if len(items) == 0 {
		return emptyTree
	}
	return treeFromMeasured(items)
}
