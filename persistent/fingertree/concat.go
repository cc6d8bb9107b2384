package fingertree

// concat joins a and b so that the leaves of the result are the leaves of a
// followed by the leaves of b, in amortized O(log(min(measure a, measure
// b))).
func concat(a, b tree) tree {
	return app3(a, nil, b)
}

// app3 is the standard finger-tree "app3" algorithm: it joins a and b with
// an optional list of extra elements sandwiched between them (used only by
// the recursive calls this function makes into the two spines).
func app3(a tree, mid []measured, b tree) tree {
	switch {
	case a.isEmpty():
		return prependAll(mid, b)
	case b.isEmpty():
		return appendAll(a, mid)
	case a.kind == singleKind:
		return pushLeft(prependAll(mid, b), a.single)
	case b.kind == singleKind:
		return pushRight(appendAll(a, mid), b.single)
	default:
		combined := make([]measured, 0, a.right.size()+len(mid)+b.left.size())
		combined = append(combined, a.right.kids...)
		combined = append(combined, mid...)
		combined = append(combined, b.left.kids...)
		nodes := nodesFromMeasured(combined)
		tracer().Debugf("fingertree: app3 regrouping %d children into %d nodes", len(combined), len(nodes))
		newSpine := app3(*a.spine, nodes, *b.spine)
		return deep(a.left, newSpine, b.right)
	}
}

func prependAll(xs []measured, t tree) tree {
	for i := len(xs) - 1; i >= 0; i-- {
		t = pushLeft(t, xs[i])
	}
	return t
}

func appendAll(t tree, xs []measured) tree {
	for _, x := range xs {
		t = pushRight(t, x)
	}
	return t
}

// nodesFromMeasured regroups a flat list of measured children (2 or more)
// into a list of nodes of size 2 or 3, never leaving a residue of 1. It
// consumes children three at a time and finishes with whichever of the
// [2]/[3]/[2,2] endings fits the remainder, which reduces exactly to the
// table
//
//	total  grouping
//	2      [2]
//	3      [3]
//	4      [2,2]
//	5      [3,2]
//	6      [3,3]
//	7      [3,2,2]
//	8      [3,3,2]
//
// for the small counts that arise at the top-level call, and generalizes
// correctly for the larger counts that arise once mid carries nodes forward
// from an outer recursion.
func nodesFromMeasured(xs []measured) []measured {
	n := len(xs)
	assertThat(n >= 2, "nodes() requires at least 2 children, got %d", n)
	out := make([]measured, 0, (n+2)/3)
	i := 0
	for n-i > 4 {
		out = append(out, newNode3(xs[i], xs[i+1], xs[i+2]))
		i += 3
	}
	switch n - i {
	case 2:
		out = append(out, newNode2(xs[i], xs[i+1]))
	case 3:
		out = append(out, newNode3(xs[i], xs[i+1], xs[i+2]))
	case 4:
		out = append(out, newNode2(xs[i], xs[i+1]), newNode2(xs[i+2], xs[i+3]))
	}
	return out
}
