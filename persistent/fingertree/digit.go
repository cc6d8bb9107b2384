package fingertree

// measured is anything that can report how many leaf elements it covers.
// leaf[T] and *node both implement it, which is what lets a single,
// non-generic tree type represent every level of the finger tree: a level's
// digits and spine never need to know whether their children are leaves or
// nodes-of-something-deeper.
type measured interface {
	Measure() int
}

// digit is a buffer of 1 to 4 children. Digits are the unit of
// end-manipulation for a tree level; a digit of size 0 does not exist, and
// digit construction never produces one.
type digit struct {
	kids    []measured
	measure int
}

func newDigit(kids ...measured) *digit {
	d := &digit{kids: kids}
	for _, k := range kids {
		d.measure += k.Measure()
	}
	return d
}

// Measure implements measured, reporting the digit's cached leaf count.
func (d *digit) Measure() int { return d.measure }

func (d *digit) size() int { return len(d.kids) }

// prepend adds x to the front of the digit. It fails with errOverflow if
// the digit already holds 4 children; callers must restructure first.
func (d *digit) prepend(x measured) (*digit, error) {
	if d.size() >= 4 {
		return nil, errOverflow
	}
	kids := make([]measured, 0, d.size()+1)
	kids = append(kids, x)
	kids = append(kids, d.kids...)
	return &digit{kids: kids, measure: d.measure + x.Measure()}, nil
}

// append adds x to the back of the digit. It fails with errOverflow if the
// digit already holds 4 children.
func (d *digit) append(x measured) (*digit, error) {
	if d.size() >= 4 {
		return nil, errOverflow
	}
	kids := make([]measured, 0, d.size()+1)
	kids = append(kids, d.kids...)
	kids = append(kids, x)
	return &digit{kids: kids, measure: d.measure + x.Measure()}, nil
}

// withReplaced returns a digit identical to d except that the child at
// position idx is replaced by x. The digit's measure is unchanged since a
// leaf replacement never changes the leaf count under it.
func (d *digit) withReplaced(idx int, x measured) *digit {
	kids := make([]measured, len(d.kids))
	copy(kids, d.kids)
	kids[idx] = x
	return &digit{kids: kids, measure: d.measure}
}

// locate finds which child of items covers global offset i (0 <= i <
// sum of measures) and returns its index together with the offset local to
// that child.
func locate(items []measured, i int) (idx int, offset int) {
	for idx = range items {
		m := items[idx].Measure()
		if i < m {
			return idx, i
		}
		i -= m
	}
	panic("fingertree: locate: offset beyond digit measure")
}

// digitSplit is the result of splitting a digit's children at a measure
// offset: the children strictly before the target, the target child
// itself, and the children strictly after.
type digitSplit struct {
	left  []measured
	mid   measured
	right []measured
}

// splitDigitAt locates the child covering offset i and returns it together with
// its neighbours on either side.
func splitDigitAt(items []measured, i int) digitSplit {
	idx, _ := locate(items, i)
	return digitSplit{left: items[:idx], mid: items[idx], right: items[idx+1:]}
}
