package fingertree

import "fmt"

// traceViolation logs a detected structural violation before it is
// returned, so a failing self-check leaves a record of where it failed
// without needing a debugger attached.
func traceViolation(err error) error {
	tracer().Debugf("fingertree: check: %s", err)
	return err
}

// check walks t and verifies the structural invariants: digit sizes in
// {1..4}, node sizes in {2,3}, every cached measure equal to the sum of its
// children's measures. It returns the leaf count it found, so a caller one
// level up can verify its own cached measure against it. This mirrors the
// checkBackendLeafInvariants / checkBackendInnerInvariants style used
// elsewhere in this author's persistent-collection code: every violation is
// a distinct wrapped ErrInvalidStructure rather than a panic, since a
// failing self-check is a diagnostic outcome, not an unrecoverable bug in
// the caller's process.
func check(t tree) (int, error) {
	switch t.kind {
	case emptyKind:
		if t.measure != 0 {
			return 0, traceViolation(fmt.Errorf("%w: empty tree has nonzero measure %d", ErrInvalidStructure, t.measure))
		}
		return 0, nil
	case singleKind:
		n, err := checkMeasured(t.single)
		if err != nil {
			return 0, err
		}
		if n != t.measure {
			return 0, traceViolation(fmt.Errorf("%w: single tree measure %d does not match child measure %d", ErrInvalidStructure, t.measure, n))
		}
		return n, nil
	default:
		if t.left.size() < 1 || t.left.size() > 4 {
			return 0, traceViolation(fmt.Errorf("%w: left digit size %d outside [1,4]", ErrInvalidStructure, t.left.size()))
		}
		if t.right.size() < 1 || t.right.size() > 4 {
			return 0, traceViolation(fmt.Errorf("%w: right digit size %d outside [1,4]", ErrInvalidStructure, t.right.size()))
		}
		leftCount, err := checkDigit(t.left)
		if err != nil {
			return 0, err
		}
		spineCount, err := check(*t.spine)
		if err != nil {
			return 0, err
		}
		if spineCount != t.spine.measure {
			return 0, traceViolation(fmt.Errorf("%w: spine measure %d does not match computed leaf count %d", ErrInvalidStructure, t.spine.measure, spineCount))
		}
		rightCount, err := checkDigit(t.right)
		if err != nil {
			return 0, err
		}
		total := leftCount + spineCount + rightCount
		if total != t.measure {
			return 0, traceViolation(fmt.Errorf("%w: deep tree measure %d does not match computed leaf count %d", ErrInvalidStructure, t.measure, total))
		}
		return total, nil
	}
}

func checkDigit(d *digit) (int, error) {
	total := 0
	for _, k := range d.kids {
		n, err := checkMeasured(k)
		if err != nil {
			return 0, err
		}
		total += n
	}
	if total != d.measure {
		return 0, traceViolation(fmt.Errorf("%w: digit measure %d does not match computed leaf count %d", ErrInvalidStructure, d.measure, total))
	}
	return total, nil
}

func checkMeasured(m measured) (int, error) {
	nd, ok := m.(*node)
	if !ok {
		return m.Measure(), nil // leaf
	}
	if len(nd.kids) < 2 || len(nd.kids) > 3 {
		return 0, traceViolation(fmt.Errorf("%w: node size %d outside {2,3}", ErrInvalidStructure, len(nd.kids)))
	}
	total := 0
	for _, k := range nd.kids {
		n, err := checkMeasured(k)
		if err != nil {
			return 0, err
		}
		total += n
	}
	if total != nd.measure {
		return 0, traceViolation(fmt.Errorf("%w: node measure %d does not match computed leaf count %d", ErrInvalidStructure, nd.measure, total))
	}
	return total, nil
}
