package seq

import (
	"errors"
	"fmt"
)

// ErrEmpty signals an end-access operation on a sequence with count 0.
var ErrEmpty = errors.New("seq: sequence is empty")

// ErrOutOfRange signals an index-based operation given an index outside
// its documented range, after negative-index normalization.
var ErrOutOfRange = errors.New("seq: index out of range")

// ErrNullArgument signals that a required element source (an iterator
// function passed to OfIterator) was nil.
var ErrNullArgument = errors.New("seq: required argument is nil")

func emptyErr() error {
	return fmt.Errorf("%w", ErrEmpty)
}

func rangeErr(op string, i int) error {
	return fmt.Errorf("%w: %s(%d)", ErrOutOfRange, op, i)
}
