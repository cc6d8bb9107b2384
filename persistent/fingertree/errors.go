package fingertree

import (
	"errors"
	"fmt"
)

// ErrEmpty signals an end-access on a tree with no elements.
var ErrEmpty = errors.New("fingertree: tree is empty")

// ErrOutOfRange signals an index-based operation given an index outside its
// documented range.
var ErrOutOfRange = errors.New("fingertree: index out of range")

// ErrInvalidStructure signals a violated structural invariant, found by
// Check. Escape of this error from anywhere but Check indicates a bug in
// this package.
var ErrInvalidStructure = errors.New("fingertree: invalid tree structure")

// errOverflow is raised internally when a digit already holding 4 children
// is asked to grow. It is caught and handled by pushLeft/pushRight and must
// never escape this package.
var errOverflow = errors.New("fingertree: digit overflow")

// assertThat panics with a formatted message if the given condition does
// not hold. It guards internal invariants that a caller cannot violate
// through the public API — their failure indicates a bug in this package.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Sprintf("fingertree: "+msg, msgargs...))
	}
}
