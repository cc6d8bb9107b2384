/*
Package fingertree implements an immutable 2-3 finger tree annotated with an
additive integer measure (element count), the core engine behind an ordered,
indexable, persistent sequence.

A finger tree gives amortized O(1) access and update at either end, O(log n)
indexed access, update, and split, and O(log(min(m,n))) concatenation of two
trees of size m and n — all while sharing unchanged structure between the
input and the result of every operation. Nothing in this package ever
mutates a tree already handed to a caller; every constructor allocates new
header nodes pointing at unchanged children.

Levels are erased into a single recursive tree type rather than encoded in
the type system: a Deep tree's spine is a tree of the very same Go type,
whose "elements" happen to be nodes one level deeper rather than leaves. A
measured interface (satisfied by both a boxed leaf and an internal node)
carries the level-independent operations; correctness is carried by the
digit/node arity invariants, not by the type checker.

This package is not safe for one goroutine to write while another reads the
*same* Go value concurrently in the sense of the race detector caring about
in-place mutation — but there is no in-place mutation, so any number of
goroutines may hold and read distinct Tree values (including trees that
share sub-trees) without synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fingertree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fingertree'.
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}
