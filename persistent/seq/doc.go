/*
Package seq provides Sequence, a thin persistent, immutable ordered-list
façade over persistent/fingertree. Every operation returns a new Sequence
value (or a pure result) and leaves its receiver unchanged; old and new
values share whatever structure was not touched by the operation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fingertree.seq'.
func tracer() tracing.Trace {
	return tracing.Select("fingertree.seq")
}
