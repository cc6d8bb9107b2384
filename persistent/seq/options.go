package seq

// config carries construction-time tunables for a Sequence.
type config struct {
	debugCheck bool
}

// Option configures a Sequence at construction time, in the
// functional-options style.
type Option struct {
	apply func(config) config
}

// WithSelfCheck causes every operation on the resulting Sequence (and every
// Sequence derived from it by a Sequence method) to run the fingertree
// structural self-check and panic on violation. The package-level Map,
// MapCompose, FlatMap and Filter functions, and the empty results Slice
// returns, produce sequences without this option. Intended for tests; it
// adds an O(n) walk to every mutating operation and should not be enabled
// in production use.
func WithSelfCheck() Option {
	return Option{apply: func(c config) config {
		c.debugCheck = true
		return c
	}}
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		c = o.apply(c)
	}
	return c
}
