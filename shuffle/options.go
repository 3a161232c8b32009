package shuffle

// MaxUnrolledLen is the largest total length served by the interleaving table.
const MaxUnrolledLen = 10

// Options configures shuffle products.
type Options struct {
	// Unrolled enables the precomputed interleaving table.
	Unrolled bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with the table enabled.
func DefaultOptions() Options {
	return Options{Unrolled: true}
}

// WithUnrolled toggles the interleaving table fast path.
func WithUnrolled(enabled bool) Option {
	return func(o *Options) { o.Unrolled = enabled }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
