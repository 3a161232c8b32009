package lyndon

import (
	"github.com/katalvlaran/polylog/shuffle"
	"github.com/katalvlaran/polylog/word"
)

// Options configures ToBasis.
type Options struct {
	// Order is the letter order defining Lyndon words.
	Order word.Order
	// Shuffle options forwarded to the shuffle engine.
	Shuffle []shuffle.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns natural letter order and default shuffle settings.
func DefaultOptions() Options {
	return Options{Order: word.Natural{}}
}

// WithOrder sets the letter order. It panics if ord is nil.
func WithOrder(ord word.Order) Option {
	if ord == nil {
		panic("lyndon: WithOrder(nil)")
	}
	return func(o *Options) { o.Order = ord }
}

// WithShuffleOptions forwards options to every shuffle product taken.
func WithShuffleOptions(opts ...shuffle.Option) Option {
	return func(o *Options) { o.Shuffle = append(o.Shuffle, opts...) }
}
