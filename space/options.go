// SPDX-License-Identifier: MIT

package space

import (
	"runtime"

	"github.com/katalvlaran/polylog/word"
)

// DefaultHomogeneityCheck enables the weight check on every rank query.
const DefaultHomogeneityCheck = true

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of a call.
type Options struct {
	oracle           RankOracle
	workers          int
	homogeneityCheck bool
	dimension        func(word.Key) int
}

// DefaultOptions returns exact rank, GOMAXPROCS workers and the homogeneity
// check enabled.
func DefaultOptions() Options {
	return Options{
		oracle:           ExactRank{},
		workers:          runtime.GOMAXPROCS(0),
		homogeneityCheck: DefaultHomogeneityCheck,
	}
}

// WithOracle selects the rank implementation.
func WithOracle(o RankOracle) Option {
	if o == nil {
		panic(panicNilOracle)
	}
	return func(opts *Options) { opts.oracle = o }
}

// WithWorkers bounds the number of goroutines used by Prepare and Mapping.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}
	return func(opts *Options) { opts.workers = n }
}

// WithHomogeneityCheck toggles the homogeneity check for this call.
func WithHomogeneityCheck(enabled bool) Option {
	return func(opts *Options) { opts.homogeneityCheck = enabled }
}

// WithDimension additionally requires every word monomial to have the same
// fn value, e.g. gamma.KeyDimension. Only word keyed spaces are affected.
func WithDimension(fn func(word.Key) int) Option {
	if fn == nil {
		panic(panicNilFunction)
	}
	return func(opts *Options) { opts.dimension = fn }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
