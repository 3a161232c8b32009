// SPDX-License-Identifier: MIT

package space

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

var log = logging.Logger("space")

// weighted is implemented by keys that know their weight (word.Key,
// coalgebra.Key). Spaces over other keys skip the weight check.
type weighted interface {
	Weight() int
}

// Rank returns the dimension of the span of space.
//
// Errors:
//   - ErrNotHomogeneous if the check is enabled and monomials disagree in
//     weight (or in dimension, see WithDimension).
//   - any error of the configured RankOracle.
func Rank[K comparable](space []linear.Linear[K], opts ...Option) (int, error) {
	o := gatherOptions(opts)
	return rank(space, o)
}

func rank[K comparable](space []linear.Linear[K], o Options) (int, error) {
	if len(space) == 0 {
		log.Warn("rank of an empty space")
		return 0, nil
	}
	if o.homogeneityCheck {
		if err := checkHomogeneous(space, o); err != nil {
			return 0, err
		}
	}
	m := NewMatrix(space)
	r, err := o.oracle.Rank(m)
	if err != nil {
		return 0, fmt.Errorf("space: Rank: %w", err)
	}
	log.Debugf("rank %d of %dx%d matrix", r, m.Rows(), m.Cols())
	return r, nil
}

// checkHomogeneous verifies that every monomial of space has one weight and,
// when configured, one dimension.
func checkHomogeneous[K comparable](space []linear.Linear[K], o Options) error {
	weight, dim := -1, -1
	for _, e := range space {
		for k := range e.All() {
			if w, ok := any(k).(weighted); ok {
				got := w.Weight()
				if weight == -1 {
					weight = got
				} else if got != weight {
					return fmt.Errorf("%w: weights %d and %d", ErrNotHomogeneous, weight, got)
				}
			}
			if o.dimension == nil {
				continue
			}
			if wk, ok := any(k).(word.Key); ok {
				got := o.dimension(wk)
				if dim == -1 {
					dim = got
				} else if got != dim {
					return fmt.Errorf("%w: dimensions %d and %d", ErrNotHomogeneous, dim, got)
				}
			}
		}
	}
	return nil
}

// Contains reports whether e lies in the span of space.
func Contains[K comparable](space []linear.Linear[K], e linear.Linear[K], opts ...Option) (bool, error) {
	o := gatherOptions(opts)
	r, err := rank(space, o)
	if err != nil {
		return false, err
	}
	joined := append(space[:len(space):len(space)], e)
	rj, err := rank(joined, o)
	if err != nil {
		return false, err
	}
	return r == rj, nil
}

// VennRanks holds the ranks of two spaces and of their sum.
type VennRanks struct {
	A, B, United int
}

// Intersected returns dim(A ∩ B) = dim A + dim B - dim(A + B).
func (v VennRanks) Intersected() int { return v.A + v.B - v.United }

// Equal reports whether the two spaces coincide.
func (v VennRanks) Equal() bool { return v.A == v.United && v.B == v.United }

// String renders "(a, b, ∩ = i)", the shape used in research notes.
func (v VennRanks) String() string {
	return fmt.Sprintf("(%d, %d, ∩ = %d)", v.A, v.B, v.Intersected())
}

// Venn computes the ranks of a, b and a+b.
func Venn[K comparable](a, b []linear.Linear[K], opts ...Option) (VennRanks, error) {
	o := gatherOptions(opts)
	var v VennRanks
	var err error
	if v.A, err = rank(a, o); err != nil {
		return VennRanks{}, err
	}
	if v.B, err = rank(b, o); err != nil {
		return VennRanks{}, err
	}
	united := make([]linear.Linear[K], 0, len(a)+len(b))
	united = append(append(united, a...), b...)
	if v.United, err = rank(united, o); err != nil {
		return VennRanks{}, err
	}
	return v, nil
}

// MappingRanks holds the rank of a space and of its image under a map.
type MappingRanks struct {
	Space, Image int
}

// Kernel returns the dimension of the kernel of the map restricted to the
// space.
func (m MappingRanks) Kernel() int { return m.Space - m.Image }

// String renders "(space, image, ker = k)".
func (m MappingRanks) String() string {
	return fmt.Sprintf("(%d, %d, ker = %d)", m.Space, m.Image, m.Kernel())
}

// Mapping computes the rank of space and of its image under f. The images
// are computed concurrently, see Prepare. f must be linear for Kernel to be
// meaningful.
func Mapping[K1, K2 comparable](
	ctx context.Context,
	space []linear.Linear[K1],
	f func(linear.Linear[K1]) linear.Linear[K2],
	opts ...Option,
) (MappingRanks, error) {
	o := gatherOptions(opts)
	var ret MappingRanks
	var err error
	if ret.Space, err = rank(space, o); err != nil {
		return MappingRanks{}, err
	}
	image, err := prepare(ctx, space, f, o)
	if err != nil {
		return MappingRanks{}, err
	}
	if ret.Image, err = rank(image, o); err != nil {
		return MappingRanks{}, err
	}
	return ret, nil
}

// Prepare applies fn to every element of space using at most WithWorkers
// goroutines and returns the results in input order. fn must not mutate its
// argument. Cancelling ctx stops scheduling further elements.
func Prepare[K1, K2 comparable](
	ctx context.Context,
	space []linear.Linear[K1],
	fn func(linear.Linear[K1]) linear.Linear[K2],
	opts ...Option,
) ([]linear.Linear[K2], error) {
	return prepare(ctx, space, fn, gatherOptions(opts))
}

func prepare[K1, K2 comparable](
	ctx context.Context,
	space []linear.Linear[K1],
	fn func(linear.Linear[K1]) linear.Linear[K2],
	o Options,
) ([]linear.Linear[K2], error) {
	if fn == nil {
		panic(panicNilMapping)
	}
	ret := make([]linear.Linear[K2], len(space))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range space {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ret[i] = fn(space[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("space: Prepare: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("space: Prepare: %w", err)
	}
	log.Debugf("prepared %d elements with %d workers", len(space), o.workers)
	return ret, nil
}
