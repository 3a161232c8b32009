// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"math/big"
)

// RankOracle computes the rank of a matrix.
type RankOracle interface {
	Rank(m *Matrix) (int, error)
}

// ExactRank computes the rank over the rationals by forward elimination.
type ExactRank struct{}

// Rank implements RankOracle.
//
// Implementation:
//   - Stage 1: copy the sparse rows into dense rows of big.Rat.
//   - Stage 2: forward elimination, one pivot per column, rows below only.
//
// Complexity:
//   - Time O(r·c·min(r,c)) rational operations, Space O(r·c).
func (ExactRank) Rank(m *Matrix) (int, error) {
	n, cols := m.Rows(), m.Cols()
	a := make([][]*big.Rat, n)
	for i := range a {
		a[i] = make([]*big.Rat, cols)
		for j := range a[i] {
			a[i][j] = new(big.Rat)
		}
		for _, e := range m.Row(i) {
			a[i][e.Col].SetInt64(int64(e.Value))
		}
	}

	rank := 0
	factor, tmp := new(big.Rat), new(big.Rat)
	for col := 0; col < cols && rank < n; col++ {
		pivot := -1
		for i := rank; i < n; i++ {
			if a[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		a[rank], a[pivot] = a[pivot], a[rank]
		for i := rank + 1; i < n; i++ {
			if a[i][col].Sign() == 0 {
				continue
			}
			factor.Quo(a[i][col], a[rank][col])
			for j := col; j < cols; j++ {
				tmp.Mul(factor, a[rank][j])
				a[i][j].Sub(a[i][j], tmp)
			}
		}
		rank++
	}
	return rank, nil
}

// ModPrimeRank computes the rank modulo the prime P. The result never
// exceeds the exact rank and equals it unless P divides some minor, so a
// large prime gives the exact answer with overwhelming probability.
type ModPrimeRank struct {
	P int64
}

// maxModulus keeps products of residues inside int64.
const maxModulus = 1 << 31

// Rank implements RankOracle.
func (o ModPrimeRank) Rank(m *Matrix) (int, error) {
	p := o.P
	if p < 2 || p >= maxModulus || !big.NewInt(p).ProbablyPrime(20) {
		return 0, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	n, cols := m.Rows(), m.Cols()
	a := make([][]int64, n)
	for i := range a {
		a[i] = make([]int64, cols)
		for _, e := range m.Row(i) {
			a[i][e.Col] = mod(int64(e.Value), p)
		}
	}

	rank := 0
	for col := 0; col < cols && rank < n; col++ {
		pivot := -1
		for i := rank; i < n; i++ {
			if a[i][col] != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		a[rank], a[pivot] = a[pivot], a[rank]
		inv := invMod(a[rank][col], p)
		for i := rank + 1; i < n; i++ {
			if a[i][col] == 0 {
				continue
			}
			factor := a[i][col] * inv % p
			for j := col; j < cols; j++ {
				a[i][j] = mod(a[i][j]-factor*a[rank][j]%p, p)
			}
		}
		rank++
	}
	return rank, nil
}

func mod(x, p int64) int64 {
	x %= p
	if x < 0 {
		x += p
	}
	return x
}

// invMod returns x^-1 mod p by the extended Euclidean algorithm.
func invMod(x, p int64) int64 {
	t, newT := int64(0), int64(1)
	r, newR := p, x
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	return mod(t, p)
}
