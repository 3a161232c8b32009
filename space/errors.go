// SPDX-License-Identifier: MIT

package space

import "errors"

// Sentinel errors. Every message is prefixed with "space: ".
var (
	// ErrNotHomogeneous indicates monomials of different weight or dimension
	// in one rank query.
	ErrNotHomogeneous = errors.New("space: space is not homogeneous")

	// ErrNotPrime indicates a ModPrimeRank modulus that is not a prime.
	ErrNotPrime = errors.New("space: modulus is not prime")
)

const (
	panicNilOracle   = "space: WithOracle: oracle must not be nil"
	panicBadWorkers  = "space: WithWorkers: workers must be positive"
	panicNilFunction = "space: WithDimension: function must not be nil"
	panicNilMapping  = "space: Prepare: function must not be nil"
)
