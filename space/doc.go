// SPDX-License-Identifier: MIT

// Package space computes ranks of finite families ("spaces") of linear
// expressions and the derived quantities used to compare them.
//
// What lives here:
//
//	Matrix, NewMatrix       - sparse integer matrix, one row per expression,
//	                          one column per distinct monomial.
//	RankOracle              - pluggable rank computation. ExactRank eliminates
//	                          over the rationals; ModPrimeRank works modulo a
//	                          prime and never exceeds the exact rank.
//	Rank, Contains          - dimension of a span, membership in a span.
//	Venn, Mapping           - ranks of A, B, A+B (and A∩B), and of a space
//	                          together with its image under a linear map.
//	Prepare                 - applies a normalization to every element of a
//	                          space concurrently with bounded parallelism.
//
// Homogeneity: by default every rank query checks that all monomials share
// the same weight, since mixing weights is almost always a mistake in a
// polylog computation. WithHomogeneityCheck(false) turns the check off for a
// single call; there is no global switch.
//
// Concurrency: all functions are safe for concurrent use. Prepare and Mapping
// use golang.org/x/sync/errgroup with at most WithWorkers goroutines.
package space
