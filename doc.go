// Package polylog is an in-memory workbench for polylogarithm symbols:
// formal linear combinations of tensor words, their canonical forms and the
// linear algebra used to compare whole spaces of them.
//
// 🚀 What is inside?
//
//	• Linear expressions: sparse integer combinations over any comparable key
//	• Words: compact byte keys for letter sequences, orders, printing
//	• Shuffle products: recursion plus a precomputed interleaving table
//	• Lyndon basis: Duval factorization and reduction modulo shuffles
//	• Co-products: Hopf and Lie flavours, comultiplication by form
//	• Letters: differences x_i - x_j (delta) and Grassmannian minors (gamma)
//	• Spaces: ranks, containment, Venn and kernel dimensions
//	• Wire format: protocol buffer messages for computed normal forms
//
// ✨ Why polylog?
//
//   - Exact: integer coefficients with overflow checks, rational elimination
//   - Deterministic: printing and serialization do not depend on map order
//   - Parallel where it pays: space preparation fans out over a worker pool
//
// Packages:
//
//	linear/    - Linear[K], annotations, outer and tensor products, printing
//	word/      - Word, Key, Codec, orders
//	shuffle/   - shuffle and quasi-shuffle products
//	lyndon/    - factorization, Lyndon words, ToBasis
//	coalgebra/ - co-keys, Coproduct, Comultiply
//	delta/     - D, cross ratios, Lido symbols, substitution, projection
//	gamma/     - minors, Plucker coordinates, pullbacks, delta conversion
//	space/     - sparse matrices, rank oracles, Rank, Venn, Mapping
//	codec/     - Marshal and Unmarshal of expressions
//
// Quick example:
//
//	e := word.Single(2, 1, 3)
//	fmt.Println(word.Format(lyndon.ToBasis(e)))
//	// - (1, 2, 3)
//	// - (1, 3, 2)
//
//	go get github.com/katalvlaran/polylog
package polylog
