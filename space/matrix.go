// SPDX-License-Identifier: MIT

package space

import (
	"slices"

	"github.com/katalvlaran/polylog/linear"
)

// Entry is a non-zero cell of a sparse row.
type Entry struct {
	Col   int
	Value int
}

// Matrix is a sparse integer matrix with one row per expression of a space
// and one column per distinct monomial. Rows keep their entries sorted by
// column. A Matrix is immutable once built.
type Matrix struct {
	rows [][]Entry
	cols int
}

// NewMatrix builds the coefficient matrix of space.
//
// Implementation:
//   - Stage 1: enumerate monomials, assigning column indices on first sight.
//   - Stage 2: emit each expression as a sparse row sorted by column.
//
// Complexity:
//   - Time O(T log T), Space O(T) where T is the total number of terms.
func NewMatrix[K comparable](space []linear.Linear[K]) *Matrix {
	index := make(map[K]int)
	m := &Matrix{rows: make([][]Entry, len(space))}
	for i, e := range space {
		row := make([]Entry, 0, e.NumTerms())
		for k, c := range e.All() {
			col, ok := index[k]
			if !ok {
				col = len(index)
				index[k] = col
			}
			row = append(row, Entry{Col: col, Value: c})
		}
		slices.SortFunc(row, func(a, b Entry) int { return a.Col - b.Col })
		m.rows[i] = row
	}
	m.cols = len(index)
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Row returns the entries of row i. The slice must not be modified.
func (m *Matrix) Row(i int) []Entry { return m.rows[i] }

// Dense returns the matrix as a dense row-major table.
func (m *Matrix) Dense() [][]int {
	ret := make([][]int, len(m.rows))
	for i, row := range m.rows {
		ret[i] = make([]int, m.cols)
		for _, e := range row {
			ret[i][e.Col] = e.Value
		}
	}
	return ret
}
