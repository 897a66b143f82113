package symbolgrid

import (
	"math"
	"slices"
)

/*
 * The one piece of linear algebra in the repository. A puzzle is solvable
 * from a set of sum equations exactly when the matrix counting symbol
 * occurrences per equation has rank >= the number of symbols, so rank is
 * kept as a pure function over an explicit equation set and everything
 * else stays combinatorial.
 */

// coefficientMatrix builds one equation per row sum and per column sum.
// Entry (i, j) counts how often symbol j occurs in line i; lines 0..N-1 are
// rows, lines N..2N-1 are columns.
func coefficientMatrix(grid [][]int, numSymbols int) [][]float64 {
	size := len(grid)
	m := make([][]float64, 2*size)
	for i := range m {
		m[i] = make([]float64, numSymbols)
	}
	for row := range size {
		for col := range size {
			sym := grid[row][col]
			m[row][sym]++
			m[size+col][sym]++
		}
	}
	return m
}

// Entries are small non-negative counts, so elimination stays well away
// from this threshold for any grid size the presets allow.
const rankEpsilon = 1e-9

// rank computes the matrix rank by Gaussian elimination with partial
// pivoting. The input rows are cloned, m is never mutated.
func rank(m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	rows := make([][]float64, len(m))
	for i, row := range m {
		rows[i] = slices.Clone(row)
	}
	cols := len(rows[0])

	rk := 0
	for col := 0; col < cols && rk < len(rows); col++ {
		pivot := rk
		for i := rk + 1; i < len(rows); i++ {
			if math.Abs(rows[i][col]) > math.Abs(rows[pivot][col]) {
				pivot = i
			}
		}
		if math.Abs(rows[pivot][col]) < rankEpsilon {
			continue
		}
		rows[rk], rows[pivot] = rows[pivot], rows[rk]
		for i := rk + 1; i < len(rows); i++ {
			f := rows[i][col] / rows[rk][col]
			for j := col; j < cols; j++ {
				rows[i][j] -= f * rows[rk][j]
			}
		}
		rk++
	}
	return rk
}

// subMatrix views the equations picked out by idx. Rows are shared with m,
// which is safe because rank clones whatever it is given.
func subMatrix(m [][]float64, idx []int) [][]float64 {
	sub := make([][]float64, len(idx))
	for i, j := range idx {
		sub[i] = m[j]
	}
	return sub
}
