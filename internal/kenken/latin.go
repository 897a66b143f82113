package kenken

import (
	"math/rand/v2"
	"slices"
)

// Restart budget for the row-by-row construction. Greedy row filling dead
// -ends rarely (any partial square of fewer than size-1 rows extends), so a
// handful of restarts is already generous.
const latinRestarts = 100

// latinSquare builds a random Latin square over 1..size. Rows are filled
// top to bottom; each row is a permutation found by backtracking over a
// freshly shuffled value order, which keeps repeated calls uncorrelated
// rather than cyclic shifts of one base row. A construction that dead-ends
// restarts from an empty grid.
func latinSquare(size int, r *rand.Rand) ([][]int, error) {
	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}

	for range latinRestarts {
		grid := make([][]int, 0, size)
		for len(grid) < size {
			order := slices.Clone(values)
			r.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
			row := validRow(grid, size, order)
			if row == nil {
				break
			}
			grid = append(grid, row)
		}
		if len(grid) == size {
			return grid, nil
		}
	}
	return nil, errLatinStalled
}

// validRow finds a permutation for the next row consistent with the columns
// filled so far, trying values in the given order. Returns nil when no such
// permutation exists.
func validRow(grid [][]int, size int, order []int) []int {
	colUsed := make([]uint16, size)
	for col := range size {
		for _, row := range grid {
			colUsed[col] |= 1 << row[col]
		}
	}

	row := make([]int, 0, size)
	var rowUsed uint16

	var fill func(col int) bool
	fill = func(col int) bool {
		if col == size {
			return true
		}
		for _, v := range order {
			bit := uint16(1) << v
			if rowUsed&bit != 0 || colUsed[col]&bit != 0 {
				continue
			}
			row = append(row, v)
			rowUsed |= bit
			colUsed[col] |= bit
			if fill(col + 1) {
				return true
			}
			row = row[:len(row)-1]
			rowUsed &^= bit
			colUsed[col] &^= bit
		}
		return false
	}

	if fill(0) {
		return row
	}
	return nil
}
