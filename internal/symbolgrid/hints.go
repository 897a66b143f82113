package symbolgrid

import (
	"math"
	"math/rand/v2"
)

// allSums computes the full 2N-equation hint set: every row sum followed by
// every column sum, in line order.
func allSums(grid [][]int, values []int) []Hint {
	size := len(grid)
	sums := make([]Hint, 0, 2*size)
	for row := range size {
		total := 0
		for col := range size {
			total += values[grid[row][col]]
		}
		sums = append(sums, Hint{Axis: AxisRow, Index: row, Total: total})
	}
	for col := range size {
		total := 0
		for row := range size {
			total += values[grid[row][col]]
		}
		sums = append(sums, Hint{Axis: AxisCol, Index: col, Total: total})
	}
	return sums
}

/*
 * Hint selection. Start from all 2N equations and greedily discard them
 * one at a time in random order, keeping a removal only while the
 * remaining coefficient rows still have rank >= NumSymbols, until the
 * target count is reached or no removal preserves rank. The random
 * discard order is the only source of variety between two puzzles built
 * from the same grid, so it is drawn fresh per attempt.
 *
 * Returns errRankDeficient when even the full equation set is rank
 * deficient; no subset of such a grid can work and the caller must build
 * a new grid.
 */
func selectHints(
	grid [][]int,
	values []int,
	numSymbols int,
	fraction float64,
	r *rand.Rand,
) ([]Hint, error) {
	matrix := coefficientMatrix(grid, numSymbols)
	if rank(matrix) < numSymbols {
		return nil, errRankDeficient
	}

	sums := allSums(grid, values)
	total := len(sums)

	if fraction >= 1.0 {
		return sums, nil
	}

	target := numSymbols
	if fraction > 0.0 {
		target = max(numSymbols, int(math.Round(fraction*float64(total))))
	}
	target = min(target, total)

	selected := make([]int, total)
	for i := range selected {
		selected[i] = i
	}
	for _, i := range r.Perm(total) {
		if len(selected) <= target {
			break
		}
		without := make([]int, 0, len(selected)-1)
		for _, j := range selected {
			if j != i {
				without = append(without, j)
			}
		}
		if rank(subMatrix(matrix, without)) >= numSymbols {
			selected = without
		}
	}

	// selected kept its ascending order through the removals, so hints come
	// out sorted by equation index (rows first, then columns).
	hints := make([]Hint, 0, len(selected))
	for _, i := range selected {
		hints = append(hints, sums[i])
	}
	return hints, nil
}
