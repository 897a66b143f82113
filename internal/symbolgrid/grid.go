package symbolgrid

import (
	"math/rand/v2"
	"slices"
)

// drawValues picks one numeric value from [ValueMin, ValueMax] for each of
// the NumSymbols symbols. With DistinctValues the values are drawn without
// replacement and returned sorted; otherwise draws may repeat, but at least
// two distinct values are guaranteed so the puzzle is not degenerate.
func drawValues(p Params, r *rand.Rand) []int {
	valueRange := p.ValueMax - p.ValueMin + 1

	if p.DistinctValues {
		pool := make([]int, valueRange)
		for i := range pool {
			pool[i] = p.ValueMin + i
		}
		r.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		values := slices.Clone(pool[:p.NumSymbols])
		slices.Sort(values)
		return values
	}

	values := make([]int, p.NumSymbols)
	for i := range values {
		values[i] = p.ValueMin + r.IntN(valueRange)
	}
	for distinctCount(values) < 2 {
		values[r.IntN(len(values))] = p.ValueMin + r.IntN(valueRange)
	}
	return values
}

func distinctCount(values []int) int {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

/*
 * Lay out the grid. Write down one cell per symbol first so that every
 * symbol is guaranteed to appear: a symbol absent from the grid would
 * contribute an all-zero column to the coefficient matrix and silently
 * cap its rank below NumSymbols.
 */
func fillGrid(size, numSymbols int, r *rand.Rand) [][]int {
	cells := size * size

	flat := make([]int, 0, cells)
	for sym := range numSymbols {
		flat = append(flat, sym)
	}
	for len(flat) < cells {
		flat = append(flat, r.IntN(numSymbols))
	}
	r.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	grid := make([][]int, size)
	for row := range grid {
		grid[row] = flat[row*size : (row+1)*size]
	}
	return grid
}
