package kenken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singletonCages(square [][]int) []Cage {
	var cages []Cage
	for row, cells := range square {
		for col, v := range cells {
			cages = append(cages, Cage{
				Cells:  []Cell{{Row: row, Col: col}},
				Op:     OpNone,
				Target: v,
			})
		}
	}
	return cages
}

func flatten(square [][]int) []int {
	var flat []int
	for _, row := range square {
		flat = append(flat, row...)
	}
	return flat
}

func TestCountSolutionsFullyClued(t *testing.T) {
	square := testSquare()
	count, first := countSolutions(3, singletonCages(square))
	assert.Equal(t, 1, count)
	assert.Equal(t, flatten(square), first)
}

func TestCountSolutionsPropagatesThroughCages(t *testing.T) {
	// leave the top-left pair open behind a single addition clue; the
	// column constraints pin both cells, so exactly one assignment survives
	square := testSquare()
	cages := []Cage{{
		Cells:  []Cell{{0, 0}, {0, 1}},
		Op:     OpAdd,
		Target: 3,
	}}
	for row := range 3 {
		for col := range 3 {
			if row == 0 && col < 2 {
				continue
			}
			cages = append(cages, Cage{
				Cells:  []Cell{{Row: row, Col: col}},
				Op:     OpNone,
				Target: square[row][col],
			})
		}
	}

	count, first := countSolutions(3, cages)
	require.Equal(t, 1, count)
	assert.Equal(t, flatten(square), first)
}

func TestCountSolutionsDetectsAmbiguity(t *testing.T) {
	// one cage over the whole grid sums to 18 for every 3x3 Latin square
	all := Cage{Op: OpAdd, Target: 18}
	for row := range 3 {
		for col := range 3 {
			all.Cells = append(all.Cells, Cell{Row: row, Col: col})
		}
	}

	count, _ := countSolutions(3, []Cage{all})
	assert.Equal(t, 2, count, "solution count should cap at two")
}

func TestCageFeasibilityArithmetic(t *testing.T) {
	// a 2-cell 12× cage with one cell fixed to 3 forces the other to 4
	square := [][]int{
		{3, 4, 1, 2},
		{4, 3, 2, 1},
		{1, 2, 4, 3},
		{2, 1, 3, 4},
	}
	cages := []Cage{{
		Cells:  []Cell{{0, 0}, {0, 1}},
		Op:     OpMul,
		Target: 12,
	}}
	for row := range 4 {
		for col := range 4 {
			if row == 0 && col < 2 {
				continue
			}
			cages = append(cages, Cage{
				Cells:  []Cell{{Row: row, Col: col}},
				Op:     OpNone,
				Target: square[row][col],
			})
		}
	}

	count, first := countSolutions(4, cages)
	require.Equal(t, 1, count)
	assert.Equal(t, flatten(square), first)
}
