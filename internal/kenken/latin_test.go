package kenken

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatinSquareSizes(t *testing.T) {
	for _, size := range []int{3, 4, 5, 6} {
		t.Run(fmt.Sprintf("%dx%d", size, size), func(t *testing.T) {
			r := rand.New(rand.NewPCG(uint64(size), 2))
			for range 20 {
				square, err := latinSquare(size, r)
				require.NoError(t, err)
				assertLatin(t, size, square)
			}
		})
	}
}

// assertLatin checks every row and column is a permutation of 1..size.
func assertLatin(t *testing.T, size int, square [][]int) {
	t.Helper()
	require.Len(t, square, size)
	for _, row := range square {
		require.Len(t, row, size)
		seen := make(map[int]bool, size)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, size)
			seen[v] = true
		}
		assert.Len(t, seen, size, "row is not a permutation")
	}
	for col := range size {
		seen := make(map[int]bool, size)
		for row := range size {
			seen[square[row][col]] = true
		}
		assert.Len(t, seen, size, "column %d is not a permutation", col)
	}
}

func TestLatinSquareVariety(t *testing.T) {
	// consecutive squares from one source should not repeat; identical
	// output would point at correlated construction
	r := rand.New(rand.NewPCG(11, 12))
	a, err := latinSquare(5, r)
	require.NoError(t, err)
	b, err := latinSquare(5, r)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
