package symbolgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoefficientMatrixShape(t *testing.T) {
	grid := [][]int{{0, 1}, {1, 0}}
	m := coefficientMatrix(grid, 2)
	assert.Len(t, m, 4)
	for _, row := range m {
		assert.Len(t, row, 2)
	}
}

func TestCoefficientMatrixCounts(t *testing.T) {
	grid := [][]int{
		{0, 0, 1},
		{1, 1, 0},
		{0, 1, 0},
	}
	m := coefficientMatrix(grid, 2)

	// row 0 holds symbol 0 twice and symbol 1 once
	assert.Equal(t, 2.0, m[0][0])
	assert.Equal(t, 1.0, m[0][1])
	// column 0 (equation index 3) holds symbol 0 twice and symbol 1 once
	assert.Equal(t, 2.0, m[3][0])
	assert.Equal(t, 1.0, m[3][1])
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		m    [][]float64
		want int
	}{
		{
			name: "empty",
			m:    nil,
			want: 0,
		},
		{
			name: "identity",
			m:    [][]float64{{1, 0}, {0, 1}},
			want: 2,
		},
		{
			name: "duplicate rows",
			m:    [][]float64{{1, 2}, {1, 2}, {2, 4}},
			want: 1,
		},
		{
			name: "dependent third row",
			m:    [][]float64{{1, 0, 1}, {0, 1, 1}, {1, 1, 2}},
			want: 2,
		},
		{
			name: "tall full rank",
			m:    [][]float64{{2, 1}, {1, 1}, {1, 2}},
			want: 2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, rank(test.m))
		})
	}
}

func TestRankDoesNotMutate(t *testing.T) {
	m := [][]float64{{1, 2}, {3, 4}}
	rank(m)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)
}
