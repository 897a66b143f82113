package kenken

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed 3x3 Latin square for deterministic clue checks
func testSquare() [][]int {
	return [][]int{
		{1, 2, 3},
		{2, 3, 1},
		{3, 1, 2},
	}
}

func TestAssignOpsSingleCell(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	cages := assignOps(testSquare(), [][]Cell{{{0, 0}}}, []Op{OpAdd}, r)
	require.Len(t, cages, 1)
	assert.Equal(t, OpNone, cages[0].Op)
	assert.Equal(t, 1, cages[0].Target)
}

func TestAssignOpsTwoCells(t *testing.T) {
	// cage over cells (0,0)=1 and (0,1)=2
	cells := [][]Cell{{{0, 0}, {0, 1}}}
	tests := []struct {
		name    string
		allowed []Op
		wantOp  Op
		want    int
	}{
		{"addition", []Op{OpAdd}, OpAdd, 3},
		{"subtraction", []Op{OpSub}, OpSub, 1},
		{"multiplication", []Op{OpMul}, OpMul, 2},
		{"division", []Op{OpDiv}, OpDiv, 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(3, 4))
			cages := assignOps(testSquare(), cells, test.allowed, r)
			require.Len(t, cages, 1)
			assert.Equal(t, test.wantOp, cages[0].Op)
			assert.Equal(t, test.want, cages[0].Target)
		})
	}
}

func TestAssignOpsDivisionFallback(t *testing.T) {
	// values 2 and 3 have no exact ratio; division-only configs must fall
	// back to another binary operation with a correct target
	square := [][]int{{2, 3}, {3, 2}}
	r := rand.New(rand.NewPCG(5, 6))

	for range 20 {
		cages := assignOps(square, [][]Cell{{{0, 0}, {0, 1}}}, []Op{OpDiv}, r)
		require.Len(t, cages, 1)
		switch cages[0].Op {
		case OpAdd:
			assert.Equal(t, 5, cages[0].Target)
		case OpSub:
			assert.Equal(t, 1, cages[0].Target)
		case OpMul:
			assert.Equal(t, 6, cages[0].Target)
		default:
			t.Fatalf("unexpected fallback operation %q", cages[0].Op)
		}
	}
}

func TestAssignOpsLargeCagesAddOrMul(t *testing.T) {
	cells := [][]Cell{{{0, 0}, {0, 1}, {0, 2}}} // values 1, 2, 3
	r := rand.New(rand.NewPCG(7, 8))

	for range 20 {
		cages := assignOps(testSquare(), cells, []Op{OpAdd, OpSub, OpMul, OpDiv}, r)
		require.Len(t, cages, 1)
		switch cages[0].Op {
		case OpAdd:
			assert.Equal(t, 6, cages[0].Target)
		case OpMul:
			assert.Equal(t, 6, cages[0].Target)
		default:
			t.Fatalf("cage of three cells got binary operation %q", cages[0].Op)
		}
	}
}

func TestAssignOpsOrderInvariance(t *testing.T) {
	// flipping cell storage order must not change − or ÷ targets
	square := [][]int{{4, 2, 1, 3}, {1, 3, 2, 4}, {2, 4, 3, 1}, {3, 1, 4, 2}}

	forward := [][]Cell{{{0, 0}, {0, 1}}}  // 4 then 2
	backward := [][]Cell{{{0, 1}, {0, 0}}} // 2 then 4

	for _, op := range []Op{OpSub, OpDiv} {
		r := rand.New(rand.NewPCG(9, 10))
		a := assignOps(square, forward, []Op{op}, r)
		b := assignOps(square, backward, []Op{op}, r)
		require.Equal(t, op, a[0].Op)
		require.Equal(t, op, b[0].Op)
		assert.Equal(t, a[0].Target, b[0].Target)
	}
}

func TestAssignOpsPreservesCells(t *testing.T) {
	cells := [][]Cell{{{1, 0}, {1, 1}}}
	r := rand.New(rand.NewPCG(11, 12))
	cages := assignOps(testSquare(), cells, []Op{OpAdd}, r)
	require.Len(t, cages, 1)
	assert.Equal(t, []Cell{{1, 0}, {1, 1}}, cages[0].Cells)
}
