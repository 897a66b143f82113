package kenken

import (
	"math/rand/v2"
	"slices"
)

// assignOps fixes every cage's operation and target from the solution grid.
// Singletons carry the bare cell value. Two-cell cages draw from the
// allowed set in random order, skipping division when the ratio is inexact;
// if nothing in the allowed set fits (division-only config, inexact ratio)
// the cage falls back to a random one of +, −, ×. Larger cages are clued
// with + or ×, whichever of the two the config allows.
func assignOps(solution [][]int, cages [][]Cell, allowed []Op, r *rand.Rand) []Cage {
	out := make([]Cage, 0, len(cages))
	for _, cells := range cages {
		values := make([]int, len(cells))
		for i, c := range cells {
			values[i] = solution[c.Row][c.Col]
		}
		op, target := pickOp(values, allowed, r)
		out = append(out, Cage{Cells: cells, Op: op, Target: target})
	}
	return out
}

func pickOp(values []int, allowed []Op, r *rand.Rand) (Op, int) {
	if len(values) == 1 {
		return OpNone, values[0]
	}

	if len(values) == 2 {
		hi := max(values[0], values[1])
		lo := min(values[0], values[1])

		candidates := slices.Clone(allowed)
		r.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, op := range candidates {
			switch op {
			case OpAdd:
				return OpAdd, hi + lo
			case OpSub:
				return OpSub, hi - lo
			case OpMul:
				return OpMul, hi * lo
			case OpDiv:
				if hi%lo == 0 {
					return OpDiv, hi / lo
				}
				// inexact ratio, try another operation
			}
		}
		// Only division was allowed and it did not divide evenly.
		fallback := [3]Op{OpAdd, OpSub, OpMul}
		switch op := fallback[r.IntN(len(fallback))]; op {
		case OpSub:
			return OpSub, hi - lo
		case OpMul:
			return OpMul, hi * lo
		default:
			return OpAdd, hi + lo
		}
	}

	// Three or more cells: subtraction and division are binary-only, so the
	// pool is the allowed subset of {+, ×}. Validate guarantees it is not
	// empty whenever cages this large can occur.
	var pool []Op
	if slices.Contains(allowed, OpAdd) {
		pool = append(pool, OpAdd)
	}
	if slices.Contains(allowed, OpMul) {
		pool = append(pool, OpMul)
	}

	if op := pool[r.IntN(len(pool))]; op == OpMul {
		product := 1
		for _, v := range values {
			product *= v
		}
		return OpMul, product
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return OpAdd, sum
}
