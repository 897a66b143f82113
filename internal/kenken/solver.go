package kenken

import "slices"

/*
 * Uniqueness solver. Works from the clues alone: the emitted cage set must
 * admit exactly one assignment, and the solver proves it by counting
 * solutions up to two. Candidate elimination uses row/column-seen values
 * plus partial cage arithmetic, and branching always picks the cell with
 * the fewest surviving candidates.
 */

// Hard cap on node visits. A search that blows through this is reported as
// non-unique, which sends the generator back around its retry loop instead
// of burning CPU on a pathological cage layout.
const maxSolverNodes = 200_000

// Search state lives in flat slices, not recursive closures: values is the
// row-major partial assignment (0 = empty) and rowUsed/colUsed are value
// bitmasks, so a node visit touches no heap beyond the first-solution copy.
type solver struct {
	size    int
	cages   []Cage
	cageOf  []int // cell index -> cage index
	values  []int
	rowUsed []uint16
	colUsed []uint16
	nodes   int
	count   int
	first   []int
}

// countSolutions counts assignments consistent with the cage clues,
// stopping at two. It also returns the first solution found (row-major),
// which callers use to cross-check against the intended one.
func countSolutions(size int, cages []Cage) (int, []int) {
	s := &solver{
		size:    size,
		cages:   cages,
		cageOf:  make([]int, size*size),
		values:  make([]int, size*size),
		rowUsed: make([]uint16, size),
		colUsed: make([]uint16, size),
	}
	for i, cage := range cages {
		for _, c := range cage.Cells {
			s.cageOf[c.Row*size+c.Col] = i
		}
	}
	s.search()
	return s.count, s.first
}

func (s *solver) search() {
	if s.count >= 2 {
		return
	}
	s.nodes++
	if s.nodes > maxSolverNodes {
		s.count = 2
		return
	}

	cell, candidates := s.mostConstrained()
	if cell == -1 {
		s.count++
		if s.count == 1 {
			s.first = slices.Clone(s.values)
		}
		return
	}

	row, col := cell/s.size, cell%s.size
	for v := 1; v <= s.size; v++ {
		bit := uint16(1) << v
		if candidates&bit == 0 {
			continue
		}
		s.values[cell] = v
		s.rowUsed[row] |= bit
		s.colUsed[col] |= bit

		s.search()

		s.values[cell] = 0
		s.rowUsed[row] &^= bit
		s.colUsed[col] &^= bit
		if s.count >= 2 {
			return
		}
	}
}

// mostConstrained picks the empty cell with the fewest candidates, or -1
// when the grid is complete. A cell with zero candidates is returned
// immediately: the caller's value loop then falls straight through and the
// branch dies.
func (s *solver) mostConstrained() (int, uint16) {
	best, bestMask, bestCount := -1, uint16(0), s.size+1
	for cell, v := range s.values {
		if v != 0 {
			continue
		}
		mask := s.candidates(cell)
		count := popCount(mask)
		if count == 0 {
			return cell, 0
		}
		if count < bestCount {
			best, bestMask, bestCount = cell, mask, count
		}
	}
	return best, bestMask
}

func (s *solver) candidates(cell int) uint16 {
	row, col := cell/s.size, cell%s.size
	var mask uint16
	for v := 1; v <= s.size; v++ {
		bit := uint16(1) << v
		if s.rowUsed[row]&bit != 0 || s.colUsed[col]&bit != 0 {
			continue
		}
		if s.cageFeasible(cell, v) {
			mask |= bit
		}
	}
	return mask
}

// cageFeasible reports whether value v in cell can still satisfy the
// cell's cage given its currently filled members. For + and × it bounds
// resp. divides the partial aggregate; for the binary − and ÷ it checks the
// partner cell, fixed or not, can complete the target.
func (s *solver) cageFeasible(cell, v int) bool {
	cg := &s.cages[s.cageOf[cell]]

	switch cg.Op {
	case OpNone:
		return v == cg.Target

	case OpSub, OpDiv:
		other := -1
		for _, c := range cg.Cells {
			if idx := c.Row*s.size + c.Col; idx != cell {
				other = idx
			}
		}
		w := s.values[other]
		if cg.Op == OpSub {
			if w != 0 {
				return absDiff(v, w) == cg.Target
			}
			return v+cg.Target <= s.size || v-cg.Target >= 1
		}
		if w != 0 {
			hi, lo := max(v, w), min(v, w)
			return hi%lo == 0 && hi/lo == cg.Target
		}
		return v*cg.Target <= s.size || (v%cg.Target == 0 && v/cg.Target >= 1)

	case OpAdd:
		sum, remaining := v, 0
		for _, c := range cg.Cells {
			idx := c.Row*s.size + c.Col
			if idx == cell {
				continue
			}
			if w := s.values[idx]; w != 0 {
				sum += w
			} else {
				remaining++
			}
		}
		if remaining == 0 {
			return sum == cg.Target
		}
		return sum+remaining <= cg.Target && sum+remaining*s.size >= cg.Target

	case OpMul:
		product, remaining := v, 0
		for _, c := range cg.Cells {
			idx := c.Row*s.size + c.Col
			if idx == cell {
				continue
			}
			if w := s.values[idx]; w != 0 {
				product *= w
			} else {
				remaining++
			}
		}
		if remaining == 0 {
			return product == cg.Target
		}
		return cg.Target%product == 0
	}
	return false
}

func popCount(mask uint16) int {
	count := 0
	for ; mask != 0; mask &= mask - 1 {
		count++
	}
	return count
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
