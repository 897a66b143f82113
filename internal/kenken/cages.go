package kenken

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvlath/gridgraph"
)

/*
 * Cage partitioning by randomized region growth. Unassigned cells are
 * visited in random order; each becomes the seed of a new cage which
 * expands into random 4-adjacent unassigned cells until it reaches a
 * target size drawn from [minSize, maxSize] or runs out of room. Seeds
 * that got stuck below their target are folded into a neighbouring cage
 * afterwards where the size bound allows, otherwise they stay singletons.
 */
func partition(size, minSize, maxSize int, r *rand.Rand) [][]Cell {
	cells := size * size
	assigned := make([]int, cells) // cage index per cell
	for i := range assigned {
		assigned[i] = -1
	}

	var cages [][]Cell
	var stuck []int // cage indexes that ended below their drawn target

	for _, seed := range r.Perm(cells) {
		if assigned[seed] != -1 {
			continue
		}
		id := len(cages)
		target := minSize + r.IntN(maxSize-minSize+1)
		cage := []Cell{{Row: seed / size, Col: seed % size}}
		assigned[seed] = id

		for len(cage) < target {
			var frontier []Cell
			for _, c := range cage {
				for _, nb := range neighbors(c, size) {
					if assigned[nb.Row*size+nb.Col] == -1 {
						frontier = append(frontier, nb)
					}
				}
			}
			if len(frontier) == 0 {
				break
			}
			next := frontier[r.IntN(len(frontier))]
			assigned[next.Row*size+next.Col] = id
			cage = append(cage, next)
		}

		if len(cage) < target && len(cage) == 1 {
			stuck = append(stuck, id)
		}
		cages = append(cages, cage)
	}

	return mergeStuck(cages, stuck, assigned, size, maxSize, r)
}

// mergeStuck folds stuck singleton cages into an adjacent cage when that
// cage stays within maxSize. Merging never breaks connectivity: the
// singleton touches the cage it joins.
func mergeStuck(
	cages [][]Cell, stuck []int,
	assigned []int, size, maxSize int, r *rand.Rand,
) [][]Cell {
	for _, id := range stuck {
		if len(cages[id]) != 1 {
			continue // grew since: hosted another stuck cell
		}
		cell := cages[id][0]
		var hosts []int
		for _, nb := range neighbors(cell, size) {
			host := assigned[nb.Row*size+nb.Col]
			if host != id && len(cages[host])+1 <= maxSize {
				hosts = append(hosts, host)
			}
		}
		if len(hosts) == 0 {
			continue
		}
		host := hosts[r.IntN(len(hosts))]
		cages[host] = append(cages[host], cell)
		assigned[cell.Row*size+cell.Col] = host
		cages[id] = nil
	}

	kept := cages[:0]
	for _, cage := range cages {
		if cage != nil {
			kept = append(kept, cage)
		}
	}
	return kept
}

func neighbors(c Cell, size int) []Cell {
	var nbs []Cell
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		row, col := c.Row+d[0], c.Col+d[1]
		if row >= 0 && row < size && col >= 0 && col < size {
			nbs = append(nbs, Cell{Row: row, Col: col})
		}
	}
	return nbs
}

// validatePartition checks the cage set before emission: exact cover of the
// grid, no overlaps, every cage a single 4-connected region. A failure here
// is a bug in the partitioner, not a retryable condition, and propagates to
// the caller as-is.
func validatePartition(size int, cages [][]Cell) error {
	seen := make([]bool, size*size)
	for i, cage := range cages {
		if len(cage) == 0 {
			return fmt.Errorf("kenken: cage %d is empty", i)
		}
		mask := make([][]int, size)
		for row := range mask {
			mask[row] = make([]int, size)
		}
		for _, c := range cage {
			idx := c.Row*size + c.Col
			if seen[idx] {
				return fmt.Errorf("kenken: cell %d,%d covered twice", c.Row, c.Col)
			}
			seen[idx] = true
			mask[c.Row][c.Col] = 1
		}
		gg, err := gridgraph.NewGridGraph(mask, gridgraph.DefaultGridOptions())
		if err != nil {
			return fmt.Errorf("kenken: cage %d: %w", i, err)
		}
		if comps := gg.ConnectedComponents(); len(comps) != 1 {
			return fmt.Errorf(
				"kenken: cage %d splits into %d regions", i, len(comps),
			)
		}
	}
	for idx, ok := range seen {
		if !ok {
			return fmt.Errorf("kenken: cell %d,%d uncovered", idx/size, idx%size)
		}
	}
	return nil
}
