// Package kenken generates Latin-square cage-arithmetic puzzles with a
// proven-unique solution: a random Latin square is partitioned into
// connected cages, each cage gets an arithmetic clue, and a backtracking
// solver confirms the clues admit exactly one assignment before the puzzle
// is emitted.
package kenken

import (
	"errors"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Generate runs the build/validate loop: Latin square, cage partition,
// clue assignment, then the uniqueness proof. A non-unique clue set (or a
// stalled Latin-square construction) discards the whole attempt and
// rebuilds from fresh randomness; once the retry ceiling is hit the caller
// gets *ExhaustedError, never a degraded puzzle.
//
// Generate is pure apart from r: concurrent calls with independent rands
// need no coordination.
func Generate(p Params, r *rand.Rand) (*Puzzle, error) {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= p.MaxRetries; attempt++ {
		square, err := latinSquare(p.Size, r)
		if errors.Is(err, errLatinStalled) {
			Log.WithFields(logrus.Fields{
				"attempt": attempt,
				"size":    p.Size,
			}).Debug("latin square stalled, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}

		cells := partition(p.Size, p.MinCageSize, p.MaxCageSize, r)
		if err := validatePartition(p.Size, cells); err != nil {
			return nil, err
		}

		cages := assignOps(square, cells, p.Ops, r)

		if n, _ := countSolutions(p.Size, cages); n != 1 {
			Log.WithFields(logrus.Fields{
				"attempt":   attempt,
				"size":      p.Size,
				"solutions": n,
			}).Debug("cage puzzle not unique, retrying")
			continue
		}

		return &Puzzle{Size: p.Size, Solution: square, Cages: cages}, nil
	}

	Log.WithFields(logrus.Fields{
		"size":        p.Size,
		"max_retries": p.MaxRetries,
	}).Warn("cage puzzle generation exhausted")

	return nil, &ExhaustedError{Attempts: p.MaxRetries}
}
