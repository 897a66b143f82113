// Package symbolgrid generates symbol-to-value deduction puzzles: an N×N
// grid of symbols, a hidden value per symbol, and a subset of row/column
// sums proven sufficient to recover every value uniquely.
package symbolgrid

import (
	"errors"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Generate runs the build/validate loop until a puzzle with a provably
// solvable hint set comes out. Validation failure (a rank-deficient grid)
// discards the whole attempt and rebuilds from fresh randomness; once the
// retry ceiling is hit the caller gets *ExhaustedError, never a degraded
// puzzle.
//
// Generate is pure apart from r: concurrent calls with independent rands
// need no coordination.
func Generate(p Params, r *rand.Rand) (*Puzzle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxRetries := p.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		values := drawValues(p, r)
		grid := fillGrid(p.GridSize, p.NumSymbols, r)

		hints, err := selectHints(grid, values, p.NumSymbols, p.HintFraction, r)
		if errors.Is(err, errRankDeficient) {
			Log.WithFields(logrus.Fields{
				"attempt":   attempt,
				"grid_size": p.GridSize,
				"symbols":   p.NumSymbols,
			}).Debug("rank deficient grid, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}

		return &Puzzle{
			Grid:         grid,
			SymbolValues: values,
			Hints:        hints,
			NumSymbols:   p.NumSymbols,
			ValueMin:     p.ValueMin,
			ValueMax:     p.ValueMax,
		}, nil
	}

	Log.WithFields(logrus.Fields{
		"grid_size":   p.GridSize,
		"symbols":     p.NumSymbols,
		"max_retries": maxRetries,
	}).Warn("symbol grid generation exhausted")

	return nil, &ExhaustedError{Attempts: maxRetries}
}
