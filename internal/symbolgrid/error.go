package symbolgrid

import (
	"errors"
	"fmt"
)

// ConfigError reports an internally inconsistent parameter set. It is always
// detected before any randomness is spent.
type ConfigError struct {
	Reason string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return "symbolgrid: invalid config: " + e.Reason
}

// ExhaustedError is returned when the retry ceiling was reached without
// producing a puzzle whose hint set passes the rank check.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf(
		"symbolgrid: failed to generate a solvable puzzle after %d attempts",
		e.Attempts,
	)
}

// errRankDeficient marks a grid whose full coefficient matrix cannot pin
// down every symbol value; no hint subset of such a grid works, so the
// generation loop consumes this error and retries with a fresh grid.
var errRankDeficient = errors.New("coefficient matrix is rank deficient")
