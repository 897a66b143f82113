package kenken

import (
	"errors"
	"fmt"
)

// ConfigError reports an internally inconsistent parameter set, detected
// before any randomness is spent.
type ConfigError struct {
	Reason string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return "kenken: invalid config: " + e.Reason
}

// ExhaustedError is returned when the retry ceiling was reached without
// producing a puzzle with exactly one solution.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf(
		"kenken: failed to generate a unique puzzle after %d attempts",
		e.Attempts,
	)
}

// errLatinStalled marks a Latin-square construction that ran out of its own
// restart budget. Consumed by the generation loop, which retries the whole
// attempt.
var errLatinStalled = errors.New("latin square construction stalled")
