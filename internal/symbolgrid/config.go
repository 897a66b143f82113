package symbolgrid

import "fmt"

// Symbols is the glyph alphabet puzzles draw from. A puzzle uses the first
// NumSymbols entries, so NumSymbols may never exceed len(Symbols).
var Symbols = []string{
	"★", "♦", "♠", "♣", "♥", "▲", "●", "■", "◆", "✦", "⊕", "⊗",
}

// SymbolColors holds one CSS color per glyph, same indexing as Symbols.
var SymbolColors = []string{
	"#ffd700", // gold
	"#dc3232", // red
	"#1e64c8", // blue
	"#32b432", // green
	"#dc50b4", // pink
	"#ff8c00", // orange
	"#783cc8", // purple
	"#00b4b4", // teal
	"#b4783c", // brown
	"#64c8ff", // sky blue
	"#c8c832", // yellow-green
	"#a0a0a0", // silver
}

// DefaultMaxRetries bounds the generate/validate loop when Params leaves
// MaxRetries unset.
const DefaultMaxRetries = 100

// Params configures one generation request. Instances are treated as
// immutable; the named presets below cover the shipped difficulty tiers.
type Params struct {
	GridSize       int     `json:"grid_size"`
	NumSymbols     int     `json:"num_symbols"`
	ValueMin       int     `json:"value_min"`
	ValueMax       int     `json:"value_max"`
	HintFraction   float64 `json:"hint_fraction"`
	DistinctValues bool    `json:"distinct_values"`
	MaxRetries     int     `json:"max_retries,omitempty"`
}

// Validate checks the parameter set for internal consistency. Every failure
// is a *ConfigError; a nil return means Generate can only fail by
// exhausting its retries.
func (p Params) Validate() error {
	if p.GridSize < 1 {
		return &ConfigError{Reason: "grid_size must be >= 1"}
	}
	if p.NumSymbols < 2 {
		return &ConfigError{Reason: "num_symbols must be >= 2"}
	}
	if p.NumSymbols > 2*p.GridSize {
		return &ConfigError{Reason: fmt.Sprintf(
			"num_symbols (%d) exceeds max equations (2 * %d)",
			p.NumSymbols, p.GridSize,
		)}
	}
	if cells := p.GridSize * p.GridSize; p.NumSymbols > cells {
		return &ConfigError{Reason: fmt.Sprintf(
			"num_symbols (%d) exceeds grid cells (%d)", p.NumSymbols, cells,
		)}
	}
	if p.NumSymbols > len(Symbols) {
		return &ConfigError{Reason: fmt.Sprintf(
			"num_symbols (%d) exceeds glyph alphabet (%d)",
			p.NumSymbols, len(Symbols),
		)}
	}
	valueRange := p.ValueMax - p.ValueMin + 1
	if valueRange < 2 {
		return &ConfigError{Reason: "value range must contain at least 2 values"}
	}
	if p.DistinctValues && valueRange < p.NumSymbols {
		return &ConfigError{Reason: fmt.Sprintf(
			"value range [%d, %d] too small for %d distinct values",
			p.ValueMin, p.ValueMax, p.NumSymbols,
		)}
	}
	if p.HintFraction < 0.0 || p.HintFraction > 1.0 {
		return &ConfigError{Reason: "hint_fraction must be in [0.0, 1.0]"}
	}
	if p.MaxRetries < 0 {
		return &ConfigError{Reason: "max_retries must not be negative"}
	}
	return nil
}

// Presets are the shipped difficulty tiers, keyed by display name.
var Presets = map[string]Params{
	"Easy":   {GridSize: 3, NumSymbols: 3, ValueMin: 1, ValueMax: 5, HintFraction: 1.0, DistinctValues: true},
	"Medium": {GridSize: 4, NumSymbols: 4, ValueMin: 1, ValueMax: 10, HintFraction: 0.75, DistinctValues: true},
	"Hard":   {GridSize: 5, NumSymbols: 6, ValueMin: 1, ValueMax: 15, HintFraction: 0.6},
	"Expert": {GridSize: 5, NumSymbols: 7, ValueMin: 1, ValueMax: 20, HintFraction: 0.0},
}

// PresetNames lists the presets in display order.
var PresetNames = []string{"Easy", "Medium", "Hard", "Expert"}
