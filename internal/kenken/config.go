package kenken

import (
	"fmt"
	"slices"
)

// DefaultMaxRetries bounds the generate/validate loop when Params leaves
// MaxRetries unset.
const DefaultMaxRetries = 100

// Params configures one generation request. A zero MinCageSize means 1 and
// a zero MaxRetries means DefaultMaxRetries; everything else must be set
// explicitly.
type Params struct {
	Size        int  `json:"size"`
	MinCageSize int  `json:"min_cage_size,omitempty"`
	MaxCageSize int  `json:"max_cage_size"`
	Ops         []Op `json:"ops"`
	MaxRetries  int  `json:"max_retries,omitempty"`
}

func (p Params) withDefaults() Params {
	if p.MinCageSize == 0 {
		p.MinCageSize = 1
	}
	if p.MaxRetries == 0 {
		p.MaxRetries = DefaultMaxRetries
	}
	return p
}

// Validate checks the parameter set for internal consistency. Every failure
// is a *ConfigError.
func (p Params) Validate() error {
	if p.Size < 3 || p.Size > 9 {
		return &ConfigError{Reason: "size must be between 3 and 9"}
	}
	if p.MinCageSize < 1 {
		return &ConfigError{Reason: "min_cage_size must be >= 1"}
	}
	if p.MaxCageSize < p.MinCageSize {
		return &ConfigError{Reason: fmt.Sprintf(
			"max_cage_size (%d) below min_cage_size (%d)",
			p.MaxCageSize, p.MinCageSize,
		)}
	}
	if cells := p.Size * p.Size; p.MaxCageSize > cells {
		return &ConfigError{Reason: fmt.Sprintf(
			"max_cage_size (%d) exceeds grid cells (%d)", p.MaxCageSize, cells,
		)}
	}
	if len(p.Ops) == 0 {
		return &ConfigError{Reason: "at least one operation required"}
	}
	for _, op := range p.Ops {
		switch op {
		case OpAdd, OpSub, OpMul, OpDiv:
		default:
			return &ConfigError{Reason: fmt.Sprintf("unknown operation %q", op)}
		}
	}
	// Cages of three or more cells can only be clued with + or ×.
	if p.MaxCageSize >= 3 &&
		!slices.Contains(p.Ops, OpAdd) && !slices.Contains(p.Ops, OpMul) {
		return &ConfigError{Reason: fmt.Sprintf(
			"operations %v cannot clue cages of size %d",
			p.Ops, p.MaxCageSize,
		)}
	}
	if p.MaxRetries < 0 {
		return &ConfigError{Reason: "max_retries must not be negative"}
	}
	return nil
}

// Presets are the shipped difficulty tiers, keyed by display name.
var Presets = map[string]Params{
	"Easy":   {Size: 3, MaxCageSize: 2, Ops: []Op{OpAdd}},
	"Medium": {Size: 4, MaxCageSize: 3, Ops: []Op{OpAdd, OpSub}},
	"Hard":   {Size: 5, MaxCageSize: 4, Ops: []Op{OpAdd, OpSub, OpMul}},
	"Expert": {Size: 6, MaxCageSize: 4, Ops: []Op{OpAdd, OpSub, OpMul, OpDiv}},
}

// PresetNames lists the presets in display order.
var PresetNames = []string{"Easy", "Medium", "Hard", "Expert"}
