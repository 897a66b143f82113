package symbolgrid

// Axis names the line a hint sums over.
type Axis string

const (
	AxisRow Axis = "row"
	AxisCol Axis = "col"
)

// Hint is one revealed sum equation.
type Hint struct {
	Axis  Axis `json:"axis"`
	Index int  `json:"index"`
	Total int  `json:"total"`
}

// Puzzle is the finished record handed to the caller. It is never mutated
// after Generate returns it: the hint set has already been proven to
// determine every symbol value.
type Puzzle struct {
	Grid         [][]int `json:"grid"` // Grid[row][col] = symbol index
	SymbolValues []int   `json:"symbol_values"`
	Hints        []Hint  `json:"hints"`
	NumSymbols   int     `json:"num_symbols"`
	ValueMin     int     `json:"value_min"`
	ValueMax     int     `json:"value_max"`
}

func (p *Puzzle) GridSize() int {
	return len(p.Grid)
}
