package kenken

// Op is a cage's arithmetic operation. Subtraction and division are
// binary-only: cages of three or more cells always carry OpAdd or OpMul.
type Op string

const (
	OpNone Op = "" // single-cell cages carry the bare value
	OpAdd  Op = "+"
	OpSub  Op = "-"
	OpMul  Op = "×"
	OpDiv  Op = "÷"
)

// Cell addresses one grid position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cage is a 4-connected group of cells sharing one arithmetic clue. Target
// is Op applied across the cage's solution values; for two-cell OpSub and
// OpDiv cages it is larger-minus-smaller resp. larger-over-smaller,
// independent of cell storage order.
type Cage struct {
	Cells  []Cell `json:"cells"`
	Op     Op     `json:"op"`
	Target int    `json:"target"`
}

// Puzzle is the finished record handed to the caller. Solution is a Latin
// square over 1..Size; Cages partition the grid exactly and have been
// proven to admit no assignment other than Solution.
type Puzzle struct {
	Size     int     `json:"size"`
	Solution [][]int `json:"solution"`
	Cages    []Cage  `json:"cages"`
}
