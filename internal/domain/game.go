package domain

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the mark shown on the board; Empty renders as "".
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// Full reports whether no cell is empty.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Outcome classifies an evaluated board.
type Outcome uint8

const (
	NoResult Outcome = iota
	Win
	Draw
)

// WinResult is the outcome of evaluating a board. Player and Line are only
// set for a Win.
type WinResult struct {
	Outcome Outcome
	Player  Cell
	Line    []int
}

// Decided reports whether the board is won or drawn.
func (r WinResult) Decided() bool { return r.Outcome != NoResult }

// Contains reports whether cell i lies on the winning line.
func (r WinResult) Contains(i int) bool {
	for _, v := range r.Line {
		if v == i {
			return true
		}
	}
	return false
}

// Lines lists every winning triple in evaluation order.
var Lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Evaluate returns the first completed line in Lines order, a draw for a full
// board, or NoResult.
func Evaluate(b Board) WinResult {
	for _, ln := range Lines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return WinResult{Outcome: Win, Player: a, Line: []int{ln[0], ln[1], ln[2]}}
		}
	}
	if b.Full() {
		return WinResult{Outcome: Draw}
	}
	return WinResult{Outcome: NoResult}
}
