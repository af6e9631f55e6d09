package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith places mark on cells and filler on each index in fill.
func boardWith(mark Cell, cells [3]int, filler Cell, fill []int) Board {
	var b Board
	for _, i := range cells {
		b[i] = mark
	}
	for _, i := range fill {
		b[i] = filler
	}
	return b
}

func TestEvaluateEmptyBoard(t *testing.T) {
	res := Evaluate(Board{})
	assert.Equal(t, NoResult, res.Outcome)
	assert.Empty(t, res.Line)
	assert.False(t, res.Decided())
}

func TestEvaluateEveryLine(t *testing.T) {
	for _, mark := range []Cell{X, O} {
		other := O
		if mark == O {
			other = X
		}
		for _, ln := range Lines {
			// two opposing marks off the line so the board stays legal-looking
			var fill []int
			for i := 0; i < 9 && len(fill) < 2; i++ {
				if i != ln[0] && i != ln[1] && i != ln[2] {
					fill = append(fill, i)
				}
			}
			b := boardWith(mark, ln, other, fill)

			res := Evaluate(b)
			require.Equal(t, Win, res.Outcome, "line %v for %v", ln, mark)
			assert.Equal(t, mark, res.Player)
			assert.Equal(t, []int{ln[0], ln[1], ln[2]}, res.Line)
		}
	}
}

func TestEvaluateFirstLineWins(t *testing.T) {
	// Given: X holds row 0 and column 0 at once
	b := Board{
		X, X, X,
		X, O, O,
		X, O, O,
	}

	// When: evaluating
	res := Evaluate(b)

	// Then: the row is listed first and wins the tie-break
	require.Equal(t, Win, res.Outcome)
	assert.Equal(t, []int{0, 1, 2}, res.Line)
}

func TestEvaluateDraw(t *testing.T) {
	b := Board{
		X, O, X,
		O, X, O,
		O, X, O,
	}
	res := Evaluate(b)
	assert.Equal(t, Draw, res.Outcome)
	assert.Equal(t, Empty, res.Player)
	assert.Empty(t, res.Line)
	assert.True(t, res.Decided())
}

func TestEvaluateFullBoardWithLineIsWin(t *testing.T) {
	b := Board{
		X, O, X,
		O, X, O,
		O, X, X,
	}
	res := Evaluate(b)
	require.Equal(t, Win, res.Outcome)
	assert.Equal(t, X, res.Player)
	assert.Equal(t, []int{0, 4, 8}, res.Line)
}

func TestEvaluateInProgress(t *testing.T) {
	b := Board{
		X, O, X,
		Empty, O, Empty,
		O, X, Empty,
	}
	assert.Equal(t, NoResult, Evaluate(b).Outcome)
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	b := Board{X, X, X, O, O}
	before := b
	_ = Evaluate(b)
	assert.Equal(t, before, b)
}

func TestWinResultContains(t *testing.T) {
	win := WinResult{Outcome: Win, Player: O, Line: []int{2, 4, 6}}
	for i := 0; i < 9; i++ {
		assert.Equal(t, i == 2 || i == 4 || i == 6, win.Contains(i), "cell %d", i)
	}

	draw := WinResult{Outcome: Draw}
	for i := 0; i < 9; i++ {
		assert.False(t, draw.Contains(i))
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, "", Empty.String())
}
