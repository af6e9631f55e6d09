package domain

import (
	"errors"
	"fmt"
)

// Errors returned by GameState operations. Rejected moves are not errors.
var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidStep = errors.New("invalid step")
)

// Move is the location of a placed mark.
type Move struct {
	Row int
	Col int
}

// HistoryEntry is a board snapshot and the move that produced it.
type HistoryEntry struct {
	Board   Board
	Move    Move
	HasMove bool
}

// GameState holds the history of a single game and the step being viewed.
// The zero value is not usable; call NewGameState.
type GameState struct {
	history    []HistoryEntry
	step       int
	descending bool
}

// NewGameState returns a game with a single empty-board entry and X to move.
func NewGameState() GameState {
	return GameState{history: []HistoryEntry{{}}}
}

// Clone returns a copy that shares no history storage with g.
func (g GameState) Clone() GameState {
	g.history = append([]HistoryEntry(nil), g.history...)
	return g
}

// Len is the number of history entries.
func (g GameState) Len() int { return len(g.history) }

// Step is the index of the viewed history entry.
func (g GameState) Step() int { return g.step }

// Descending reports whether the move list is shown newest first.
func (g GameState) Descending() bool { return g.descending }

// Entries returns a copy of the history.
func (g GameState) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), g.history...)
}

// Current returns the viewed entry.
func (g GameState) Current() HistoryEntry { return g.history[g.step] }

// Board returns the viewed board.
func (g GameState) Board() Board { return g.history[g.step].Board }

// Result evaluates the viewed board.
func (g GameState) Result() WinResult { return Evaluate(g.Board()) }

// NextPlayer is X on even steps and O on odd ones.
func (g GameState) NextPlayer() Cell {
	if g.step%2 == 0 {
		return X
	}
	return O
}

// ApplyMove places the active player's mark at index (0..8) on the viewed
// board. Entries after the viewed step are discarded. It reports false without
// error when the viewed board is already decided or the cell is taken.
func (g *GameState) ApplyMove(index int) (bool, error) {
	if index < 0 || index >= len(Board{}) {
		return false, fmt.Errorf("%w: %d", ErrInvalidCell, index)
	}
	current := g.history[g.step]
	if Evaluate(current.Board).Decided() || current.Board[index] != Empty {
		return false, nil
	}

	board := current.Board
	board[index] = g.NextPlayer()

	// fresh backing array so earlier clones never observe the truncation
	next := make([]HistoryEntry, g.step+1, g.step+2)
	copy(next, g.history[:g.step+1])
	next = append(next, HistoryEntry{
		Board:   board,
		Move:    Move{Row: index / 3, Col: index % 3},
		HasMove: true,
	})
	g.history = next
	g.step = len(next) - 1
	return true, nil
}

// JumpTo views an existing step without discarding later entries.
func (g *GameState) JumpTo(step int) error {
	if step < 0 || step >= len(g.history) {
		return fmt.Errorf("%w: %d (history has %d entries)", ErrInvalidStep, step, len(g.history))
	}
	g.step = step
	return nil
}

// ToggleHistoryOrder flips the move list between ascending and descending.
func (g *GameState) ToggleHistoryOrder() {
	g.descending = !g.descending
}
