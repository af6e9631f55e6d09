package domain

import "fmt"

// Status summarizes the viewed step for display.
type Status struct {
	Outcome Outcome
	// Player is the winner for a Win and the player to move for NoResult.
	Player Cell
}

func (s Status) String() string {
	switch s.Outcome {
	case Win:
		return "Winner: " + s.Player.String()
	case Draw:
		return "Draw"
	default:
		return "Next player: " + s.Player.String()
	}
}

// Status reports the winner, a draw, or the player to move.
func (g GameState) Status() Status {
	res := g.Result()
	switch res.Outcome {
	case Win:
		return Status{Outcome: Win, Player: res.Player}
	case Draw:
		return Status{Outcome: Draw}
	default:
		return Status{Outcome: NoResult, Player: g.NextPlayer()}
	}
}

// MoveItem is one row of the move list.
type MoveItem struct {
	Step     int
	Label    string
	Selected bool
}

// MoveList returns one item per history entry in the current display order.
func (g GameState) MoveList() []MoveItem {
	items := make([]MoveItem, len(g.history))
	for step, e := range g.history {
		item := MoveItem{Step: step, Label: "Go to game start", Selected: step == g.step}
		if e.HasMove {
			item.Label = fmt.Sprintf("Go to move #%d[col:%d][row:%d]", step, e.Move.Col, e.Move.Row)
		}
		if g.descending {
			items[len(items)-1-step] = item
		} else {
			items[step] = item
		}
	}
	return items
}
