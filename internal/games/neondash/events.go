package neondash

import (
	"fmt"

	"github.com/vovakirdan/neon-dash/internal/core"
)

// Event is emitted by the simulation and drained by Tick or Flush.
type Event interface {
	core.Event
	simEvent()
}

// ScoreChanged is emitted when the score changes, including the reset to 0.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) simEvent() {}
func (ScoreChanged) EventName() string { return "score_changed" }
func (e ScoreChanged) String() string { return fmt.Sprintf("score=%d", e.Score) }

// StateChanged is emitted on every state transition.
type StateChanged struct {
	From  State
	To    State
	Score int
}

func (StateChanged) simEvent() {}
func (StateChanged) EventName() string { return "state_changed" }
func (e StateChanged) String() string {
	return fmt.Sprintf("%s -> %s (score %d)", e.From, e.To, e.Score)
}

// Jumped is emitted when a jump is accepted, at the agent's feet.
type Jumped struct {
	X, Y float64
}

func (Jumped) simEvent() {}
func (Jumped) EventName() string { return "jumped" }
func (e Jumped) String() string { return fmt.Sprintf("at (%.1f, %.1f)", e.X, e.Y) }

// Crashed is emitted when the agent hits an obstacle, at the agent's center.
type Crashed struct {
	X, Y  float64
	Score int
}

func (Crashed) simEvent() {}
func (Crashed) EventName() string { return "crashed" }
func (e Crashed) String() string {
	return fmt.Sprintf("at (%.1f, %.1f) (score %d)", e.X, e.Y, e.Score)
}
