package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStages is returned when a navigator is built without stages.
	ErrNoStages = errors.New("maze: no stages")

	// ErrBlockedOrigin is returned when a stage cannot start at (0,0).
	ErrBlockedOrigin = errors.New("maze: stage origin is out of bounds or a wall")
)

// State is the render-relevant snapshot of a Navigator.
type State struct {
	Stage     int      // 1-based index of the active stage
	Position  Position // player coordinate in the active stage
	Completed bool     // set once the End cell is entered; absorbing
	Moves     int      // accepted steps across all stages
}

// Navigator owns the player state and applies moves against the stage grids.
// It is not safe for concurrent use; callers serialize input events.
type Navigator struct {
	stages []Grid
	state  State
}

// NewNavigator creates a navigator over Stages(). Play starts on stage 1
// at (0,0).
func NewNavigator() *Navigator {
	return &Navigator{
		stages: Stages(),
		state:  State{Stage: 1},
	}
}

// NewNavigatorWith creates a navigator over custom stages. Every stage must
// have a passable origin, since each stage is entered at (0,0).
func NewNavigatorWith(stages ...Grid) (*Navigator, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	origin := Position{}
	for i, g := range stages {
		if !g.InBounds(origin) || g.At(origin) == Wall {
			return nil, fmt.Errorf("stage %d: %w", i+1, ErrBlockedOrigin)
		}
	}
	return &Navigator{
		stages: append([]Grid(nil), stages...),
		state:  State{Stage: 1},
	}, nil
}

// State returns the current state.
func (n *Navigator) State() State {
	return n.state
}

// Grid returns the grid of the active stage.
func (n *Navigator) Grid() Grid {
	return n.stages[n.state.Stage-1]
}

// StageCount returns the number of stages.
func (n *Navigator) StageCount() int {
	return len(n.stages)
}

// Move attempts one step in direction d and returns the resulting state.
// Steps off the grid or into a wall leave the state unchanged, as does
// any move after completion.
func (n *Navigator) Move(d Direction) State {
	if n.state.Completed || !d.Valid() {
		return n.state
	}

	grid := n.Grid()
	next := n.state.Position.Add(d)
	if !grid.InBounds(next) || grid.At(next) == Wall {
		return n.state
	}

	n.state.Position = next
	n.state.Moves++

	switch grid.At(next) {
	case Advance:
		// The landing cell is discarded; play resumes at the next stage origin.
		if n.state.Stage < len(n.stages) {
			n.state.Stage++
			n.state.Position = Position{}
		}
	case End:
		n.state.Completed = true
	}

	return n.state
}
