package pathfinder

// GameStateType is a coarse label for the current state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCompleted   GameStateType = "completed"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for tests and debugging.
type Snapshot struct {
	Stage     int
	X, Y      int
	Moves     int
	Completed bool
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.nav.State()

	state := StatePlaying
	switch {
	case st.Completed:
		state = StateCompleted
	case g.tooSmall:
		state = StatePausedSmall
	}

	return Snapshot{
		Stage:     st.Stage,
		X:         st.Position.X,
		Y:         st.Position.Y,
		Moves:     st.Moves,
		Completed: st.Completed,
		State:     state,
	}
}
