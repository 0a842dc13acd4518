package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Stage     int  // 1-based stage number
	Moves     int  // Accepted steps so far
	Completed bool // Whether the final exit has been reached
}
