// Package maze holds the navigation rules for Find Your Path: the cell
// values, the two fixed stage grids and the Navigator that walks a player
// token through them. It has no dependency on the terminal layer.
package maze

// Cell is the value stored at one grid position.
type Cell uint8

const (
	Path    Cell = iota // traversable, no effect
	Wall                // blocks entry
	End                 // entering it completes the session
	Advance             // entering it moves play to the next stage
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Path:
		return "Path"
	case Wall:
		return "Wall"
	case End:
		return "End"
	case Advance:
		return "Advance"
	default:
		return "Unknown"
	}
}

// Passable reports whether the player may step onto the cell.
func (c Cell) Passable() bool {
	return c != Wall
}
