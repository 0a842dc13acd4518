// Package registry provides a registry of game factories.
// Games register themselves in init() functions, so the commands and the SSH
// server can create fresh instances per session without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/findpath/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations hold pure game logic and never touch the terminal.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "pathfinder").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session sized for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts layout to a new screen size without touching game state.
	Resize(cfg core.RuntimeConfig)

	// Step applies the actions of one input event and returns the new state.
	Step(in core.InputFrame) core.GameState

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Pointer is implemented by games that expose clickable regions.
type Pointer interface {
	// ActionAt returns the action bound to the screen cell (x, y) in the
	// most recent Render, or core.ActionNone.
	ActionAt(x, y int) core.Action
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
