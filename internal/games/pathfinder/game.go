// Package pathfinder adapts the maze navigator to the platform's Game
// interface: it maps input actions to moves and draws the stages, the
// on-screen arrow buttons and the closing message.
package pathfinder

import (
	"sync"

	"github.com/vovakirdan/findpath/internal/config"
	"github.com/vovakirdan/findpath/internal/core"
	"github.com/vovakirdan/findpath/internal/maze"
	"github.com/vovakirdan/findpath/internal/registry"
)

// ID is the registry key of the game.
const ID = "pathfinder"

// button is an on-screen control placed by the last Render.
type button struct {
	rect   core.Rect
	action core.Action
}

// Game implements Find Your Path.
type Game struct {
	cfg config.PathfinderConfig
	nav *maze.Navigator

	screenW  int
	screenH  int
	tooSmall bool

	buttons []button
}

var (
	sharedCfg   = config.DefaultPathfinderConfig()
	sharedCfgMu sync.RWMutex
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.PathfinderConfig) {
	sharedCfgMu.Lock()
	defer sharedCfgMu.Unlock()
	sharedCfg = cfg
}

func currentConfig() config.PathfinderConfig {
	sharedCfgMu.RLock()
	defer sharedCfgMu.RUnlock()
	return sharedCfg
}

// New creates a game using the configuration set by SetConfig.
func New() *Game {
	return NewWithConfig(currentConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.PathfinderConfig) *Game {
	return &Game{
		cfg: cfg,
		nav: maze.NewNavigator(),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.cfg.Title == "" {
		return "Find Your Path"
	}
	return g.cfg.Title
}

// Reset starts a fresh session: stage 1, origin, not completed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.nav = maze.NewNavigator()
	g.buttons = nil
	g.Resize(cfg)
}

// Resize records the screen size. Navigator state is kept.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// checkScreenSize decides whether the board fits on screen.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one input event. At most one move is made per event.
func (g *Game) Step(in core.InputFrame) core.GameState {
	st := g.nav.State()

	if st.Completed && (in.Has(core.ActionRestart) || in.Has(core.ActionConfirm)) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return g.State()
	}

	// Input is held back while the board cannot be seen.
	if g.tooSmall {
		return g.State()
	}

	if d, ok := directionFor(in); ok {
		g.nav.Move(d)
	}

	return g.State()
}

// directionFor picks the first directional action in the frame.
func directionFor(in core.InputFrame) (maze.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return maze.Up, true
	case in.Has(core.ActionDown):
		return maze.Down, true
	case in.Has(core.ActionLeft):
		return maze.Left, true
	case in.Has(core.ActionRight):
		return maze.Right, true
	}
	return 0, false
}

// Move applies a single step directly, bypassing input frames.
func (g *Game) Move(d maze.Direction) maze.State {
	return g.nav.Move(d)
}

// Navigator exposes the underlying navigator for read access.
func (g *Game) Navigator() *maze.Navigator {
	return g.nav
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.nav.State()
	return core.GameState{
		Stage:     st.Stage,
		Moves:     st.Moves,
		Completed: st.Completed,
	}
}

// TooSmall reports whether the screen is too small to show the board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// ActionAt returns the action of the on-screen button covering (x, y).
func (g *Game) ActionAt(x, y int) core.Action {
	for _, b := range g.buttons {
		if b.rect.Contains(x, y) {
			return b.action
		}
	}
	return core.ActionNone
}
