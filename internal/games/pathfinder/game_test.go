package pathfinder

import (
	"strings"
	"testing"

	"github.com/vovakirdan/findpath/internal/config"
	"github.com/vovakirdan/findpath/internal/core"
	"github.com/vovakirdan/findpath/internal/maze"
	"github.com/vovakirdan/findpath/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultPathfinderConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	return g
}

func press(g *Game, a core.Action, times int) core.GameState {
	var s core.GameState
	for range times {
		s = g.Step(core.FrameOf(a))
	}
	return s
}

// complete walks both stages to the End cell.
func complete(t *testing.T, g *Game) {
	t.Helper()
	route := []struct {
		a core.Action
		n int
	}{
		{core.ActionDown, 2}, {core.ActionRight, 6}, {core.ActionDown, 4}, // stage 1
		{core.ActionRight, 2}, {core.ActionDown, 2}, {core.ActionRight, 2},
		{core.ActionUp, 2}, {core.ActionRight, 2}, {core.ActionDown, 6}, // stage 2
	}
	for _, step := range route {
		press(g, step.a, step.n)
	}
	if !g.State().Completed {
		t.Fatalf("route did not complete the game: %+v", g.Snapshot())
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q should be registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Find Your Path" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestStepMapsActionsToMoves(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		wantX  int
		wantY  int
	}{
		{"down moves", core.ActionDown, 0, 1},
		{"up blocked by edge", core.ActionUp, 0, 0},
		{"right blocked by wall", core.ActionRight, 0, 0},
		{"left blocked by edge", core.ActionLeft, 0, 0},
		{"non-move action ignored", core.ActionConfirm, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Step(core.FrameOf(tc.action))

			snap := g.Snapshot()
			if snap.X != tc.wantX || snap.Y != tc.wantY {
				t.Errorf("position = (%d,%d), want (%d,%d)", snap.X, snap.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestOneMovePerEvent(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionDown, core.ActionDown, core.ActionRight))

	if s := g.State(); s.Moves != 1 {
		t.Errorf("Moves = %d, want 1", s.Moves)
	}
}

func TestStageAdvanceThroughSteps(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionDown, 2)
	press(g, core.ActionRight, 6)
	s := press(g, core.ActionDown, 4)

	if s.Stage != 2 {
		t.Fatalf("Stage = %d, want 2", s.Stage)
	}
	if snap := g.Snapshot(); snap.X != 0 || snap.Y != 0 {
		t.Errorf("position = (%d,%d), want origin", snap.X, snap.Y)
	}
}

func TestCompletionAndRestart(t *testing.T) {
	g := newTestGame(t)
	complete(t, g)

	done := g.Snapshot()
	if done.X != 6 || done.Y != 6 || done.State != StateCompleted {
		t.Errorf("completed snapshot = %+v", done)
	}

	press(g, core.ActionLeft, 3)
	if g.Snapshot() != done {
		t.Errorf("moves after completion changed state: %+v", g.Snapshot())
	}

	g.Step(core.FrameOf(core.ActionRestart))
	s := g.State()
	if s.Completed || s.Stage != 1 || s.Moves != 0 {
		t.Errorf("after restart state = %+v, want fresh session", s)
	}
}

func TestConfirmPlaysAgainAfterCompletion(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionConfirm))
	if s := g.State(); s.Moves != 0 || s.Completed {
		t.Fatalf("confirm while playing should do nothing, state = %+v", s)
	}

	complete(t, g)
	g.Step(core.FrameOf(core.ActionConfirm))
	if s := g.State(); s.Completed || s.Stage != 1 || s.Moves != 0 {
		t.Errorf("after confirm state = %+v, want fresh session", s)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionDown, 1)
	g.Step(core.FrameOf(core.ActionRestart))

	if s := g.State(); s.Moves != 1 {
		t.Errorf("restart mid-game should be ignored, Moves = %d", s.Moves)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(1), "Find Your Path - Stage 1") {
		t.Errorf("title row = %q", screen.Row(1))
	}
	if !strings.Contains(screen.Row(2), "Moves: 0") {
		t.Errorf("moves row = %q", screen.Row(2))
	}

	// Board frame at x=28, cells start at x=29, glyphs centered in 3 columns.
	if c := screen.GetCell(30, 5); c.Rune != '●' || c.Color != core.ColorBrightPurple {
		t.Errorf("player cell = %+v", c)
	}
	for x := 32; x < 35; x++ {
		if c := screen.GetCell(x, 5); c.Rune != '█' {
			t.Errorf("wall cell at x=%d = %q", x, c.Rune)
		}
	}
	if c := screen.GetCell(48, 11); c.Rune != '▣' || c.Color != core.ColorEmerald {
		t.Errorf("advance cell = %+v", c)
	}
	if screen.Get(28, 4) != '┌' {
		t.Errorf("frame corner = %q", screen.Get(28, 4))
	}
}

func TestButtonsHitTest(t *testing.T) {
	g := newTestGame(t)
	g.Render(core.NewScreen(80, 24))

	tests := []struct {
		x, y int
		want core.Action
	}{
		{37, 14, core.ActionUp},
		{41, 14, core.ActionUp},
		{31, 15, core.ActionLeft},
		{39, 15, core.ActionDown},
		{47, 15, core.ActionRight},
		{36, 15, core.ActionNone}, // gap between buttons
		{0, 0, core.ActionNone},
	}

	for _, tc := range tests {
		if got := g.ActionAt(tc.x, tc.y); got != tc.want {
			t.Errorf("ActionAt(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	g.Step(core.FrameOf(g.ActionAt(39, 15)))
	if snap := g.Snapshot(); snap.Y != 1 {
		t.Errorf("clicking down should move the player, got %+v", snap)
	}
}

func TestButtonsHidden(t *testing.T) {
	cfg := config.DefaultPathfinderConfig()
	cfg.Controls.ShowButtons = false
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	g.Render(core.NewScreen(80, 24))

	if got := g.ActionAt(39, 15); got != core.ActionNone {
		t.Errorf("hidden buttons should not be clickable, got %v", got)
	}
}

func TestTooSmallHoldsInput(t *testing.T) {
	g := NewWithConfig(config.DefaultPathfinderConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10})

	if !g.TooSmall() {
		t.Fatal("20x10 should be too small")
	}
	press(g, core.ActionDown, 1)
	if snap := g.Snapshot(); snap.Y != 0 || snap.State != StatePausedSmall {
		t.Errorf("snapshot = %+v, want paused at origin", snap)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected resize hint")
	}

	g.Resize(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	press(g, core.ActionDown, 1)
	if snap := g.Snapshot(); snap.Y != 1 {
		t.Errorf("after resize moves should apply, got %+v", snap)
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionDown, 2)
	g.Resize(core.RuntimeConfig{ScreenW: 100, ScreenH: 40})

	if snap := g.Snapshot(); snap.Y != 2 || snap.Moves != 2 {
		t.Errorf("resize should keep progress, got %+v", snap)
	}
}

func TestRenderMessage(t *testing.T) {
	cfg := config.DefaultPathfinderConfig()
	cfg.Message = "Thank you for playing."
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	complete(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Thank you for playing.", "♥", "R: play again"} {
		if !strings.Contains(out, want) {
			t.Errorf("message screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Stage") {
		t.Error("the maze should not be drawn after completion")
	}
	if g.ActionAt(39, 15) != core.ActionNone {
		t.Error("buttons should not be active on the message screen")
	}
}

func TestRenderMessageTruncates(t *testing.T) {
	g := newTestGame(t)
	complete(t, g)
	g.Resize(core.RuntimeConfig{ScreenW: 30, ScreenH: 9})

	screen := core.NewScreen(30, 9)
	g.Render(screen)

	if !strings.Contains(screen.String(), "…") {
		t.Errorf("long message should be truncated on a short screen:\n%s", screen.String())
	}
}

func TestMoveAndNavigatorAccess(t *testing.T) {
	g := newTestGame(t)
	st := g.Move(maze.Down)

	if st.Position != (maze.Position{X: 0, Y: 1}) {
		t.Errorf("Move(Down) = %+v", st)
	}
	if g.Navigator().State() != st {
		t.Error("Navigator() should reflect the move")
	}
}
