package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/findpath/internal/core"
	"github.com/vovakirdan/findpath/internal/games/pathfinder"
	"github.com/vovakirdan/findpath/internal/platform/tui"
	"github.com/vovakirdan/findpath/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a fresh session in this terminal.

Controls:
  Arrows/WASD/HJKL - Move
  Mouse click      - On-screen arrow buttons
  R                - Play again (after the closing message)
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  findpath play
  findpath play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size; the first WindowSizeMsg corrects it anyway.
	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	game, err := registry.Create(pathfinder.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// No logger here: stderr shares the terminal with the game.
	if err := tui.Run(game, cfg, tui.WithHelp(gameConfig.Controls.ShowHelp)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := game.State()
	logger.Debug("session ended", "stage", st.Stage, "moves", st.Moves, "completed", st.Completed)
	return nil
}
