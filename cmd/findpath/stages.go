package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/findpath/internal/maze"
)

var flagWalk []string

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Print both stages",
	Long: `Print every stage as text and report whether its exit is reachable
from the start.

With --walk, replay a comma separated list of moves from a fresh session
and print where it ends.

Legend:
  .  path     #  wall
  >  advance  *  end

Examples:
  findpath stages
  findpath stages --walk down,down,right,right`,
	Args: cobra.NoArgs,
	RunE: runStages,
}

func init() {
	stagesCmd.Flags().StringSliceVar(&flagWalk, "walk", nil, "Moves to replay: up, down, left, right")
}

var stageGlyphs = map[maze.Cell]byte{
	maze.Path:    '.',
	maze.Wall:    '#',
	maze.Advance: '>',
	maze.End:     '*',
}

func runStages(_ *cobra.Command, _ []string) error {
	if len(flagWalk) > 0 {
		st, err := walk(flagWalk)
		if err != nil {
			return err
		}
		fmt.Println(describeState(st))
		return nil
	}

	for i, grid := range maze.Stages() {
		target := maze.Advance
		if grid.Count(maze.End) > 0 {
			target = maze.End
		}

		fmt.Printf("Stage %d (%dx%d)\n", i+1, grid.Width(), grid.Height())
		for _, line := range formatGrid(grid) {
			fmt.Printf("  %s\n", line)
		}

		status := "reachable"
		if !maze.Reachable(grid, maze.Position{}, target) {
			status = "NOT reachable"
		}
		fmt.Printf("  %s cell %s from (0,0)\n\n", target, status)
	}
	return nil
}

// walk replays moves on a fresh navigator. Blocked moves are kept as no-ops,
// exactly as in play.
func walk(moves []string) (maze.State, error) {
	nav := maze.NewNavigator()
	for i, name := range moves {
		d, err := maze.ParseDirection(name)
		if err != nil {
			return nav.State(), fmt.Errorf("move %d: %w", i+1, err)
		}
		nav.Move(d)
	}
	return nav.State(), nil
}

func describeState(st maze.State) string {
	if st.Completed {
		return fmt.Sprintf("completed at %s after %d moves", st.Position, st.Moves)
	}
	return fmt.Sprintf("stage %d at %s after %d moves", st.Stage, st.Position, st.Moves)
}

// formatGrid renders a grid as one string per row.
func formatGrid(grid maze.Grid) []string {
	lines := make([]string, 0, grid.Height())
	for _, row := range grid.Rows() {
		var sb strings.Builder
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(stageGlyphs[c])
		}
		lines = append(lines, sb.String())
	}
	return lines
}
