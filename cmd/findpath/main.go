// findpath is a small terminal maze: steer the token through two fixed
// stages to reach the closing message.
//
// Usage:
//
//	findpath play     - Play in this terminal
//	findpath serve    - Start SSH server for remote play
//	findpath stages   - Print both stages and check they are solvable
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--env <path>        - .env file with server overrides (default: ./.env)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/findpath/internal/config"
	"github.com/vovakirdan/findpath/internal/games/pathfinder"
)

var (
	// Global flags
	flagConfig   string
	flagEnvFile  string
	flagLogLevel string

	// Loaded in PersistentPreRunE
	gameConfig config.PathfinderConfig
	logger     *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "findpath",
	Short: "Find Your Path - a two-stage terminal maze",
	Long: `Find Your Path is a small maze game for the terminal.

Move the token with the arrow keys (or WASD, or by clicking the on-screen
buttons). Reach the green cell to enter stage 2, then reach the heart.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  stages   - Print both stages

Examples:
  findpath play
  findpath play --config ./my-theme.yaml
  findpath serve --ssh :2222
  findpath stages`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", ".env", "Path to .env file with FINDPATH_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stagesCmd)
}

// setup loads the environment file, the logger and the game configuration.
func setup(_ *cobra.Command, _ []string) error {
	if err := config.LoadEnv(flagEnvFile); err != nil {
		return err
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "findpath",
	})

	levelName := flagLogLevel
	if levelName == "" {
		levelName = config.EnvString(config.EnvLogLevel, "info")
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	logger.SetLevel(level)

	cfg, err := config.LoadPathfinder(flagConfig)
	if err != nil {
		return err
	}
	gameConfig = cfg
	pathfinder.SetConfig(cfg)

	logger.Debug("configuration loaded", "config", flagConfig, "buttons", cfg.Controls.ShowButtons)
	return nil
}
