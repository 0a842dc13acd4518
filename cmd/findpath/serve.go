package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/findpath/internal/config"
	"github.com/vovakirdan/findpath/internal/games/pathfinder"
	"github.com/vovakirdan/findpath/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own fresh session; nothing is shared or stored.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.findpath/host_key

Flags override FINDPATH_SSH_ADDR, FINDPATH_HOST_KEY and
FINDPATH_IDLE_TIMEOUT from the environment or the --env file.

Examples:
  findpath serve                           # Listen on :23234 with auto-generated key
  findpath serve --ssh :2222               # Listen on port 2222
  findpath serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default 30)")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Maximum concurrent sessions (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.GameID = pathfinder.ID
	cfg.ShowHelp = gameConfig.Controls.ShowHelp
	cfg.MaxSessions = flagMaxSessions

	cfg.Address = config.EnvString(config.EnvSSHAddr, cfg.Address)
	cfg.HostKeyPath = config.EnvString(config.EnvHostKey, cfg.HostKeyPath)
	idle, err := config.EnvMinutes(config.EnvIdleTimeout, cfg.IdleTimeout)
	if err != nil {
		return err
	}
	cfg.IdleTimeout = idle

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("findpath-ssh"))
	if err != nil {
		return err
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	return server.ListenAndServe()
}
