package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by the server commands.
const (
	EnvSSHAddr     = "FINDPATH_SSH_ADDR"
	EnvHostKey     = "FINDPATH_HOST_KEY"
	EnvLogLevel    = "FINDPATH_LOG_LEVEL"
	EnvIdleTimeout = "FINDPATH_IDLE_TIMEOUT" // minutes
)

// LoadEnv loads variables from a .env file into the process environment.
// Variables already set are not overwritten. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// EnvString returns the value of key, or fallback when unset or empty.
func EnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvMinutes parses key as a whole number of minutes.
func EnvMinutes(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback, fmt.Errorf("%s must be a positive number of minutes, got %q", key, v)
	}
	return time.Duration(n) * time.Minute, nil
}
