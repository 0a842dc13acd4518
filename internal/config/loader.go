package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME.
const configDirName = ".findpath"

// LoadPathfinder loads the game configuration.
// Search order: customPath -> ~/.findpath/configs/pathfinder.yaml -> ./configs/pathfinder.yaml -> embedded default
//
// Files are decoded over the embedded defaults, so a file only needs the keys it changes.
// Only an explicit customPath reports read, parse or validation errors; the other
// locations are skipped when unusable.
func LoadPathfinder(customPath string) (PathfinderConfig, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeOver(base, data)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("pathfinder.yaml"), filepath.Join("configs", "pathfinder.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeOver(base, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded default.
func embeddedDefault() PathfinderConfig {
	cfg, err := decodeOver(DefaultPathfinderConfig(), defaultPathfinderYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultPathfinderConfig()
	}
	return cfg
}

// decodeOver unmarshals data on top of a copy of base.
func decodeOver(base PathfinderConfig, data []byte) (PathfinderConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

// UserDir returns ~/.findpath, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName)
}
