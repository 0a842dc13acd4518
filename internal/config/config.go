// Package config provides YAML-based configuration loading for Find Your Path
// and .env overrides for the SSH server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/findpath/internal/core"
)

// PathfinderConfig contains all configuration for the maze game.
// The stage grids themselves are fixed and not configurable.
type PathfinderConfig struct {
	Title    string           `yaml:"title"`
	Message  string           `yaml:"message"`
	Theme    PathfinderTheme  `yaml:"theme"`
	Controls PathfinderLayout `yaml:"controls"`
}

// PathfinderTheme defines how each kind of cell and the player are drawn.
type PathfinderTheme struct {
	Path    CellStyle `yaml:"path"`
	Wall    CellStyle `yaml:"wall"`
	Advance CellStyle `yaml:"advance"`
	End     CellStyle `yaml:"end"`
	Player  CellStyle `yaml:"player"`
	Title   string    `yaml:"title_color"`
	Message string    `yaml:"message_color"`
}

// CellStyle is a glyph and a palette color name (see core.ColorByName).
type CellStyle struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// PathfinderLayout controls optional parts of the screen.
type PathfinderLayout struct {
	ShowButtons bool `yaml:"show_buttons"` // Draw clickable arrow buttons under the maze
	ShowHelp    bool `yaml:"show_help"`    // Draw the key help footer
}

// Rune returns the first rune of the glyph.
func (s CellStyle) Rune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	return r
}

// ColorValue resolves the color name, falling back to the default color.
func (s CellStyle) ColorValue() core.Color {
	c, _ := core.ColorByName(s.Color)
	return c
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every glyph is a single rune and every color is known.
func (c PathfinderConfig) Validate() error {
	styles := []struct {
		name  string
		style CellStyle
	}{
		{"path", c.Theme.Path},
		{"wall", c.Theme.Wall},
		{"advance", c.Theme.Advance},
		{"end", c.Theme.End},
		{"player", c.Theme.Player},
	}

	var errs []error
	for _, s := range styles {
		if utf8.RuneCountInString(s.style.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("%w: theme.%s.glyph must be a single character, got %q", ErrInvalidConfig, s.name, s.style.Glyph))
		}
		if _, ok := core.ColorByName(s.style.Color); !ok {
			errs = append(errs, fmt.Errorf("%w: theme.%s.color %q is not a known color", ErrInvalidConfig, s.name, s.style.Color))
		}
	}
	for name, color := range map[string]string{"title_color": c.Theme.Title, "message_color": c.Theme.Message} {
		if _, ok := core.ColorByName(color); !ok {
			errs = append(errs, fmt.Errorf("%w: theme.%s %q is not a known color", ErrInvalidConfig, name, color))
		}
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, fmt.Errorf("%w: message must not be empty", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
