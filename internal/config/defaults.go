package config

import (
	_ "embed"
)

//go:embed defaults/pathfinder.yaml
var defaultPathfinderYAML []byte

// DefaultMessage is the closing text shown after the final exit.
const DefaultMessage = "I deeply regret causing you pain, and I understand that my actions have hurt " +
	"you in ways that may be irreparable. Though I know forgiveness might not be " +
	"possible, I want you to know that every moment we shared, every word spoken, " +
	"and every feeling expressed was genuine and true. Your presence in my life has " +
	"taught me invaluable lessons about love, responsibility, and growth. Thank you " +
	"for everything you've given me, for the memories we created, and for helping " +
	"me become a better person. I will always cherish what we had."

// DefaultPathfinderConfig returns the built-in configuration.
// It matches defaults/pathfinder.yaml and is used if the embedded file fails to parse.
func DefaultPathfinderConfig() PathfinderConfig {
	return PathfinderConfig{
		Title:   "Find Your Path",
		Message: DefaultMessage,
		Theme: PathfinderTheme{
			Path:    CellStyle{Glyph: "·", Color: "indigo"},
			Wall:    CellStyle{Glyph: "█", Color: "deep-indigo"},
			Advance: CellStyle{Glyph: "▣", Color: "emerald"},
			End:     CellStyle{Glyph: "♥", Color: "purple"},
			Player:  CellStyle{Glyph: "●", Color: "bright-purple"},
			Title:   "white",
			Message: "gray",
		},
		Controls: PathfinderLayout{
			ShowButtons: true,
			ShowHelp:    true,
		},
	}
}
