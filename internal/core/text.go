package core

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapText splits text into lines no wider than width cells, breaking on
// spaces. Words longer than width are split. Runs of whitespace collapse to
// one space and blank input yields no lines.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}

		wrapped := ansi.Wrap(strings.Join(words, " "), width, "")
		for _, line := range strings.Split(wrapped, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}
