package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bigtop/internal/ui/theme"
)

// Chip is a labeled toggle indicator, lit when its check passes.
type Chip struct {
	Label string
	On    bool
}

// RenderChips renders a wrapped row of chips within the given width.
func RenderChips(chips []Chip, width int) string {
	if len(chips) == 0 {
		return ""
	}

	var lines []string
	var line string
	for _, c := range chips {
		var rendered string
		if c.On {
			rendered = theme.ChipOn.Render("✓ " + c.Label)
		} else {
			rendered = theme.ChipOff.Render("○ " + c.Label)
		}
		if line != "" && lipgloss.Width(line)+lipgloss.Width(rendered)+1 > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += rendered
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
