package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfield/internal/core"
)

// styleCache maps cell colours to lipgloss styles. Braille output uses a
// small set of quantized colours, so the cache stays small.
type styleCache map[core.RGBA]lipgloss.Style

func (c styleCache) get(col core.RGBA) lipgloss.Style {
	if st, ok := c[col]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	c[col] = st
	return st
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderRows(s, s.Height())
}

// renderRows renders the first n rows of s.
func renderRows(s *core.Screen, n int) string {
	n = min(n, s.Height())
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*n*4 + n)

	for y := 0; y < n; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color
			blank := cell.Rune == ' '

			// Collect consecutive cells with same color; blanks get their own unstyled run
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Rune == ' ' {
					if !blank {
						break
					}
				} else if blank || cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if blank {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
