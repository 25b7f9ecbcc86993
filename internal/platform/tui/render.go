package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexshift/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Theme maps screen colors to lipgloss styles for one output.
// SSH sessions build their own theme so color detection follows the
// client terminal rather than the server's stdout.
type Theme struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewTheme builds a theme on the given renderer.
// A nil renderer uses the lipgloss default renderer.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	t := Theme{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range colorCodes {
		style := r.NewStyle().Foreground(lipgloss.Color(code))
		// Large tiles stand out in bold.
		if c == core.ColorBrightMagenta || c == core.ColorMagenta {
			style = style.Bold(true)
		}
		t.styles[c] = style
	}
	return t
}

// style returns the style for a color, falling back to unstyled text.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.plain
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(t.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default theme.
func RenderScreen(s *core.Screen) string {
	return NewTheme(nil).Render(s)
}
