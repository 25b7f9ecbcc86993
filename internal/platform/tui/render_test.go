package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexshift/internal/core"
)

func TestThemeRenderKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawText(0, 0, "Score: 8")
	scr.DrawTextColor(2, 1, "2048", core.ColorBrightMagenta)

	out := NewTheme(lipgloss.NewRenderer(io.Discard)).Render(scr)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if strings.TrimRight(lines[0], " ") != "Score: 8" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2048") {
		t.Errorf("line 1 = %q, want the tile value", lines[1])
	}
}

func TestThemeUnknownColorFallsBack(t *testing.T) {
	theme := NewTheme(nil)
	if got := theme.style(core.Color(200)).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("fallback style lost the text: %q", got)
	}
}
