package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexshift/internal/core"
)

func runeKeyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyShiftRows(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  tea.KeyMsg
		want core.Action
	}{
		{runeKeyRune('q'), core.ActionNorthWest},
		{runeKeyRune('w'), core.ActionNorth},
		{runeKeyRune('e'), core.ActionNorthEast},
		{runeKeyRune('a'), core.ActionSouthWest},
		{runeKeyRune('s'), core.ActionSouth},
		{runeKeyRune('d'), core.ActionSouthEast},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionNorth},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSouth},
		{runeKeyRune('c'), core.ActionCoords},
		{runeKeyRune('p'), core.ActionPause},
		{runeKeyRune('r'), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{runeKeyRune('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, quit := km.MapKey(tt.key)
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key.String(), got, tt.want)
			}
			if quit {
				t.Errorf("MapKey(%q) should not quit", tt.key.String())
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	action, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit || action != core.ActionQuit {
		t.Errorf("ctrl+c = %v, %v; want quit", action, quit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKeyRune('e'), &frame) {
		t.Fatal("e is not a quit key")
	}
	if !frame.Has(core.ActionNorthEast) {
		t.Error("frame should hold NorthEast")
	}

	km.MapKeyToFrame(runeKeyRune('x'), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("unmapped keys should not be recorded")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKeyRune('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKeyRune('+'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKeyRune('q'), MenuActionQuit},
		{runeKeyRune('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.key); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key.String(), got, tt.want)
		}
	}
}
