package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/hexshift/internal/core"
	"github.com/vovakirdan/hexshift/internal/games/hex2048"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 30, Seed: 7}
	return NewSessionModel(openStore(t), cfg, 3, "alice")
}

func TestSessionIDIsUUID(t *testing.T) {
	m := newTestSession(t)
	if _, err := uuid.Parse(m.SessionID()); err != nil {
		t.Errorf("session id %q is not a uuid: %v", m.SessionID(), err)
	}
	if other := newTestSession(t); other.SessionID() == m.SessionID() {
		t.Error("two sessions share an id")
	}
}

func TestSessionStartsGameWithMenuRadius(t *testing.T) {
	m := newTestSession(t)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %d, want the game", m.screen)
	}
	hg, ok := m.gameModel.game.(*hex2048.Game)
	if !ok {
		t.Fatalf("game is %T", m.gameModel.game)
	}
	if hg.Radius() != 4 {
		t.Errorf("game radius = %d, want 4", hg.Radius())
	}
	if m.quitting {
		t.Error("selecting a mode ended the session")
	}
}

func TestSessionGameBackToMenu(t *testing.T) {
	m := newTestSession(t)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Pause, let the game see it, then leave
	m = sessionUpdate(t, m, runeKey("p"))
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want the menu", m.screen)
	}
	if m.quitting {
		t.Error("leaving a game ended the session")
	}
	if m.menu.Radius() != 3 {
		t.Errorf("menu radius = %d, want 3 kept", m.menu.Radius())
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want the scoreboard", m.screen)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Errorf("screen = %d quitting = %v after esc", m.screen, m.quitting)
	}
}

func TestSessionQuit(t *testing.T) {
	m := sessionUpdate(t, newTestSession(t), runeKey("q"))
	if !m.quitting {
		t.Error("q in the menu did not end the session")
	}
	if m.View() != "" {
		t.Error("view not empty after quitting")
	}
}
