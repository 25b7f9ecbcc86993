package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexshift/internal/games/hex2048"
)

// handleLevelAction processes input on the campaign level list.
func (m MenuModel) handleLevelAction(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := hex2048.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		item := m.items[m.cursor]
		m.selected = &item
		m.startLevel = m.levelCursor + 1 // 1-indexed
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// viewLevelSelect renders the campaign level list.
func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range hex2048.Levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %-14s radius %d  target %d", cursor, lvl.ID, lvl.Name, lvl.Radius, lvl.Target)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}
