package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexshift/internal/config"
	"github.com/vovakirdan/hexshift/internal/core"
	"github.com/vovakirdan/hexshift/internal/games/hex2048"
	"github.com/vovakirdan/hexshift/internal/registry"
	"github.com/vovakirdan/hexshift/internal/storage"
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	Best      int  // High score, 0 when none is stored
	HasRadius bool // Whether left/right changes the board radius
	Levels    bool // Opens the level list instead of starting a game
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	radius         int
	inLevelSelect  bool
	levelCursor    int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	startLevel     int
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// menuOrder lists the modes in the order they are offered.
var menuOrder = []struct {
	id        string
	hasRadius bool
}{
	{hex2048.IDClassic, true},
	{hex2048.IDEndless, true},
	{hex2048.IDCampaign, false},
}

// NewMenuModel creates a new menu model. radius is the initial board
// radius for the classic and endless modes.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, radius int) MenuModel {
	items := make([]MenuItem, 0, len(menuOrder)+1)
	for _, entry := range menuOrder {
		if !registry.Exists(entry.id) {
			continue
		}
		game, err := registry.Create(entry.id)
		if err != nil {
			continue
		}
		item := MenuItem{
			GameID:    entry.id,
			Title:     game.Title(),
			HasRadius: entry.hasRadius,
		}
		if store != nil {
			if best, err := store.HighScore(entry.id); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	items = append(items, MenuItem{
		GameID: hex2048.IDCampaign,
		Title:  "Select Level...",
		Levels: true,
	})

	return MenuModel{
		items:     items,
		radius:    clampRadius(radius),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func clampRadius(r int) int {
	return max(config.MinRadius, min(config.MaxRadius, r))
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelAction(action)
		}
		return m.handleAction(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleAction processes input on the mode list.
func (m MenuModel) handleAction(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.current().HasRadius {
			m.radius = clampRadius(m.radius - 1)
		}

	case MenuActionRight:
		if m.current().HasRadius {
			m.radius = clampRadius(m.radius + 1)
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.Levels {
			m.inLevelSelect = true
			m.levelCursor = 0
			return m, nil
		}
		m.selected = &item
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) current() MenuItem {
	if len(m.items) == 0 {
		return MenuItem{}
	}
	return m.items[m.cursor]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  H E X S H I F T  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Title
		if item.HasRadius {
			line += fmt.Sprintf("  < radius %d >", m.radius)
		}
		if item.Best > 0 {
			line += fmt.Sprintf("  best %d", item.Best)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Radius  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Radius returns the radius chosen for the classic and endless modes.
func (m MenuModel) Radius() int {
	return m.radius
}

// StartLevel returns the chosen campaign level (1-based), 0 for the first.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Options returns the per-game options matching the selection.
func (m MenuModel) Options() hex2048.Options {
	if m.selected == nil {
		return hex2048.Options{}
	}
	if m.selected.HasRadius {
		return hex2048.Options{Radius: m.radius}
	}
	return hex2048.Options{StartLevel: m.startLevel}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Options         hex2048.Options
	Config          core.RuntimeConfig
	Radius          int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, radius int) (MenuResult, error) {
	model := NewMenuModel(store, cfg, radius)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Radius: radius}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Radius: radius, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Radius: m.Radius(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.Options = m.Options()
	}

	return result, nil
}
