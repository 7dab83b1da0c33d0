package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// MenuItem is one selectable entry: a campaign level or a game mode.
type MenuItem struct {
	GameID string
	Level  string // Start level for campaign entries
	Title  string
	Detail string // Best score and clear mark
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	player         string
	keyMapper      *KeyMapper
	loadErr        error
	quitting       bool
	selected       *MenuItem // Set when user selects an entry
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, player string) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		player:    player,
		keyMapper: NewKeyMapper(),
	}
	m.items, m.loadErr = buildMenuItems(store, player)
	return m
}

// buildMenuItems lists "continue", every campaign level and endless mode.
func buildMenuItems(store *storage.Store, player string) ([]MenuItem, error) {
	var progress map[string]storage.LevelProgress
	if store != nil {
		// A missing database only hides best scores
		progress, _ = store.Progress(player)
	}

	var items []MenuItem
	lvls, err := match3.Levels()
	if len(lvls) > 0 {
		next := lvls[0].ID
		for i := len(lvls) - 1; i >= 0; i-- {
			if _, ok := progress[lvls[i].ID]; !ok {
				next = lvls[i].ID
			}
		}
		items = append(items, MenuItem{
			GameID: match3.CampaignID,
			Level:  next,
			Title:  "Continue campaign",
		})

		for i, lvl := range lvls {
			item := MenuItem{
				GameID: match3.CampaignID,
				Level:  lvl.ID,
				Title:  fmt.Sprintf("%2d. %s", i+1, lvl.Name),
			}
			if p, ok := progress[lvl.ID]; ok {
				item.Detail = fmt.Sprintf("best %d ✓", p.BestScore)
			}
			items = append(items, item)
		}
	}

	if registry.Exists(match3.EndlessID) {
		items = append(items, MenuItem{GameID: match3.EndlessID, Title: "Endless"})
	}
	return items, err
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
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

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  M A T C H - 3  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a level", m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(fmt.Sprintf("levels: %v", m.loadErr), m.width))
		b.WriteString("\n\n")
	}

	width := 0
	for _, item := range m.items {
		width = core.Max(width, lipgloss.Width(item.Title)+lipgloss.Width(item.Detail)+4)
	}

	for i, item := range m.items {
		gap := width - lipgloss.Width(item.Title) - lipgloss.Width(item.Detail) - 2
		line := "  " + item.Title + strings.Repeat(" ", core.Max(1, gap)) + dimStyle.Render(item.Detail)
		if i == m.cursor {
			line = cursorStyle.Render("> "+item.Title) + strings.Repeat(" ", core.Max(1, gap)) + dimStyle.Render(item.Detail)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
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

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig // Level is set for campaign entries
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state to a MenuResult.
func (m MenuModel) result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.Config.Level = m.Selected().Level
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, player string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
