package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceScores
	ChoiceQuit
)

// menuItems are the selectable rows. The difficulty row cycles in place.
var menuItems = []string{"New Game", "Difficulty", "High Scores", "Quit"}

const difficultyRow = 1

// presetCycle is the order the difficulty row steps through.
// The empty preset plays the loaded config unchanged.
var presetCycle = []config.DifficultyPreset{
	"",
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
	config.DifficultyEasy,
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	preset    int // index into presetCycle
	width     int
	height    int
	best      int
	config    core.RuntimeConfig
	keys      KeyMap
	choice    MenuChoice
	titleText lipgloss.Style
	dimText   lipgloss.Style
}

// NewMenuModel creates a new menu model. best is shown under the title.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, best int) MenuModel {
	idx := 0
	for i, p := range presetCycle {
		if p == preset {
			idx = i
		}
	}

	return MenuModel{
		preset:    idx,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      best,
		config:    cfg,
		keys:      DefaultKeyMap(),
		titleText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		dimText:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
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
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == difficultyRow {
			m.preset = (m.preset + len(presetCycle) - 1) % len(presetCycle)
		}

	case MenuActionRight:
		if m.cursor == difficultyRow {
			m.preset = (m.preset + 1) % len(presetCycle)
		}

	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choice = ChoiceNewGame
		case difficultyRow:
			m.preset = (m.preset + 1) % len(presetCycle)
			return m, nil
		case 2:
			m.choice = ChoiceScores
		default:
			m.choice = ChoiceQuit
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.titleText.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.dimText.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		if i == difficultyRow {
			item = fmt.Sprintf("Difficulty: < %s >", presetLabel(m.Preset()))
		}
		b.WriteString(centerText(cursor+item, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(m.dimText.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or ChoiceNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presetCycle[m.preset]
}

func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, best int) (MenuResult, error) {
	model := NewMenuModel(cfg, preset, best)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Preset: preset, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Preset: preset, Config: cfg}, nil
	}

	choice := m.Choice()
	if choice == ChoiceNone {
		choice = ChoiceQuit
	}
	return MenuResult{Choice: choice, Preset: m.Preset(), Config: m.Config()}, nil
}
