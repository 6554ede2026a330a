package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// helpHeight is the number of rows reserved below the board for the help footer.
const helpHeight = 1

// Model is the Bubble Tea model for one 2048 game.
type Model struct {
	game        *t2048.Game
	screen      *core.Screen
	renderer    *ScreenRenderer
	store       *storage.Store
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	cues        *CueObserver
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current game has been recorded
}

// NewModel creates a model around a fresh game. store and cues may be nil.
func NewModel(cfg config.GameConfig, store *storage.Store, rc core.RuntimeConfig, cues *CueObserver) Model {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	game := t2048.New(cfg)
	game.Reset(gameRuntime(rc))
	if cues != nil {
		game.SetLogger(cues.logger)
	}
	if store != nil {
		if best, err := store.BestScore(t2048.ID); err == nil {
			game.SetBestScore(best)
		}
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(rc.ScreenW, max(rc.ScreenH-helpHeight, 0)),
		renderer:   defaultScreenRenderer,
		store:      store,
		config:     rc,
		keys:       DefaultKeyMap(),
		help:       h,
		cues:       cues,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// gameRuntime shrinks the runtime config by the help footer.
func gameRuntime(rc core.RuntimeConfig) core.RuntimeConfig {
	rc.ScreenH = max(rc.ScreenH-helpHeight, 0)
	return rc
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveResult(m.game.Session())
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when it is over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveResult(m.game.Session())
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize keeps the session and only changes the drawing area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	rc := gameRuntime(m.config)
	m.screen.Resize(rc.ScreenW, rc.ScreenH)
	m.game.Resize(rc.ScreenW, rc.ScreenH)
	m.help.Width = msg.Width
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.game.Session()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Restarted {
		m.saveResult(prev)
		m.resultSaved = false
	}

	if m.cues != nil {
		m.cues.Observe(m.game.LastTransition())
	}

	// Save score on game over (once)
	if m.gameState.GameOver {
		m.saveResult(m.game.Session())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records a finished game once. Empty games are not recorded.
func (m *Model) saveResult(s t2048.Session) {
	if m.resultSaved {
		return
	}
	m.resultSaved = true
	if m.store == nil || s.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.GameResult{
		GameID:  t2048.ID,
		Score:   s.Score,
		MaxTile: s.Board.MaxTile(),
		Moves:   s.Moves,
		Won:     s.Won,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", t2048.ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the board with the help footer below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// WithRenderer returns a copy of the model drawing through r.
func (m Model) WithRenderer(r *ScreenRenderer) Model {
	if r != nil {
		m.renderer = r
	}
	return m
}

// Game returns the wrapped game.
func (m Model) Game() *t2048.Game {
	return m.game
}

// WithBoard returns a copy of the model whose game continues from board
// with a zero score.
func (m Model) WithBoard(board t2048.Board) (Model, error) {
	if err := m.game.Load(board, 0); err != nil {
		return m, err
	}
	m.gameState = m.game.State()
	return m, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// A non-nil start board replaces the opening position.
func Run(cfg config.GameConfig, store *storage.Store, rc core.RuntimeConfig, start *t2048.Board) error {
	model := NewModel(cfg, store, rc, NewCueObserver(os.Stderr, nil))
	if start != nil {
		var err error
		if model, err = model.WithBoard(*start); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
