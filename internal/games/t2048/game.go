package t2048

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// ID is the storage key for 2048 scores.
const ID = "2048"

// Game adapts the Engine to the platform tick loop: it turns input frames
// into directions, keeps the live Session and draws it to a screen.
type Game struct {
	cfg        config.GameConfig
	engine     *Engine
	difficulty *config.DifficultyManager
	palette    map[int]core.Color
	logger     *log.Logger // Optional; engine errors are dropped without one
	tick       uint64

	session Session
	last    Transition
	best    int // Best score carried across resets

	// Screen dimensions
	screenW int
	screenH int

	// Presentation flags
	paused    bool
	tooSmall  bool
	winBanner bool // Shown from the winning move until the next move
}

// New creates a 2048 game from configuration. Call Reset before Step.
func New(cfg config.GameConfig) *Game {
	return &Game{
		cfg:     cfg,
		palette: themePalette(cfg.Theme),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game with a fresh random source.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rules := Rules{
		WinTile:         g.cfg.Rules.WinTile,
		FourProbability: g.cfg.Rules.FourProbability,
	}
	g.engine = NewEngine(rules, rand.New(rand.NewSource(cfg.Seed)))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.engine.Rules().FourProbability)
	g.engine.SetFourProbability(g.difficulty.FourProbability(0, 0))

	g.best = max(g.best, g.session.Score, g.session.BestScore)
	g.session = g.engine.Start()
	g.session.BestScore = g.best

	g.tick = 0
	g.last = Transition{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.winBanner = false

	g.checkScreenSize()
}

// SetLogger sets the logger used to report engine errors.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Load replaces the current session with one built around board. Won and
// GameOver follow from the board. On error the current session is kept.
func (g *Game) Load(board Board, score int) error {
	s, err := g.engine.Resume(board, score, g.best)
	if err != nil {
		return err
	}
	g.session = s
	g.best = s.BestScore
	g.last = Transition{}
	g.winBanner = false
	g.engine.SetFourProbability(g.difficulty.FourProbability(s.Score, s.Moves))
	return nil
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := boardWidth + 2
	minH := boardHeight + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// SetBestScore mirrors the externally persisted best score into the session.
func (g *Game) SetBestScore(best int) {
	g.best = max(g.best, best)
	g.session.BestScore = max(g.session.BestScore, g.best)
}

// Session returns the current settled session.
func (g *Game) Session() Session {
	return g.session
}

// LastTransition returns the facts produced by the most recent tick.
func (g *Game) LastTransition() Transition {
	return g.last
}

// Step advances the game by one tick. At most one direction is applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.last = Transition{}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: g.last.Changed}
}

// directionFromInput picks the first direction action in a fixed order.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) {
	next, tr, err := g.engine.Apply(g.session, dir)
	if err != nil {
		if g.logger != nil {
			g.logger.Error("move failed", "direction", dir, "err", err)
		}
		return
	}
	g.last = tr
	if !tr.Changed {
		return
	}

	g.session = next
	g.best = max(g.best, next.BestScore)
	g.winBanner = tr.WonNow

	if g.difficulty.IsEnabled() {
		g.engine.SetFourProbability(g.difficulty.FourProbability(next.Score, next.Moves))
	}
}

// restart starts a new game in place, keeping the best score and rng stream.
func (g *Game) restart() {
	g.session = g.engine.Reset(g.session)
	g.best = g.session.BestScore
	g.winBanner = false
	g.engine.SetFourProbability(g.difficulty.FourProbability(0, 0))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score,
		BestScore: g.session.BestScore,
		GameOver:  g.session.GameOver,
		Won:       g.session.Won,
		Paused:    g.paused || g.tooSmall,
	}
}
