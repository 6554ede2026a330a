package t2048

import "fmt"

// DefaultWinTile is the tile value that wins the game.
const DefaultWinTile = 2048

// Rules holds the tunable parameters of a game.
type Rules struct {
	WinTile         int     // Reaching a tile >= WinTile latches Won
	FourProbability float64 // Chance a spawned tile is a 4
}

// DefaultRules returns the classic 2048 rules.
func DefaultRules() Rules {
	return Rules{
		WinTile:         DefaultWinTile,
		FourProbability: DefaultFourProbability,
	}
}

// Session is a settled snapshot of one game. It is a plain value: Engine
// methods return a new Session and never modify the one they were given.
type Session struct {
	Board     Board
	Score     int
	BestScore int // Mirror of the externally persisted best score
	Won       bool
	GameOver  bool
	Moves     int // Number of moves that changed the board
}

// Transition describes what happened when a direction was applied.
// The presentation layer drives its cues from these facts.
type Transition struct {
	Direction  Direction
	Changed    bool // The board moved; a tile was spawned
	ScoreDelta int
	WonNow     bool // Won went false -> true on this move
	OverNow    bool // GameOver went false -> true on this move
	Rejected   bool // Input arrived after the game ended
}

// Engine applies the rules to sessions using an injected random source.
// An Engine is not safe for concurrent use; inputs must be serialized.
type Engine struct {
	rules Rules
	rng   RandSource
}

// NewEngine creates an engine. Zero-valued rule fields fall back to defaults.
func NewEngine(rules Rules, rng RandSource) *Engine {
	defaults := DefaultRules()
	if rules.WinTile <= 0 {
		rules.WinTile = defaults.WinTile
	}
	if rules.FourProbability < 0 || rules.FourProbability > 1 {
		rules.FourProbability = defaults.FourProbability
	}
	return &Engine{rules: rules, rng: rng}
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// SetFourProbability changes the chance of spawning a 4 for later spawns.
// Out-of-range values are ignored.
func (e *Engine) SetFourProbability(p float64) {
	if p < 0 || p > 1 {
		return
	}
	e.rules.FourProbability = p
}

// Start returns a fresh session: an empty board with two spawned tiles.
func (e *Engine) Start() Session {
	board := e.spawn(e.spawn(Board{}))
	return Session{Board: board}
}

// Reset starts over, keeping only the best score.
func (e *Engine) Reset(s Session) Session {
	next := e.Start()
	next.BestScore = max(s.BestScore, s.Score)
	return next
}

// Resume builds a session around an existing board. Won and GameOver are
// derived from the board so the latches hold from the first move.
func (e *Engine) Resume(board Board, score, best int) (Session, error) {
	if err := board.Validate(); err != nil {
		return Session{}, err
	}
	if score < 0 || best < 0 {
		return Session{}, fmt.Errorf("%w: negative score %d/%d", ErrInvalidBoardState, score, best)
	}
	return Session{
		Board:     board,
		Score:     score,
		BestScore: max(best, score),
		Won:       board.MaxTile() >= e.rules.WinTile,
		GameOver:  IsGameOver(board),
	}, nil
}

// Apply plays one direction against s and returns the resulting session.
//
// Input after game over is rejected. A move that changes nothing leaves the
// session untouched. Otherwise a tile is spawned, the score grows by the merge
// total, Won latches once a tile reaches the win tile, and GameOver latches
// when the post-spawn board has no moves left.
func (e *Engine) Apply(s Session, dir Direction) (Session, Transition, error) {
	tr := Transition{Direction: dir}
	if !dir.Valid() {
		return s, tr, fmt.Errorf("%w: apply %s", ErrInvalidDirection, dir)
	}
	if s.GameOver {
		tr.Rejected = true
		return s, tr, nil
	}

	res, err := Move(s.Board, dir)
	if err != nil {
		return s, tr, err
	}
	if !res.Changed {
		return s, tr, nil
	}

	next := s
	next.Board = e.spawn(res.Board)
	next.Score += res.ScoreDelta
	next.BestScore = max(next.BestScore, next.Score)
	next.Moves++

	if !next.Won && next.Board.MaxTile() >= e.rules.WinTile {
		next.Won = true
		tr.WonNow = true
	}
	if IsGameOver(next.Board) {
		next.GameOver = true
		tr.OverNow = true
	}

	tr.Changed = true
	tr.ScoreDelta = res.ScoreDelta
	return next, tr, nil
}

func (e *Engine) spawn(b Board) Board {
	return Spawn(b, e.rng, e.rules.FourProbability)
}
