package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won" // Still playing, win tile reached
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	BestScore int
	Moves     int
	Board     [Size][Size]int
	MaxTile   int // Highest tile on board
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.session.GameOver:
		state = StateGameOver
	case g.session.Won:
		state = StateWon
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.session.Score,
		BestScore: g.session.BestScore,
		Moves:     g.session.Moves,
		Board:     g.session.Board.Grid(),
		MaxTile:   g.session.Board.MaxTile(),
		State:     state,
	}
}
