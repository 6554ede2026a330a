package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(Rules{WinTile: 0, FourProbability: 2}, &scriptedRand{})
	if got := e.Rules(); got != DefaultRules() {
		t.Errorf("Rules() = %+v, want %+v", got, DefaultRules())
	}

	e.SetFourProbability(-0.5)
	if e.Rules().FourProbability != DefaultFourProbability {
		t.Error("out-of-range probability should be ignored")
	}
	e.SetFourProbability(0.25)
	if e.Rules().FourProbability != 0.25 {
		t.Errorf("FourProbability = %v, want 0.25", e.Rules().FourProbability)
	}
}

func TestEngineStart(t *testing.T) {
	for seed := range int64(50) {
		e := NewEngine(DefaultRules(), rand.New(rand.NewSource(seed)))
		s := e.Start()

		if got := s.Board.Count(); got != 2 {
			t.Fatalf("seed %d: Start placed %d tiles, want 2", seed, got)
		}
		for _, v := range s.Board {
			if v != 0 && v != 2 && v != 4 {
				t.Fatalf("seed %d: unexpected starting tile %d", seed, v)
			}
		}
		if s.Score != 0 || s.Moves != 0 || s.Won || s.GameOver {
			t.Fatalf("seed %d: fresh session not clean: %+v", seed, s)
		}
	}
}

func TestEngineSameSeedSameGame(t *testing.T) {
	play := func() Session {
		e := NewEngine(DefaultRules(), rand.New(rand.NewSource(42)))
		s := e.Start()
		for i := range 200 {
			s, _, _ = e.Apply(s, Directions[i%len(Directions)])
		}
		return s
	}

	if a, b := play(), play(); a != b {
		t.Errorf("same seed produced different sessions:\n%v\n---\n%v", a.Board, b.Board)
	}
}

func TestApplyChangedMove(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedRand{ints: []int{0}})
	s, err := e.Resume(MustBoard(
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	), 10, 5)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	before := s

	next, tr, err := e.Apply(s, DirLeft)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	want := MustBoard(
		4, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)
	if next.Board != want {
		t.Errorf("board:\n%v\nwant:\n%v", next.Board, want)
	}
	if !tr.Changed || tr.ScoreDelta != 4 || tr.Direction != DirLeft {
		t.Errorf("transition = %+v", tr)
	}
	if next.Score != 14 || next.BestScore != 14 || next.Moves != 1 {
		t.Errorf("score/best/moves = %d/%d/%d, want 14/14/1", next.Score, next.BestScore, next.Moves)
	}
	if s != before {
		t.Error("Apply must not modify its input session")
	}
}

func TestApplyUnchangedMove(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedRand{})
	s, err := e.Resume(MustBoard(
		2, 4, 0, 0,
		8, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	), 0, 0)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	next, tr, err := e.Apply(s, DirLeft)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if next != s {
		t.Error("a move that changes nothing must not spawn or count")
	}
	if tr.Changed || tr.Rejected || tr.ScoreDelta != 0 {
		t.Errorf("transition = %+v, want no facts", tr)
	}
}

func TestApplyInvalidDirection(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedRand{})
	s := e.Start()

	next, _, err := e.Apply(s, Direction(9))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("err = %v, want ErrInvalidDirection", err)
	}
	if next != s {
		t.Error("session should be unchanged on error")
	}
}

func TestApplyMalformedBoard(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedRand{})
	s := Session{Board: Board{3, 3}}

	next, tr, err := e.Apply(s, DirLeft)
	if !errors.Is(err, ErrInvalidBoardState) {
		t.Fatalf("err = %v, want ErrInvalidBoardState", err)
	}
	if next != s {
		t.Errorf("session = %+v, want it unchanged", next)
	}
	if tr.Changed || tr.ScoreDelta != 0 {
		t.Errorf("transition = %+v, want no facts", tr)
	}
}

func TestApplyReachesGameOver(t *testing.T) {
	e := NewEngine(DefaultRules(), rand.New(rand.NewSource(1)))
	s, err := e.Resume(MustBoard(
		2, 4, 2, 4,
		4, 2, 4, 2,
		2, 4, 2, 8,
		0, 8, 16, 32,
	), 500, 900)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if s.GameOver {
		t.Fatal("board with an empty cell should not start over")
	}

	next, tr, err := e.Apply(s, DirLeft)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !tr.Changed || !tr.OverNow || !next.GameOver {
		t.Fatalf("expected the move to end the game, tr=%+v\n%v", tr, next.Board)
	}
	if next.Score != 500 || next.BestScore != 900 {
		t.Errorf("score/best = %d/%d, want 500/900", next.Score, next.BestScore)
	}

	for _, dir := range Directions {
		after, tr, err := e.Apply(next, dir)
		if err != nil {
			t.Fatalf("Apply(%s) after game over: %v", dir, err)
		}
		if !tr.Rejected || tr.Changed || tr.OverNow {
			t.Errorf("Apply(%s) after game over: tr=%+v", dir, tr)
		}
		if after != next {
			t.Errorf("Apply(%s) after game over changed the session", dir)
		}
	}
}

func TestWinLatches(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedRand{})
	s, err := e.Resume(MustBoard(
		1024, 1024, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	), 0, 0)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if s.Won {
		t.Fatal("session should not start won")
	}

	s, tr, err := e.Apply(s, DirLeft)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !s.Won || !tr.WonNow {
		t.Fatalf("merging to 2048 should win, tr=%+v", tr)
	}
	if s.GameOver {
		t.Error("winning does not end the game")
	}

	s, tr, err = e.Apply(s, DirRight)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !tr.Changed || tr.WonNow || !s.Won {
		t.Errorf("play continues after a win without re-announcing it, tr=%+v won=%v", tr, s.Won)
	}
}

func TestWinOnlyAnnouncedOnce(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedRand{})
	s, err := e.Resume(MustBoard(
		2048, 2048, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	), 0, 0)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if !s.Won {
		t.Fatal("a resumed board holding the win tile is already won")
	}

	s, tr, err := e.Apply(s, DirLeft)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if s.Board.MaxTile() != 4096 || tr.WonNow || !s.Won {
		t.Errorf("max=%d wonNow=%v won=%v", s.Board.MaxTile(), tr.WonNow, s.Won)
	}
}

func TestCustomWinTile(t *testing.T) {
	e := NewEngine(Rules{WinTile: 16, FourProbability: 0}, &scriptedRand{})
	s, err := e.Resume(MustBoard(
		8, 8, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	), 0, 0)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	_, tr, err := e.Apply(s, DirRight)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !tr.WonNow {
		t.Error("reaching the configured win tile should win")
	}
}

func TestResetKeepsBest(t *testing.T) {
	e := NewEngine(DefaultRules(), rand.New(rand.NewSource(3)))
	s := Session{Score: 1200, BestScore: 800, Won: true, GameOver: true, Moves: 90}

	next := e.Reset(s)
	if next.BestScore != 1200 {
		t.Errorf("BestScore = %d, want 1200", next.BestScore)
	}
	if next.Score != 0 || next.Moves != 0 || next.Won || next.GameOver {
		t.Errorf("Reset should start a clean game: %+v", next)
	}
	if next.Board.Count() != 2 {
		t.Errorf("Reset placed %d tiles, want 2", next.Board.Count())
	}
}

func TestResumeValidation(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedRand{})

	if _, err := e.Resume(Board{3}, 0, 0); !errors.Is(err, ErrInvalidBoardState) {
		t.Errorf("invalid tile: err = %v", err)
	}
	if _, err := e.Resume(Board{}, -1, 0); !errors.Is(err, ErrInvalidBoardState) {
		t.Errorf("negative score: err = %v", err)
	}

	s, err := e.Resume(Board{}, 300, 100)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if s.BestScore != 300 {
		t.Errorf("BestScore = %d, want at least the score", s.BestScore)
	}
}

func TestScoreOnlyGrowsAndBestTracksScore(t *testing.T) {
	e := NewEngine(DefaultRules(), rand.New(rand.NewSource(11)))
	s := e.Start()
	rng := rand.New(rand.NewSource(12))

	for range 500 {
		prev := s
		var tr Transition
		var err error
		s, tr, err = e.Apply(s, Directions[rng.Intn(len(Directions))])
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if s.Score != prev.Score+tr.ScoreDelta {
			t.Fatalf("score %d != %d + %d", s.Score, prev.Score, tr.ScoreDelta)
		}
		if s.BestScore < s.Score {
			t.Fatalf("best %d below score %d", s.BestScore, s.Score)
		}
		if prev.Won && !s.Won {
			t.Fatal("Won must never reset during a game")
		}
		if s.GameOver {
			break
		}
	}
}
