package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMoveLeft(t *testing.T) {
	board := MustBoard(
		2, 2, 0, 0,
		4, 0, 4, 0,
		2, 2, 2, 2,
		0, 0, 0, 2,
	)

	expected := MustBoard(
		4, 0, 0, 0,
		8, 0, 0, 0,
		4, 4, 0, 0,
		2, 0, 0, 0,
	)

	res := mustMove(t, board, DirLeft)

	if res.Board != expected {
		t.Errorf("Move left: got\n%v\nwant\n%v", res.Board, expected)
	}
	if !res.Changed {
		t.Error("Move left should indicate board changed")
	}

	expectedScore := 4 + 8 + 4 + 4
	if res.ScoreDelta != expectedScore {
		t.Errorf("Move left score = %d, want %d", res.ScoreDelta, expectedScore)
	}
}

func TestMoveRight(t *testing.T) {
	board := MustBoard(
		2, 2, 0, 0,
		4, 0, 4, 0,
		2, 2, 2, 2,
		0, 0, 0, 2,
	)

	expected := MustBoard(
		0, 0, 0, 4,
		0, 0, 0, 8,
		0, 0, 4, 4,
		0, 0, 0, 2,
	)

	res := mustMove(t, board, DirRight)

	if res.Board != expected {
		t.Errorf("Move right: got\n%v\nwant\n%v", res.Board, expected)
	}
	if !res.Changed {
		t.Error("Move right should indicate board changed")
	}
}

func TestMoveRightMergesNearestPairFirst(t *testing.T) {
	board := MustBoard(
		2, 2, 2, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)

	res := mustMove(t, board, DirRight)

	// The two rightmost 2s merge; the leftover 2 slides next to them
	if got := res.Board.Row(0); got != (Line{0, 0, 2, 4}) {
		t.Errorf("Move right row 0 = %v, want [0 0 2 4]", got)
	}
}

func TestMoveUp(t *testing.T) {
	board := MustBoard(
		2, 4, 2, 0,
		2, 0, 2, 0,
		0, 4, 2, 0,
		0, 0, 2, 2,
	)

	expected := MustBoard(
		4, 8, 4, 2,
		0, 0, 4, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)

	res := mustMove(t, board, DirUp)

	if res.Board != expected {
		t.Errorf("Move up: got\n%v\nwant\n%v", res.Board, expected)
	}
	if !res.Changed {
		t.Error("Move up should indicate board changed")
	}
	if res.ScoreDelta != 4+8+4+4 {
		t.Errorf("Move up score = %d, want 20", res.ScoreDelta)
	}
}

func TestMoveDown(t *testing.T) {
	board := MustBoard(
		2, 4, 2, 2,
		2, 0, 2, 0,
		0, 4, 2, 0,
		0, 0, 2, 0,
	)

	expected := MustBoard(
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 4, 0,
		4, 8, 4, 2,
	)

	res := mustMove(t, board, DirDown)

	if res.Board != expected {
		t.Errorf("Move down: got\n%v\nwant\n%v", res.Board, expected)
	}
	if !res.Changed {
		t.Error("Move down should indicate board changed")
	}
}

func TestMoveNoChange(t *testing.T) {
	board := MustBoard(
		4, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)

	// Sliding left when tiles are already left-aligned
	res := mustMove(t, board, DirLeft)

	if res.Changed {
		t.Error("Move left should not change already left-aligned tiles")
	}
	if res.Board != board {
		t.Errorf("unchanged move must return the input board, got\n%v", res.Board)
	}
	if res.ScoreDelta != 0 {
		t.Errorf("unchanged move score = %d, want 0", res.ScoreDelta)
	}
}

func TestMoveFirstRowScenario(t *testing.T) {
	board := MustBoard(
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)

	res := mustMove(t, board, DirLeft)

	if got := res.Board.Row(0); got != (Line{4, 0, 0, 0}) {
		t.Errorf("row 0 = %v, want [4 0 0 0]", got)
	}
	if res.ScoreDelta != 4 || !res.Changed {
		t.Errorf("score = %d changed = %v, want 4 true", res.ScoreDelta, res.Changed)
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	board := MustBoard(
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)

	res, err := Move(board, Direction(7))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("Move(7) error = %v, want ErrInvalidDirection", err)
	}
	if res.Changed || res.Board != board {
		t.Error("invalid direction must leave the board untouched")
	}

	b, score, changed := Slide(board, Direction(-1))
	if b != board || score != 0 || changed {
		t.Error("Slide with invalid direction should be a no-op")
	}
}

func TestMoveMalformedBoard(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{"odd values", Board{3, 3}},
		{"one", Board{1, 1, 2}},
		{"negative", Board{0, 0, 0, -2}},
		{"not a power of two", Board{12: 6, 13: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, dir := range Directions {
				res, err := Move(tt.board, dir)
				if !errors.Is(err, ErrInvalidBoardState) {
					t.Fatalf("Move(%s) error = %v, want ErrInvalidBoardState", dir, err)
				}
				if res.Changed || res.Board != tt.board || res.ScoreDelta != 0 {
					t.Errorf("Move(%s) = %+v, want the board untouched", dir, res)
				}
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	want := map[Direction]string{DirUp: "up", DirDown: "down", DirLeft: "left", DirRight: "right"}
	for _, d := range Directions {
		if d.String() != want[d] || !d.Valid() {
			t.Errorf("Direction(%d) = %q, valid %v", d, d.String(), d.Valid())
		}
	}
	if got := Direction(9).String(); got != "direction(9)" {
		t.Errorf("Direction(9).String() = %q", got)
	}
	if Direction(9).Valid() {
		t.Error("Direction(9) should not be valid")
	}
}

// TestRepeatedMoveOnlyMerges: after a move every line is compacted, so moving
// the same way again can only change the board by merging.
func TestRepeatedMoveOnlyMerges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for range 2000 {
		board := randomBoard(rng)
		for _, dir := range Directions {
			first := mustMove(t, board, dir)
			second := mustMove(t, first.Board, dir)
			if second.Changed && second.ScoreDelta == 0 {
				t.Fatalf("second %s move slid tiles without merging:\n%v\n->\n%v", dir, first.Board, second.Board)
			}

			// With nothing left to merge the second move is a no-op
			if !HasPossibleMerge(first.Board) && second.Changed {
				t.Fatalf("second %s move changed a merge-free board:\n%v", dir, first.Board)
			}
		}
	}
}

func TestMoveConservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for range 2000 {
		board := randomBoard(rng)
		for _, dir := range Directions {
			res := mustMove(t, board, dir)
			if res.Board.Sum() != board.Sum() {
				t.Fatalf("%s move changed total value %d -> %d", dir, board.Sum(), res.Board.Sum())
			}
			if res.ScoreDelta < 0 {
				t.Fatalf("%s move produced negative score %d", dir, res.ScoreDelta)
			}
			if res.Changed != (res.Board != board) {
				t.Fatalf("%s move: Changed=%v disagrees with board equality", dir, res.Changed)
			}
		}
	}
}

func TestLeftRightSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for range 2000 {
		board := randomBoard(rng)

		var mirrored Board
		for r := range Size {
			mirrored = mirrored.WithRow(r, board.Row(r).reverse())
		}

		left := mustMove(t, board, DirLeft)
		right := mustMove(t, mirrored, DirRight)

		for r := range Size {
			if left.Board.Row(r) != right.Board.Row(r).reverse() {
				t.Fatalf("row %d: left %v vs mirrored right %v", r, left.Board.Row(r), right.Board.Row(r))
			}
		}
		if left.ScoreDelta != right.ScoreDelta {
			t.Fatalf("left score %d != mirrored right score %d", left.ScoreDelta, right.ScoreDelta)
		}
	}
}

func TestUpDownMatchTransposedLeftRight(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	transpose := func(b Board) Board {
		var out Board
		for i := range Size {
			out = out.WithRow(i, b.Column(i))
		}
		return out
	}

	for range 1000 {
		board := randomBoard(rng)
		pairs := [][2]Direction{{DirUp, DirLeft}, {DirDown, DirRight}}
		for _, p := range pairs {
			vertical := mustMove(t, board, p[0])
			horizontal := mustMove(t, transpose(board), p[1])
			if vertical.Board != transpose(horizontal.Board) {
				t.Fatalf("%s differs from transposed %s on\n%v", p[0], p[1], board)
			}
		}
	}
}
