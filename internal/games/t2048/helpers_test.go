package t2048

import (
	"math/rand"
	"testing"
)

// MustBoard is like NewBoard but panics on invalid input.
func MustBoard(values ...int) Board {
	b, err := NewBoard(values)
	if err != nil {
		panic(err)
	}
	return b
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// scriptedRand replays fixed Intn and Float64 results. Once a script runs
// out it returns 0 for Intn and 0.99 (a 2 tile) for Float64.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// randomBoard fills each cell with an empty or small tile.
func randomBoard(rng *rand.Rand) Board {
	values := []int{0, 0, 0, 2, 2, 4, 4, 8, 16, 32}
	var b Board
	for i := range b {
		b[i] = values[rng.Intn(len(values))]
	}
	return b
}

func mustMove(t *testing.T, b Board, dir Direction) MoveResult {
	t.Helper()
	res, err := Move(b, dir)
	if err != nil {
		t.Fatalf("Move(%s) failed: %v", dir, err)
	}
	return res
}
