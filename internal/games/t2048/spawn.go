package t2048

// DefaultFourProbability is the chance a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.10

// RandSource is the randomness a spawn draws from. *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawn places a new tile (2 or 4) in a uniformly chosen empty cell.
// A full board is returned unchanged. The input board is never modified.
func Spawn(board Board, rng RandSource, fourProbability float64) Board {
	empty := board.EmptyIndices()
	if len(empty) == 0 {
		return board
	}

	idx := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProbability {
		value = 4
	}

	board[idx] = value
	return board
}
