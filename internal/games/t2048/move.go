package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// MoveResult is the outcome of applying a direction to a board, before any spawn.
type MoveResult struct {
	Board      Board
	ScoreDelta int
	Changed    bool
}

// lineAxis describes how a direction slices the board into lines.
// Lines are read with read(b, i), reversed when reverse is set so that index 0
// faces the direction of motion, merged, then restored and written back.
type lineAxis struct {
	read    func(b Board, i int) Line
	write   func(b Board, i int, l Line) Board
	reverse bool
}

var (
	rowAxis    = lineAxis{read: Board.Row, write: Board.WithRow}
	columnAxis = lineAxis{read: Board.Column, write: Board.WithColumn}
)

var moveTable = map[Direction]lineAxis{
	DirLeft:  rowAxis,
	DirRight: {read: rowAxis.read, write: rowAxis.write, reverse: true},
	DirUp:    columnAxis,
	DirDown:  {read: columnAxis.read, write: columnAxis.write, reverse: true},
}

// Move slides all tiles in the given direction and merges them.
// When nothing moves, the returned board is the input board and Changed is false.
// A board holding a value that is not a tile is rejected with ErrInvalidBoardState.
func Move(board Board, dir Direction) (MoveResult, error) {
	axis, ok := moveTable[dir]
	if !ok {
		return MoveResult{Board: board}, fmt.Errorf("%w: move %s", ErrInvalidDirection, dir)
	}
	if err := board.Validate(); err != nil {
		return MoveResult{Board: board}, err
	}

	next := board
	total := 0
	for i := range Size {
		line := axis.read(board, i)
		if axis.reverse {
			line = line.reverse()
		}
		merged, score := MergeLine(line)
		if axis.reverse {
			merged = merged.reverse()
		}
		next = axis.write(next, i, merged)
		total += score
	}

	if next == board {
		return MoveResult{Board: board}, nil
	}
	return MoveResult{Board: next, ScoreDelta: total, Changed: true}, nil
}

// Slide is the panic-free shorthand used by the tick loop and tests: an
// invalid direction yields the board unchanged.
func Slide(board Board, dir Direction) (Board, int, bool) {
	res, err := Move(board, dir)
	if err != nil {
		return board, 0, false
	}
	return res.Board, res.ScoreDelta, res.Changed
}
