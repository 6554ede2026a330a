// Package t2048 implements the rules of the 2048 sliding-tile puzzle: board
// state, directional moves with merging, random tile spawning, terminal-state
// detection and the game session built on top of them.
//
// Everything in this file and in line.go, move.go, spawn.go, terminal.go and
// engine.go is a pure function of its inputs (plus an injected RandSource).
// game.go adapts the engine to the platform tick loop.
package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// Line is one row or column, oriented so index 0 is the direction of motion.
type Line [Size]int

// Board is a row-major 4x4 grid. Cell (r, c) lives at index r*Size + c.
// A zero value means the cell is empty.
type Board [Cells]int

// NewBoard builds a board from row-major values, validating every cell.
func NewBoard(values []int) (Board, error) {
	var b Board
	if len(values) != Cells {
		return b, fmt.Errorf("%w: board has %d cells, want %d", ErrInvalidBoardState, len(values), Cells)
	}
	copy(b[:], values)
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate reports whether every cell is empty or a power of two >= 2.
func (b Board) Validate() error {
	for i, v := range b {
		if v == 0 {
			continue
		}
		if !isTileValue(v) {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidBoardState, i, v)
		}
	}
	return nil
}

func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// At returns the value at row r, column c.
func (b Board) At(r, c int) int {
	return b[r*Size+c]
}

// Row returns row r read left to right.
func (b Board) Row(r int) Line {
	var l Line
	copy(l[:], b[r*Size:(r+1)*Size])
	return l
}

// Column returns column c read top to bottom.
func (b Board) Column(c int) Line {
	var l Line
	for r := range Size {
		l[r] = b[r*Size+c]
	}
	return l
}

// WithRow returns a copy of the board with row r replaced.
func (b Board) WithRow(r int, l Line) Board {
	copy(b[r*Size:(r+1)*Size], l[:])
	return b
}

// WithColumn returns a copy of the board with column c replaced.
func (b Board) WithColumn(c int, l Line) Board {
	for r := range Size {
		b[r*Size+c] = l[r]
	}
	return b
}

// EmptyIndices returns the linear indices of all empty cells in ascending order.
func (b Board) EmptyIndices() []int {
	var idx []int
	for i, v := range b {
		if v == 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// MaxTile returns the highest tile value on the board, 0 if empty.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Grid returns the board as a 2D array, row by row.
func (b Board) Grid() [Size][Size]int {
	var g [Size][Size]int
	for r := range Size {
		g[r] = b.Row(r)
	}
	return g
}

// String renders the board as four lines of space-separated values, "." for empty.
func (b Board) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.At(r, c)
			if v == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// ParseBoard reads 16 row-major cells separated by commas or whitespace.
// Empty cells are written as 0 or ".", so the output of String parses back.
func ParseBoard(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]int, len(fields))
	for i, f := range fields {
		if f == "." {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: cell %d is %q", ErrInvalidBoardState, i, f)
		}
		values[i] = v
	}
	return NewBoard(values)
}

// reverse returns l with its elements in reverse order.
func (l Line) reverse() Line {
	var out Line
	for i := range Size {
		out[i] = l[Size-1-i]
	}
	return out
}
