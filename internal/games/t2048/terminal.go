package t2048

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for _, v := range board {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same value.
func HasPossibleMerge(board Board) bool {
	for r := range Size {
		for c := range Size {
			val := board.At(r, c)
			if c < Size-1 && board.At(r, c+1) == val {
				return true
			}
			if r < Size-1 && board.At(r+1, c) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(board Board) bool {
	return !CanMove(board)
}
