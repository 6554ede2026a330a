package t2048

import "errors"

// Precondition violations. Neither can occur through the normal input path;
// callers compare with errors.Is.
var (
	ErrInvalidDirection  = errors.New("t2048: invalid direction")
	ErrInvalidBoardState = errors.New("t2048: invalid board state")
)
