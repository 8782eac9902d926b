package apperror

import "errors"

// configuration errors, surfaced before any round is played.
var (
	ErrUnknownPlayerType   = errors.New("unknown player type")
	ErrUnknownRendererType = errors.New("unknown renderer type")
	ErrInvalidBoardSize    = errors.New("board size must be positive")
	ErrInvalidWinStreak    = errors.New("win streak must be positive")
	ErrInvalidRounds       = errors.New("rounds must not be negative")
)

// contract violations inside the match loop. These are bugs, never retried.
var (
	ErrNoEmptyCell = errors.New("no empty cell left on the board")
	ErrInvalidCell = errors.New("invalid cell index")
)

// ErrIllegalMove reports a strategy that did not fill exactly one blank cell on its turn.
var ErrIllegalMove = errors.New("player must fill exactly one empty cell per turn")
