package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotStarted = errors.New("game is not started")
	ErrUnknownSymbol  = errors.New("unknown symbol")
)
