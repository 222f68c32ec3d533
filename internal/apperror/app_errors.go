package apperror

import "errors"

var (
	ErrMalformedInput  = errors.New("malformed input")
	ErrOutOfRange      = errors.New("coordinate out of range")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInputClosed     = errors.New("input stream closed")
	ErrGameFinished    = errors.New("game is already finished")
	ErrTaskNotFound    = errors.New("task not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownStorage  = errors.New("unknown storage type")
)
