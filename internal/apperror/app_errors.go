package apperror

import "errors"

// The messages are sent verbatim to the client.
var (
	ErrGameIsNotStarted = errors.New("No game started")
	ErrPositionTaken    = errors.New("Position already taken")
	ErrNoFlip           = errors.New("You must flip at least one tile")
	ErrNothingToCancel  = errors.New("No more moves to cancel")
	ErrOutsideBoard     = errors.New("Position is outside the board")
)
