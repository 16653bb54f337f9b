package booking

import "errors"

var (
	// ErrInvalidTransition is returned when a wizard action is requested from a
	// step that does not offer it. State is left untouched.
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrEmptySelection    = errors.New("no seats selected")
	ErrUnknownSeat       = errors.New("unknown seat")
	ErrUnknownShowtime   = errors.New("unknown showtime")
	ErrIncompleteStep    = errors.New("step is missing required selections")
)
