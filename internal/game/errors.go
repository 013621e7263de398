package game

import "errors"

var (
	// ErrInvalidPosition is returned for out-of-range columns, depths or slots.
	// It signals a caller bug, not an illegal move.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidSuit is returned when a suit argument is not one of the three suits.
	ErrInvalidSuit = errors.New("invalid suit")

	// ErrInvalidLayout is returned by FromLayout when the card census does not hold.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrStalePlan is returned by CollectDragons when the plan no longer matches the board.
	ErrStalePlan = errors.New("stale dragon collection plan")
)
