package simclock

import "errors"

var (
	ErrInvalidTimeTravel    = errors.New("time can only move forward")
	ErrDuplicateActiveClock = errors.New("another simulated clock is already active")
	ErrAdvanceInProgress    = errors.New("advance already in progress")
)
