package simclock

import "time"

// Clock is the time source production code should read instead of calling
// time.Now directly, so that tests can substitute a SimulatedClock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

func NewClock() *RealClock {
	return &RealClock{}
}
