package simclock

import "sync"

var (
	activeMu sync.Mutex
	active   *SimulatedClock
)

// Start creates a SimulatedClock and registers it as the process-wide
// active clock, so code reading time through Current picks it up. Only one
// simulated clock can be active at a time; a second Start fails with
// ErrDuplicateActiveClock. Callers should release the registration when
// their scope ends:
//
//	clock, err := simclock.Start(simclock.SimulatedClockArgs{StartAt: t0})
//	if err != nil {
//		t.Fatal(err)
//	}
//	defer clock.Stop()
func Start(args SimulatedClockArgs) (*SimulatedClock, error) {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active != nil {
		return nil, ErrDuplicateActiveClock
	}

	active = NewSimulatedClock(args)

	return active, nil
}

// Stop revokes the clock's registration as the active clock. Idempotent,
// and a no-op when some other clock is registered.
func (c *SimulatedClock) Stop() {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active == c {
		active = nil
	}
}

// Current returns the active simulated clock, falling back to the real
// clock when none is registered.
func Current() Clock {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active != nil {
		return active
	}

	return RealClock{}
}
