package simclock

import (
	"context"
	"time"
)

type (
	// Action is a unit of work fired when virtual time reaches its due
	// instant. It receives the clock so it can schedule further work.
	Action func(ctx context.Context, clock *SimulatedClock)

	// AsyncAction performs its work asynchronously and returns a channel
	// that is closed once the work completes.
	AsyncAction func(ctx context.Context, clock *SimulatedClock) <-chan struct{}

	scheduledItem struct {
		due    time.Time
		action Action
	}
)
