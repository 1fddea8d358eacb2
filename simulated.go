package simclock

import (
	"context"
	"runtime"
	"time"
)

type SimulatedClockArgs struct {
	// StartAt is the initial virtual instant. The zero time is a valid
	// default start.
	StartAt time.Time

	// Recorder observes AdvanceTo calls. Nil means no recording.
	Recorder AdvanceRecorder
}

// SimulatedClock is a virtual time source for deterministic tests. It owns
// a current instant and an ordered queue of pending actions; advancing the
// clock fires every action that falls due, in strict ascending due-time
// order, with zero real-world delay. E.g:
//
//	clock := NewSimulatedClock(SimulatedClockArgs{StartAt: t0})
//	clock.ScheduleAt(t0.Add(time.Second), expireSession)
//	err := clock.AdvanceTo(ctx, t0.Add(time.Minute)) // expireSession fires here
//
// A SimulatedClock is meant to be driven from a single test context; it
// does not synchronize concurrent mutation by independent callers.
type SimulatedClock struct {
	now time.Time

	pending pendingQueue

	recorder AdvanceRecorder

	advancing bool
}

// NewSimulatedClock returns a new instance of SimulatedClock from struct of args
func NewSimulatedClock(args SimulatedClockArgs) *SimulatedClock {
	recorder := args.Recorder
	if recorder == nil {
		recorder = NopAdvanceRecorder{}
	}

	return &SimulatedClock{
		now:      args.StartAt,
		recorder: recorder,
	}
}

func (c *SimulatedClock) Now() time.Time {
	return c.now
}

// ScheduleAt enqueues action to fire when virtual time reaches at. A
// requested time at or before the current instant is clamped to now+1ns,
// so an action never fires at the instant it was scheduled from. When the
// requested time collides with an already pending item the newcomer is
// nudged forward until unique, which keeps same-instant requests firing in
// submission order. Returns the effective due time.
func (c *SimulatedClock) ScheduleAt(at time.Time, action Action) time.Time {
	if !at.After(c.now) {
		at = c.now.Add(tick)
	}

	return c.pending.insert(at, action)
}

// Schedule enqueues action for the nearest representable future instant,
// now+1ns.
func (c *SimulatedClock) Schedule(action Action) time.Time {
	return c.ScheduleAt(time.Time{}, action)
}

// ScheduleAsyncAt enqueues asynchronous work. The returned done channel is
// awaited when the item fires, so the advance loop still sees every action
// complete before the next one is considered.
func (c *SimulatedClock) ScheduleAsyncAt(at time.Time, action AsyncAction) time.Time {
	return c.ScheduleAt(at, func(ctx context.Context, clock *SimulatedClock) {
		<-action(ctx, clock)
	})
}

// ScheduleAsync is ScheduleAsyncAt without an explicit instant.
func (c *SimulatedClock) ScheduleAsync(action AsyncAction) time.Time {
	return c.ScheduleAsyncAt(time.Time{}, action)
}

// AdvanceTo moves virtual time forward to exactly target, firing every
// pending action whose due time falls within reach. Each fired action sees
// now set to its own due time and may schedule further work; items it adds
// with a due time still within target fire during this same call. Yields
// to the goroutine scheduler once at entry, then runs synchronously.
//
// Fails with ErrInvalidTimeTravel when target is not strictly after the
// current instant, and with ErrAdvanceInProgress when called from inside a
// firing action; in both cases the clock state is untouched.
func (c *SimulatedClock) AdvanceTo(ctx context.Context, target time.Time) error {
	runtime.Gosched()

	if !target.After(c.now) {
		return ErrInvalidTimeTravel
	}

	if c.advancing {
		return ErrAdvanceInProgress
	}

	c.advancing = true
	defer func() { c.advancing = false }()

	c.recorder.RecordAdvanceStart(ctx, c.now, target)

	for {
		head, ok := c.pending.peek()
		if !ok || head.due.After(target) {
			break
		}

		item := c.pending.pop()
		c.now = item.due
		item.action(ctx, c)
	}

	// Land on the requested instant even when the last fired item was
	// strictly before it.
	c.now = target

	c.recorder.RecordAdvanceDone(ctx, c.now)

	return nil
}

// AdvanceBy moves virtual time forward by duration. Same contract as
// AdvanceTo.
func (c *SimulatedClock) AdvanceBy(ctx context.Context, duration time.Duration) error {
	return c.AdvanceTo(ctx, c.now.Add(duration))
}

// TimeUntilNext returns how much virtual time separates now from the most
// imminent pending action, and false when nothing strictly future is
// pending. Entries at or behind now are skipped; the clamp in ScheduleAt
// prevents them, so the skip is purely defensive.
func (c *SimulatedClock) TimeUntilNext() (time.Duration, bool) {
	for _, item := range c.pending {
		if item.due.After(c.now) {
			return item.due.Sub(c.now), true
		}
	}

	return 0, false
}
