package simclock

import (
	"time"

	"golang.org/x/exp/slices"
)

// tick is the smallest representable step of virtual time. Collision
// nudging and past-time clamping both move in tick increments.
const tick = time.Nanosecond

// pendingQueue keeps scheduled items sorted ascending by due time. Due
// times are unique: insert nudges a colliding newcomer forward tick by
// tick until it finds a free slot, which also gives same-instant requests
// FIFO firing order.
type pendingQueue []scheduledItem

func compareDue(it scheduledItem, due time.Time) int {
	return it.due.Compare(due)
}

// insert places action into the queue at the first free due slot at or
// after the requested instant and returns the due time it ended up with.
func (q *pendingQueue) insert(due time.Time, action Action) time.Time {
	for {
		idx, found := slices.BinarySearchFunc(*q, due, compareDue)
		if !found {
			*q = slices.Insert(*q, idx, scheduledItem{due: due, action: action})
			return due
		}
		due = due.Add(tick)
	}
}

func (q *pendingQueue) pop() scheduledItem {
	head := (*q)[0]
	*q = (*q)[1:]
	return head
}

func (q pendingQueue) peek() (scheduledItem, bool) {
	if len(q) == 0 {
		return scheduledItem{}, false
	}
	return q[0], true
}
