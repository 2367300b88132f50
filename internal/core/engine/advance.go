package engine

import (
	"time"

	"multitimer/internal/core/model"
)

// Advance moves every running timer one second forward and reports the
// alerts the pass produced. The input is never modified; the returned
// snapshot keeps the same length and order, with non-running timers
// passed through unchanged. changed reports whether any timer moved.
//
// Completion takes precedence over the halfway check: once a timer
// reaches zero on a tick, the halfway latch is left as it was.
func Advance(timers []model.Timer, now time.Time) (next []model.Timer, events []Event, changed bool) {
	next = make([]model.Timer, len(timers))
	for position, timer := range timers {
		if timer.Status != model.StatusRunning {
			next[position] = timer
			continue
		}
		changed = true

		remaining := timer.Remaining - 1
		switch {
		case remaining <= 0:
			timer.Remaining = 0
			timer.Status = model.StatusCompleted
			events = append(events, Event{Type: EventCompleted, Timer: timer, At: now})
		case timer.HalfwayAlert && !timer.HalfwayTriggered && remaining <= timer.Duration/2:
			timer.Remaining = remaining
			timer.HalfwayTriggered = true
			events = append(events, Event{Type: EventHalfway, Timer: timer, At: now})
		default:
			timer.Remaining = remaining
		}
		next[position] = timer
	}
	return next, events, changed
}
