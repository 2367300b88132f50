package engine

import (
	"time"

	"multitimer/internal/core/model"
)

// EventType defines the kind of engine event.
type EventType string

const (
	// EventHalfway fires once per run when a timer first falls to or
	// below half its duration.
	EventHalfway EventType = "halfway"
	// EventCompleted fires at the tick where a running timer reaches
	// zero.
	EventCompleted EventType = "completed"
	// EventSnapshot signals that a tick or a dispatched action
	// committed a new snapshot.
	EventSnapshot EventType = "snapshot"
)

// Event represents an engine update for observers. Timer is set for
// halfway and completion events and zero for snapshot events.
type Event struct {
	Type  EventType
	Timer model.Timer
	At    time.Time
}
