package model

// Status represents a timer's lifecycle state.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Action is a user request applied to one timer or a whole category.
type Action string

const (
	ActionStart Action = "start"
	ActionPause Action = "pause"
	ActionReset Action = "reset"
)

// Timer is the state of one countdown. Timers are value types; the
// engine replaces whole snapshots instead of mutating shared records.
type Timer struct {
	ID               string
	Name             string
	Category         string
	Duration         int // configured total, seconds
	Remaining        int // seconds left, 0..Duration
	Status           Status
	HalfwayAlert     bool // notify once at the halfway point
	HalfwayTriggered bool // latch, cleared only by reset
}

// Apply returns the timer after a user action. The policy is the same
// for every current state: start re-arms even a completed timer without
// refilling it, and reset is the only action that restores the full
// duration and clears the halfway latch.
func (timer Timer) Apply(action Action) Timer {
	switch action {
	case ActionStart:
		timer.Status = StatusRunning
	case ActionPause:
		timer.Status = StatusPaused
	case ActionReset:
		timer.Remaining = timer.Duration
		timer.Status = StatusIdle
		timer.HalfwayTriggered = false
	}
	return timer
}
