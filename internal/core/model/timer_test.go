package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyStartFromEveryState(t *testing.T) {
	for _, status := range []Status{StatusIdle, StatusRunning, StatusPaused, StatusCompleted} {
		timer := Timer{Duration: 60, Remaining: 30, Status: status}
		assert.Equal(t, StatusRunning, timer.Apply(ActionStart).Status, "from %s", status)
	}
}

func TestApplyStartRearmsCompletedTimerAsIs(t *testing.T) {
	timer := Timer{Duration: 60, Remaining: 0, Status: StatusCompleted, HalfwayAlert: true, HalfwayTriggered: true}

	started := timer.Apply(ActionStart)
	assert.Equal(t, StatusRunning, started.Status)
	// start does not refill the countdown or clear the latch.
	assert.Equal(t, 0, started.Remaining)
	assert.True(t, started.HalfwayTriggered)
}

func TestApplyPauseFromEveryState(t *testing.T) {
	for _, status := range []Status{StatusIdle, StatusRunning, StatusPaused, StatusCompleted} {
		timer := Timer{Duration: 60, Remaining: 30, Status: status}
		paused := timer.Apply(ActionPause)
		assert.Equal(t, StatusPaused, paused.Status, "from %s", status)
		assert.Equal(t, 30, paused.Remaining)
	}
}

func TestApplyResetRestoresFullDuration(t *testing.T) {
	for _, status := range []Status{StatusIdle, StatusRunning, StatusPaused, StatusCompleted} {
		timer := Timer{Duration: 90, Remaining: 7, Status: status, HalfwayAlert: true, HalfwayTriggered: true}
		reset := timer.Apply(ActionReset)
		assert.Equal(t, StatusIdle, reset.Status, "from %s", status)
		assert.Equal(t, 90, reset.Remaining)
		assert.False(t, reset.HalfwayTriggered)
	}
}
