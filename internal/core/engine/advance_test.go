package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multitimer/internal/core/model"
)

func runningTimer(duration int, halfwayAlert bool) model.Timer {
	return model.Timer{
		ID:           "t1",
		Name:         "Pasta",
		Category:     "Cooking",
		Duration:     duration,
		Remaining:    duration,
		Status:       model.StatusRunning,
		HalfwayAlert: halfwayAlert,
	}
}

func TestAdvanceFullCountdown(t *testing.T) {
	now := time.Now()
	timers := []model.Timer{runningTimer(10, true)}

	halfwayTicks := []int{}
	completedTicks := []int{}
	for tick := 1; tick <= 10; tick++ {
		next, events, changed := Advance(timers, now)
		timers = next
		assert.True(t, changed)
		for _, event := range events {
			switch event.Type {
			case EventHalfway:
				halfwayTicks = append(halfwayTicks, tick)
				assert.Equal(t, 5, event.Timer.Remaining)
			case EventCompleted:
				completedTicks = append(completedTicks, tick)
				assert.Equal(t, 0, event.Timer.Remaining)
			}
		}

		timer := timers[0]
		require.GreaterOrEqual(t, timer.Remaining, 0)
		require.LessOrEqual(t, timer.Remaining, timer.Duration)
		if tick < 10 {
			assert.Equal(t, 10-tick, timer.Remaining)
			assert.Equal(t, model.StatusRunning, timer.Status)
		}
	}

	assert.Equal(t, []int{5}, halfwayTicks)
	assert.Equal(t, []int{10}, completedTicks)
	assert.Equal(t, model.StatusCompleted, timers[0].Status)
	assert.Equal(t, 0, timers[0].Remaining)
	assert.True(t, timers[0].HalfwayTriggered)
}

func TestAdvanceOddDurationHalfPoint(t *testing.T) {
	now := time.Now()
	timers := []model.Timer{runningTimer(5, true)}

	// 5/2 == 2, so the alert fires on the third tick.
	for tick := 1; tick <= 3; tick++ {
		next, events, _ := Advance(timers, now)
		timers = next
		if tick < 3 {
			assert.Empty(t, events)
			continue
		}
		require.Len(t, events, 1)
		assert.Equal(t, EventHalfway, events[0].Type)
		assert.Equal(t, 2, events[0].Timer.Remaining)
	}
}

func TestAdvanceHalfwayFiresOncePerRun(t *testing.T) {
	now := time.Now()
	timer := runningTimer(10, true)
	timer.Remaining = 5
	timer.HalfwayTriggered = true

	next, events, _ := Advance([]model.Timer{timer}, now)
	assert.Empty(t, events)
	assert.Equal(t, 4, next[0].Remaining)
}

func TestAdvanceHalfwayRequiresAlertEnabled(t *testing.T) {
	now := time.Now()
	timers := []model.Timer{runningTimer(4, false)}

	for tick := 0; tick < 3; tick++ {
		next, events, _ := Advance(timers, now)
		timers = next
		assert.Empty(t, events)
	}
	assert.Equal(t, 1, timers[0].Remaining)
	assert.False(t, timers[0].HalfwayTriggered)
}

func TestAdvanceCompletionBeatsHalfway(t *testing.T) {
	now := time.Now()
	timer := runningTimer(2, true)
	timer.Remaining = 1

	next, events, _ := Advance([]model.Timer{timer}, now)
	require.Len(t, events, 1)
	assert.Equal(t, EventCompleted, events[0].Type)
	assert.Equal(t, model.StatusCompleted, next[0].Status)
	// The halfway latch stays untouched once the timer finishes.
	assert.False(t, next[0].HalfwayTriggered)
}

func TestAdvanceLeavesNonRunningUntouched(t *testing.T) {
	now := time.Now()
	idle := model.Timer{ID: "a", Name: "Idle", Category: "X", Duration: 30, Remaining: 30, Status: model.StatusIdle}
	paused := model.Timer{ID: "b", Name: "Paused", Category: "X", Duration: 30, Remaining: 12, Status: model.StatusPaused}
	completed := model.Timer{ID: "c", Name: "Done", Category: "X", Duration: 30, Remaining: 0, Status: model.StatusCompleted}

	next, events, changed := Advance([]model.Timer{idle, paused, completed}, now)
	assert.False(t, changed)
	assert.Empty(t, events)
	assert.Equal(t, []model.Timer{idle, paused, completed}, next)
}

func TestAdvanceKeepsSnapshotOrder(t *testing.T) {
	now := time.Now()
	first := runningTimer(10, false)
	second := model.Timer{ID: "t2", Name: "Rice", Category: "Cooking", Duration: 20, Remaining: 20, Status: model.StatusIdle}
	third := runningTimer(8, false)
	third.ID = "t3"

	next, _, changed := Advance([]model.Timer{first, second, third}, now)
	assert.True(t, changed)
	require.Len(t, next, 3)
	assert.Equal(t, "t1", next[0].ID)
	assert.Equal(t, "t2", next[1].ID)
	assert.Equal(t, "t3", next[2].ID)
	assert.Equal(t, second, next[1])
}
