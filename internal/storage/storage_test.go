package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multitimer/internal/core/model"
)

const testAppName = "MultiTimerTest"

// The tests point os.UserConfigDir at a temp dir via XDG_CONFIG_HOME,
// so they are Linux-only, like the CI environment.
func setTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadTimersMissingFile(t *testing.T) {
	setTempConfigDir(t)

	timers, err := LoadTimers(testAppName)
	require.NoError(t, err)
	assert.Empty(t, timers)
}

func TestTimersRoundTrip(t *testing.T) {
	setTempConfigDir(t)

	timers := []model.Timer{
		{
			ID: "a", Name: "Pasta", Category: "Cooking",
			Duration: 600, Remaining: 480,
			Status: model.StatusRunning, HalfwayAlert: true, HalfwayTriggered: false,
		},
		{
			ID: "b", Name: "Essay", Category: "Study",
			Duration: 1800, Remaining: 0,
			Status: model.StatusCompleted, HalfwayAlert: true, HalfwayTriggered: true,
		},
	}
	require.NoError(t, SaveTimers(testAppName, timers))

	loaded, err := LoadTimers(testAppName)
	require.NoError(t, err)
	assert.Equal(t, timers, loaded)
}

func TestLoadTimersNormalizesBadRecords(t *testing.T) {
	configHome := setTempConfigDir(t)

	dir := filepath.Join(configHome, testAppName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	raw := []byte(`timers:
  - id: a
    name: Tea
    category: Kitchen
    duration_seconds: 60
    remaining_seconds: 120
    status: bogus
  - id: b
    name: Eggs
    category: Cooking
    duration_seconds: 300
    remaining_seconds: -4
    status: running
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "timers.yaml"), raw, 0o644))

	loaded, err := LoadTimers(testAppName)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, 60, loaded[0].Remaining)
	assert.Equal(t, model.StatusIdle, loaded[0].Status)

	assert.Equal(t, 0, loaded[1].Remaining)
	assert.Equal(t, model.StatusRunning, loaded[1].Status)
}

func TestHistoryRoundTrip(t *testing.T) {
	setTempConfigDir(t)

	completedAt := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	entries := []model.HistoryEntry{
		{TimerID: "a", Name: "Pasta", Category: "Cooking", CompletedAt: completedAt},
		{TimerID: "b", Name: "Essay", Category: "Study", CompletedAt: completedAt.Add(time.Hour)},
	}
	require.NoError(t, SaveHistory(testAppName, entries))

	loaded, err := LoadHistory(testAppName)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for position, entry := range entries {
		assert.Equal(t, entry.TimerID, loaded[position].TimerID)
		assert.Equal(t, entry.Name, loaded[position].Name)
		assert.Equal(t, entry.Category, loaded[position].Category)
		assert.True(t, entry.CompletedAt.Equal(loaded[position].CompletedAt))
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	setTempConfigDir(t)

	settings, err := LoadSettings(testAppName)
	require.NoError(t, err)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.Autostart)

	settings.Notifications = false
	settings.Autostart = true
	require.NoError(t, SaveSettings(testAppName, settings))

	loaded, err := LoadSettings(testAppName)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}
