package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"multitimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

const timersFileName = "timers.yaml"

type yamlTimer struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Category         string `yaml:"category"`
	DurationSeconds  int    `yaml:"duration_seconds"`
	RemainingSeconds int    `yaml:"remaining_seconds"`
	Status           string `yaml:"status"`
	HalfwayAlert     bool   `yaml:"halfway_alert"`
	HalfwayTriggered bool   `yaml:"halfway_triggered"`
}

type yamlTimerFile struct {
	Timers []yamlTimer `yaml:"timers"`
}

// LoadTimers reads the persisted timer list.
// If the file does not exist, an empty list is returned.
func LoadTimers(appName string) ([]model.Timer, error) {
	filePath, err := resolveDataPath(appName, timersFileName)
	if err != nil {
		return nil, err
	}

	rawData, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read timers file: %w", err)
	}

	var fileData yamlTimerFile
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse timers yaml: %w", err)
	}

	timers := make([]model.Timer, 0, len(fileData.Timers))
	for _, record := range fileData.Timers {
		timers = append(timers, normalizeTimer(record))
	}
	return timers, nil
}

// SaveTimers writes the full timer list.
func SaveTimers(appName string, timers []model.Timer) error {
	filePath, err := resolveDataPath(appName, timersFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlTimerFile{Timers: make([]yamlTimer, 0, len(timers))}
	for _, timer := range timers {
		fileData.Timers = append(fileData.Timers, yamlTimer{
			ID:               timer.ID,
			Name:             timer.Name,
			Category:         timer.Category,
			DurationSeconds:  timer.Duration,
			RemainingSeconds: timer.Remaining,
			Status:           string(timer.Status),
			HalfwayAlert:     timer.HalfwayAlert,
			HalfwayTriggered: timer.HalfwayTriggered,
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal timers yaml: %w", err)
	}

	if err := os.WriteFile(filePath, serialized, 0o644); err != nil {
		return fmt.Errorf("write timers file: %w", err)
	}

	return nil
}

// normalizeTimer repairs records that drifted outside the model's
// invariants while persisted: remaining is clamped into 0..duration and
// an unknown status falls back to idle.
func normalizeTimer(record yamlTimer) model.Timer {
	timer := model.Timer{
		ID:               record.ID,
		Name:             record.Name,
		Category:         record.Category,
		Duration:         record.DurationSeconds,
		Remaining:        record.RemainingSeconds,
		Status:           model.Status(record.Status),
		HalfwayAlert:     record.HalfwayAlert,
		HalfwayTriggered: record.HalfwayTriggered,
	}

	if timer.Remaining < 0 {
		timer.Remaining = 0
	}
	if timer.Remaining > timer.Duration {
		timer.Remaining = timer.Duration
	}

	switch timer.Status {
	case model.StatusIdle, model.StatusRunning, model.StatusPaused, model.StatusCompleted:
	default:
		timer.Status = model.StatusIdle
	}
	return timer
}

func resolveDataPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}
