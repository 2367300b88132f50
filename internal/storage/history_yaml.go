package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"multitimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

const historyFileName = "history.yaml"

type yamlHistoryEntry struct {
	TimerID     string    `yaml:"timer_id"`
	Name        string    `yaml:"name"`
	Category    string    `yaml:"category"`
	CompletedAt time.Time `yaml:"completed_at"`
}

type yamlHistoryFile struct {
	Entries []yamlHistoryEntry `yaml:"entries"`
}

// LoadHistory reads the persisted completion log in append order.
// If the file does not exist, an empty log is returned.
func LoadHistory(appName string) ([]model.HistoryEntry, error) {
	filePath, err := resolveDataPath(appName, historyFileName)
	if err != nil {
		return nil, err
	}

	rawData, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var fileData yamlHistoryFile
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse history yaml: %w", err)
	}

	entries := make([]model.HistoryEntry, 0, len(fileData.Entries))
	for _, record := range fileData.Entries {
		entries = append(entries, model.HistoryEntry{
			TimerID:     record.TimerID,
			Name:        record.Name,
			Category:    record.Category,
			CompletedAt: record.CompletedAt,
		})
	}
	return entries, nil
}

// SaveHistory writes the full completion log.
func SaveHistory(appName string, entries []model.HistoryEntry) error {
	filePath, err := resolveDataPath(appName, historyFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlHistoryFile{Entries: make([]yamlHistoryEntry, 0, len(entries))}
	for _, entry := range entries {
		fileData.Entries = append(fileData.Entries, yamlHistoryEntry{
			TimerID:     entry.TimerID,
			Name:        entry.Name,
			Category:    entry.Category,
			CompletedAt: entry.CompletedAt,
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal history yaml: %w", err)
	}

	if err := os.WriteFile(filePath, serialized, 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}

	return nil
}
