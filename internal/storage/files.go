package storage

import "multitimer/internal/core/model"

// Files adapts the YAML files to the saver contracts consumed by the
// timer store and the history recorder.
type Files struct {
	AppName string
}

func (files Files) SaveTimers(timers []model.Timer) error {
	return SaveTimers(files.AppName, timers)
}

func (files Files) SaveHistory(entries []model.HistoryEntry) error {
	return SaveHistory(files.AppName, entries)
}
