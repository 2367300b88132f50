package model

import "time"

// HistoryEntry records one countdown that ran to zero.
type HistoryEntry struct {
	TimerID     string
	Name        string
	Category    string
	CompletedAt time.Time
}
