package history

import (
	"fmt"
	"sync"

	"multitimer/internal/core/model"
)

// Saver persists the full history list.
type Saver interface {
	SaveHistory(entries []model.HistoryEntry) error
}

// Recorder keeps the append-only completion log. RecordCompletion never
// blocks the caller: entries append in memory and a background writer
// persists the list, coalescing bursts last-write-wins so the durable
// copy is never written out of order.
type Recorder struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
	version uint64
	written uint64
	saver   Saver
	onError func(error)
	notify  chan struct{}
	stopCh  chan struct{}
	done    chan struct{}
	closed  bool
}

// NewRecorder creates a recorder seeded with previously persisted
// entries and starts its writer. saver and onError may be nil.
func NewRecorder(saver Saver, initial []model.HistoryEntry, onError func(error)) *Recorder {
	recorder := &Recorder{
		entries: append([]model.HistoryEntry(nil), initial...),
		saver:   saver,
		onError: onError,
		notify:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	go recorder.writeLoop()
	return recorder
}

// RecordCompletion appends one entry and schedules a save.
func (recorder *Recorder) RecordCompletion(entry model.HistoryEntry) {
	recorder.mu.Lock()
	recorder.entries = append(recorder.entries, entry)
	recorder.version++
	recorder.mu.Unlock()

	select {
	case recorder.notify <- struct{}{}:
	default:
	}
}

// Entries returns a copy of the log in append order.
func (recorder *Recorder) Entries() []model.HistoryEntry {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]model.HistoryEntry(nil), recorder.entries...)
}

// Close stops the writer after flushing any pending save.
func (recorder *Recorder) Close() {
	recorder.mu.Lock()
	if recorder.closed {
		recorder.mu.Unlock()
		return
	}
	recorder.closed = true
	recorder.mu.Unlock()

	close(recorder.stopCh)
	<-recorder.done
}

func (recorder *Recorder) writeLoop() {
	defer close(recorder.done)
	for {
		select {
		case <-recorder.stopCh:
			recorder.flush()
			return
		case <-recorder.notify:
			recorder.flush()
		}
	}
}

func (recorder *Recorder) flush() {
	recorder.mu.Lock()
	if recorder.saver == nil || recorder.written == recorder.version {
		recorder.mu.Unlock()
		return
	}
	version := recorder.version
	snapshot := append([]model.HistoryEntry(nil), recorder.entries...)
	recorder.mu.Unlock()

	if err := recorder.saver.SaveHistory(snapshot); err != nil && recorder.onError != nil {
		recorder.onError(fmt.Errorf("persist history: %w", err))
	}

	recorder.mu.Lock()
	if version > recorder.written {
		recorder.written = version
	}
	recorder.mu.Unlock()
}
