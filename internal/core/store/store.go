package store

import (
	"fmt"
	"sync"

	"multitimer/internal/core/model"

	"github.com/google/uuid"
)

// Saver persists a full timer snapshot. Implementations are called from
// the store's background writer, never from the caller's goroutine.
type Saver interface {
	SaveTimers(timers []model.Timer) error
}

// Store owns the authoritative ordered timer collection. All mutation
// replaces the snapshot as a whole; persistence runs on a background
// writer so a slow save never blocks a tick. Commits carry a monotonic
// version and the writer coalesces them last-write-wins, so snapshots
// are never persisted out of order.
type Store struct {
	mu      sync.Mutex
	timers  []model.Timer
	version uint64
	written uint64
	saver   Saver
	onError func(error)
	notify  chan struct{}
	stopCh  chan struct{}
	done    chan struct{}
	closed  bool
}

// New creates a store seeded with the given timers and starts its
// writer. saver and onError may be nil.
func New(saver Saver, initial []model.Timer, onError func(error)) *Store {
	store := &Store{
		timers:  cloneTimers(initial),
		saver:   saver,
		onError: onError,
		notify:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	go store.writeLoop()
	return store
}

// Create validates the spec, assigns an id and appends the new timer.
func (store *Store) Create(spec Spec) (model.Timer, error) {
	if err := spec.validate(); err != nil {
		return model.Timer{}, err
	}

	timer := model.Timer{
		ID:           uuid.NewString(),
		Name:         spec.Name,
		Category:     spec.Category,
		Duration:     spec.Duration,
		Remaining:    spec.Duration,
		Status:       model.StatusIdle,
		HalfwayAlert: spec.HalfwayAlert,
	}

	store.mu.Lock()
	store.timers = append(store.timers, timer)
	store.version++
	store.mu.Unlock()

	store.requestWrite()
	return timer, nil
}

// ReplaceAll commits a fully recomputed snapshot.
func (store *Store) ReplaceAll(timers []model.Timer) {
	store.mu.Lock()
	store.timers = cloneTimers(timers)
	store.version++
	store.mu.Unlock()

	store.requestWrite()
}

// Snapshot returns an ordered copy of the current collection.
func (store *Store) Snapshot() []model.Timer {
	store.mu.Lock()
	defer store.mu.Unlock()
	return cloneTimers(store.timers)
}

// Close stops the writer after flushing any pending commit.
func (store *Store) Close() {
	store.mu.Lock()
	if store.closed {
		store.mu.Unlock()
		return
	}
	store.closed = true
	store.mu.Unlock()

	close(store.stopCh)
	<-store.done
}

func (store *Store) requestWrite() {
	select {
	case store.notify <- struct{}{}:
	default:
	}
}

func (store *Store) writeLoop() {
	defer close(store.done)
	for {
		select {
		case <-store.stopCh:
			store.flush()
			return
		case <-store.notify:
			store.flush()
		}
	}
}

func (store *Store) flush() {
	store.mu.Lock()
	if store.saver == nil || store.written == store.version {
		store.mu.Unlock()
		return
	}
	version := store.version
	snapshot := cloneTimers(store.timers)
	store.mu.Unlock()

	if err := store.saver.SaveTimers(snapshot); err != nil && store.onError != nil {
		store.onError(fmt.Errorf("persist timers: %w", err))
	}

	// A failed write is not retried for the same version; the next
	// commit schedules a fresh write carrying the latest snapshot.
	store.mu.Lock()
	if version > store.written {
		store.written = version
	}
	store.mu.Unlock()
}

func cloneTimers(timers []model.Timer) []model.Timer {
	return append([]model.Timer(nil), timers...)
}
