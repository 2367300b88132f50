package engine

import (
	"sync"
	"time"

	"multitimer/internal/core/model"
	"multitimer/internal/core/store"
)

// Recorder receives completion records. Implementations must not block;
// the engine never waits on a recorder to decide that a timer is done.
type Recorder interface {
	RecordCompletion(entry model.HistoryEntry)
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Engine drives the periodic tick and applies user actions. Ticks,
// dispatched actions and timer creation share one commit path guarded
// by a single mutex: read the whole snapshot, compute the whole next
// snapshot, commit it through the store. An action dispatched during a
// tick therefore observes either the pre-tick or post-tick snapshot,
// never a mix.
type Engine struct {
	mu       sync.Mutex
	store    *store.Store
	options  Config
	recorder Recorder
	events   []chan Event
	stopCh   chan struct{}
	running  bool
}

// New creates an Engine over the given store.
func New(timerStore *store.Store, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Engine{
		store:   timerStore,
		options: options,
		stopCh:  make(chan struct{}),
	}
}

// SetRecorder injects the completion recorder.
func (engine *Engine) SetRecorder(recorder Recorder) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.recorder = recorder
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.running {
		engine.mu.Unlock()
		return
	}
	engine.running = true
	engine.mu.Unlock()

	go engine.run()
}

// Stop terminates the ticking loop and closes observers.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	close(engine.stopCh)
	engine.running = false
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// CreateTimer validates the spec and adds the timer through the shared
// commit path, so an append can never race a snapshot replacement.
func (engine *Engine) CreateTimer(spec store.Spec) (model.Timer, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	timer, err := engine.store.Create(spec)
	if err != nil {
		return model.Timer{}, err
	}
	engine.emitLocked(Event{Type: EventSnapshot, At: time.Now()})
	return timer, nil
}

// Dispatch applies an action to the timer with the given id.
func (engine *Engine) Dispatch(action model.Action, timerID string) {
	engine.commit(func(timer model.Timer) bool { return timer.ID == timerID }, action)
}

// DispatchCategory applies an action to every timer in the category;
// timers outside it are carried into the new snapshot untouched.
func (engine *Engine) DispatchCategory(action model.Action, category string) {
	engine.commit(func(timer model.Timer) bool { return timer.Category == category }, action)
}

func (engine *Engine) commit(targeted func(model.Timer) bool, action model.Action) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	snapshot := engine.store.Snapshot()
	next := make([]model.Timer, len(snapshot))
	for position, timer := range snapshot {
		if targeted(timer) {
			timer = timer.Apply(action)
		}
		next[position] = timer
	}
	engine.store.ReplaceAll(next)
	engine.emitLocked(Event{Type: EventSnapshot, At: time.Now()})
}

func (engine *Engine) run() {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-engine.stopCh:
			return
		case tickTime := <-ticker.C:
			engine.tick(tickTime)
		}
	}
}

func (engine *Engine) tick(tickTime time.Time) {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}

	snapshot := engine.store.Snapshot()
	next, events, changed := Advance(snapshot, tickTime)
	if !changed {
		engine.mu.Unlock()
		return
	}
	engine.store.ReplaceAll(next)

	recorder := engine.recorder
	for _, event := range events {
		if event.Type == EventCompleted && recorder != nil {
			recorder.RecordCompletion(model.HistoryEntry{
				TimerID:     event.Timer.ID,
				Name:        event.Timer.Name,
				Category:    event.Timer.Category,
				CompletedAt: event.At,
			})
		}
		engine.emitLocked(event)
	}
	engine.emitLocked(Event{Type: EventSnapshot, At: tickTime})
	engine.mu.Unlock()
}

func (engine *Engine) emitLocked(event Event) {
	events := append([]chan Event(nil), engine.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
