// Package stopwatch implements the elapsed-time engine with lap capture.
package stopwatch

import (
	"sync"
	"time"

	"digitime/internal/core/laps"
	"digitime/internal/core/model"
)

// Interval is the stopwatch cadence: one tick per centisecond.
const Interval = model.Centisecond

// Snapshot is a consistent copy of the stopwatch for presentation.
type Snapshot struct {
	State   State
	Phase   Phase
	Laps    []laps.Lap
	Fastest laps.Lap
	Slowest laps.Lap
	Ranked  bool
}

// Stopwatch is a state machine that counts centiseconds while running.
type Stopwatch struct {
	mu     sync.Mutex
	state  State
	laps   laps.Recorder
	events []chan Event
	closed bool
}

// New creates a stopped stopwatch.
func New() *Stopwatch {
	return &Stopwatch{}
}

// Subscribe registers a new observer channel.
func (watch *Stopwatch) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.closed {
		close(ch)
		return ch
	}
	watch.events = append(watch.events, ch)
	return ch
}

// Start begins or resumes counting. No-op if already running.
func (watch *Stopwatch) Start() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.state.Running {
		return
	}
	watch.state = watch.state.started()
	watch.emitStateLocked()
}

// Stop pauses counting. No-op if not running.
func (watch *Stopwatch) Stop() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if !watch.state.Running {
		return
	}
	watch.state = watch.state.stopped()
	watch.emitStateLocked()
}

// Toggle starts a stopped stopwatch and stops a running one.
func (watch *Stopwatch) Toggle() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.state.Running {
		watch.state = watch.state.stopped()
	} else {
		watch.state = watch.state.started()
	}
	watch.emitStateLocked()
}

// Tick advances the stopwatch by one centisecond. Ticks while not running are dropped.
func (watch *Stopwatch) Tick() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if !watch.state.Running {
		return
	}
	watch.state = watch.state.advanced()
	watch.emitLocked(Event{
		Type:    EventTick,
		Phase:   PhaseRunning,
		Elapsed: watch.state.Elapsed,
		At:      time.Now(),
	})
}

// LapOrReset captures a lap while running and clears everything otherwise.
func (watch *Stopwatch) LapOrReset() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.state.Running {
		watch.captureLapLocked()
		return
	}
	watch.clearAllLocked()
}

// CaptureLap records the current elapsed time as a lap without touching the
// timer. It only records while running and reports whether a lap was taken.
func (watch *Stopwatch) CaptureLap() (laps.Lap, bool) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if !watch.state.Running {
		return laps.Lap{}, false
	}
	return watch.captureLapLocked(), true
}

// ClearAll returns a stopped or paused stopwatch to its initial state and
// drops every lap. It is a no-op while running and reports whether it cleared.
func (watch *Stopwatch) ClearAll() bool {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.state.Running {
		return false
	}
	watch.clearAllLocked()
	return true
}

// State returns the current timer state.
func (watch *Stopwatch) State() State {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.state
}

// Snapshot returns the timer state together with the lap log and its ranking.
func (watch *Stopwatch) Snapshot() Snapshot {
	watch.mu.Lock()
	defer watch.mu.Unlock()

	snapshot := Snapshot{
		State: watch.state,
		Phase: watch.state.Phase(),
		Laps:  watch.laps.Laps(),
	}
	fastest, ok := watch.laps.Fastest()
	if ok {
		slowest, _ := watch.laps.Slowest()
		snapshot.Fastest = fastest
		snapshot.Slowest = slowest
		snapshot.Ranked = true
	}
	return snapshot
}

// Close stops the stopwatch and closes every observer channel.
func (watch *Stopwatch) Close() {
	watch.mu.Lock()
	if watch.closed {
		watch.mu.Unlock()
		return
	}
	watch.closed = true
	watch.state = watch.state.stopped()
	events := watch.events
	watch.events = nil
	watch.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (watch *Stopwatch) captureLapLocked() laps.Lap {
	lap := watch.laps.Append(watch.state.Elapsed)
	watch.emitLocked(Event{
		Type:    EventLap,
		Phase:   watch.state.Phase(),
		Elapsed: watch.state.Elapsed,
		Lap:     lap,
		At:      time.Now(),
	})
	return lap
}

func (watch *Stopwatch) clearAllLocked() {
	watch.state = watch.state.cleared()
	watch.laps.Clear()
	watch.emitLocked(Event{
		Type:  EventCleared,
		Phase: PhaseStopped,
		At:    time.Now(),
	})
}

func (watch *Stopwatch) emitStateLocked() {
	watch.emitLocked(Event{
		Type:    EventStateChange,
		Phase:   watch.state.Phase(),
		Elapsed: watch.state.Elapsed,
		At:      time.Now(),
	})
}

func (watch *Stopwatch) emitLocked(event Event) {
	for _, ch := range watch.events {
		select {
		case ch <- event:
		default:
		}
	}
}
