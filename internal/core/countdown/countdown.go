// Package countdown implements the preset countdown engine behind the Pomodoro view.
package countdown

import (
	"sync"
	"time"

	"digitime/internal/core/model"
	"digitime/internal/core/timefmt"
)

// Interval is the countdown cadence: one tick per second.
const Interval = time.Second

// ExpiredStatus is the status text once the countdown has run out.
const ExpiredStatus = "Time's up!"

// Snapshot is a consistent copy of the countdown for presentation.
type Snapshot struct {
	State     State
	Phase     Phase
	Mode      model.CountdownMode
	ModeIndex int
	Status    string
	Progress  float64
}

// Countdown is a state machine that counts a preset down to zero.
type Countdown struct {
	mu        sync.Mutex
	modes     []model.CountdownMode
	modeIndex int
	state     State
	events    []chan Event
	closed    bool
}

// New creates an idle countdown on the first mode. An empty mode set falls
// back to the default presets.
func New(modes []model.CountdownMode) *Countdown {
	if len(modes) == 0 {
		modes = model.DefaultModes()
	}
	countdown := &Countdown{
		modes: append([]model.CountdownMode(nil), modes...),
	}
	countdown.state = initialState(countdown.modes[0])
	return countdown
}

// Modes returns the ordered mode set.
func (countdown *Countdown) Modes() []model.CountdownMode {
	return append([]model.CountdownMode(nil), countdown.modes...)
}

// Subscribe registers a new observer channel.
func (countdown *Countdown) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	if countdown.closed {
		close(ch)
		return ch
	}
	countdown.events = append(countdown.events, ch)
	return ch
}

// Start begins or resumes the countdown. An expired countdown does not
// restart; call Reset or SetMode first.
func (countdown *Countdown) Start() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	countdown.startLocked()
}

// Stop pauses the countdown, keeping the remaining time.
func (countdown *Countdown) Stop() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	countdown.stopLocked()
}

// Toggle starts a stopped countdown and stops a running one.
func (countdown *Countdown) Toggle() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	if countdown.state.Running {
		countdown.stopLocked()
		return
	}
	countdown.startLocked()
}

// Tick removes one second while running. Reaching zero expires the countdown
// and notifies observers once.
func (countdown *Countdown) Tick() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	if !countdown.state.Running {
		return
	}
	countdown.state = countdown.state.advanced()
	if countdown.state.Expired() {
		countdown.emitLocked(countdown.eventLocked(EventExpired))
		return
	}
	countdown.emitLocked(countdown.eventLocked(EventProgress))
}

// Reset restores the active preset and stops the countdown.
func (countdown *Countdown) Reset() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	countdown.resetLocked()
	countdown.emitLocked(countdown.eventLocked(EventStateChange))
}

// SetMode stops the countdown, switches to the mode at index and resets it.
// Out-of-range indexes wrap around the mode set.
func (countdown *Countdown) SetMode(index int) {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	countdown.setModeLocked(model.Cycle(index, 0, len(countdown.modes)))
}

// SetModeByKey switches to the mode with the given key. It reports whether the key exists.
func (countdown *Countdown) SetModeByKey(key string) bool {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	for index, mode := range countdown.modes {
		if mode.Key == key {
			countdown.setModeLocked(index)
			return true
		}
	}
	return false
}

// NextMode switches to the following mode, wrapping after the last one.
func (countdown *Countdown) NextMode() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	countdown.setModeLocked(model.Cycle(countdown.modeIndex, 1, len(countdown.modes)))
}

// PreviousMode switches to the preceding mode, wrapping before the first one.
func (countdown *Countdown) PreviousMode() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	countdown.setModeLocked(model.Cycle(countdown.modeIndex, -1, len(countdown.modes)))
}

// StatusText derives the title text for the current state.
func (countdown *Countdown) StatusText() string {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.statusLocked()
}

// State returns the current timer state.
func (countdown *Countdown) State() State {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.state
}

// Mode returns the active mode.
func (countdown *Countdown) Mode() model.CountdownMode {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.modes[countdown.modeIndex]
}

// Snapshot returns the timer state with its mode and derived text.
func (countdown *Countdown) Snapshot() Snapshot {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	mode := countdown.modes[countdown.modeIndex]
	return Snapshot{
		State:     countdown.state,
		Phase:     countdown.state.Phase(mode.Preset),
		Mode:      mode,
		ModeIndex: countdown.modeIndex,
		Status:    countdown.statusLocked(),
		Progress:  countdown.progressLocked(),
	}
}

// Close stops the countdown and closes every observer channel.
func (countdown *Countdown) Close() {
	countdown.mu.Lock()
	if countdown.closed {
		countdown.mu.Unlock()
		return
	}
	countdown.closed = true
	countdown.state = countdown.state.stopped()
	events := countdown.events
	countdown.events = nil
	countdown.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (countdown *Countdown) startLocked() {
	if countdown.state.Running || countdown.state.Expired() {
		return
	}
	countdown.state = countdown.state.started()
	countdown.emitLocked(countdown.eventLocked(EventStateChange))
}

func (countdown *Countdown) stopLocked() {
	if !countdown.state.Running {
		return
	}
	countdown.state = countdown.state.stopped()
	countdown.emitLocked(countdown.eventLocked(EventStateChange))
}

func (countdown *Countdown) setModeLocked(index int) {
	countdown.state = countdown.state.stopped()
	countdown.modeIndex = index
	countdown.resetLocked()
	countdown.emitLocked(countdown.eventLocked(EventModeChange))
}

func (countdown *Countdown) resetLocked() {
	countdown.state = initialState(countdown.modes[countdown.modeIndex])
}

func (countdown *Countdown) statusLocked() string {
	if countdown.state.Expired() {
		return ExpiredStatus
	}
	mode := countdown.modes[countdown.modeIndex]
	return timefmt.Countdown(countdown.state.Remaining) + " - " + mode.Label
}

func (countdown *Countdown) progressLocked() float64 {
	total := countdown.modes[countdown.modeIndex].Preset
	if total <= 0 {
		return 1
	}
	progress := float64(total-countdown.state.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (countdown *Countdown) eventLocked(eventType EventType) Event {
	mode := countdown.modes[countdown.modeIndex]
	return Event{
		Type:      eventType,
		Phase:     countdown.state.Phase(mode.Preset),
		Mode:      mode,
		Remaining: countdown.state.Remaining,
		Progress:  countdown.progressLocked(),
		Status:    countdown.statusLocked(),
		At:        time.Now(),
	}
}

func (countdown *Countdown) emitLocked(event Event) {
	for _, ch := range countdown.events {
		select {
		case ch <- event:
		default:
		}
	}
}
