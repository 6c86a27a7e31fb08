package clock

import (
	"sync"
	"time"

	"digitime/internal/core/model"
	"digitime/internal/core/timefmt"
)

// Interval is the live clock cadence.
const Interval = time.Second

// Event carries a freshly rendered clock face.
type Event struct {
	Text   string
	Date   string
	Format model.ClockFormat
	Style  model.ClockStyle
	At     time.Time
}

// Face renders the current time in the selected format and style.
type Face struct {
	mu     sync.Mutex
	clock  Clock
	format model.ClockFormat
	style  model.ClockStyle
	events []chan Event
	closed bool
}

// NewFace creates a clock face. A nil clock reads the system time.
func NewFace(clock Clock, format model.ClockFormat, style model.ClockStyle) *Face {
	if clock == nil {
		clock = RealClock{}
	}
	return &Face{clock: clock, format: format, style: style}
}

// Subscribe registers a new observer channel.
func (face *Face) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	face.mu.Lock()
	defer face.mu.Unlock()
	if face.closed {
		close(ch)
		return ch
	}
	face.events = append(face.events, ch)
	return ch
}

// Format returns the hour format.
func (face *Face) Format() model.ClockFormat {
	face.mu.Lock()
	defer face.mu.Unlock()
	return face.format
}

// SetFormat changes the hour format and re-renders.
func (face *Face) SetFormat(format model.ClockFormat) {
	face.mu.Lock()
	defer face.mu.Unlock()
	face.format = format
	face.emitLocked(face.eventLocked(face.clock.Now()))
}

// ToggleFormat switches between 24-hour and 12-hour rendering.
func (face *Face) ToggleFormat() {
	face.mu.Lock()
	defer face.mu.Unlock()
	face.format = face.format.Toggled()
	face.emitLocked(face.eventLocked(face.clock.Now()))
}

// Style returns the face style.
func (face *Face) Style() model.ClockStyle {
	face.mu.Lock()
	defer face.mu.Unlock()
	return face.style
}

// SetStyle changes the face style and re-renders.
func (face *Face) SetStyle(style model.ClockStyle) {
	face.mu.Lock()
	defer face.mu.Unlock()
	face.style = style
	face.emitLocked(face.eventLocked(face.clock.Now()))
}

// NextStyle moves to the following style, wrapping after the last.
func (face *Face) NextStyle() {
	face.cycleStyle(1)
}

// PreviousStyle moves to the preceding style, wrapping before the first.
func (face *Face) PreviousStyle() {
	face.cycleStyle(-1)
}

// Render returns the current time as displayed by the face.
func (face *Face) Render() Event {
	face.mu.Lock()
	defer face.mu.Unlock()
	return face.eventLocked(face.clock.Now())
}

// Tick renders the face for at and notifies observers.
func (face *Face) Tick(at time.Time) {
	face.mu.Lock()
	defer face.mu.Unlock()
	face.emitLocked(face.eventLocked(at))
}

// Close closes every observer channel.
func (face *Face) Close() {
	face.mu.Lock()
	if face.closed {
		face.mu.Unlock()
		return
	}
	face.closed = true
	events := face.events
	face.events = nil
	face.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (face *Face) cycleStyle(step int) {
	face.mu.Lock()
	defer face.mu.Unlock()
	index := 0
	for i, style := range model.ClockStyles {
		if style == face.style {
			index = i
		}
	}
	face.style = model.ClockStyles[model.Cycle(index, step, len(model.ClockStyles))]
	face.emitLocked(face.eventLocked(face.clock.Now()))
}

func (face *Face) eventLocked(at time.Time) Event {
	return Event{
		Text:   timefmt.Face(at, face.format, face.style),
		Date:   timefmt.Date(at),
		Format: face.format,
		Style:  face.style,
		At:     at,
	}
}

func (face *Face) emitLocked(event Event) {
	for _, ch := range face.events {
		select {
		case ch <- event:
		default:
		}
	}
}
