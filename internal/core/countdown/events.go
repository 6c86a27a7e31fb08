package countdown

import (
	"time"

	"digitime/internal/core/model"
)

// Phase represents the current countdown mode.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseExpired Phase = "expired"
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventModeChange  EventType = "mode_change"
	EventProgress    EventType = "progress"
	EventExpired     EventType = "expired"
)

// Event represents a countdown update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Mode      model.CountdownMode
	Remaining model.Ticks
	Progress  float64
	Status    string
	At        time.Time
}
