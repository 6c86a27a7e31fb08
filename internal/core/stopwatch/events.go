package stopwatch

import (
	"time"

	"digitime/internal/core/laps"
	"digitime/internal/core/model"
)

// Phase represents the current stopwatch mode.
type Phase string

const (
	PhaseStopped Phase = "stopped"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
)

// EventType defines the type of stopwatch event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventLap         EventType = "lap"
	EventCleared     EventType = "cleared"
)

// Event represents a stopwatch update for observers.
type Event struct {
	Type    EventType
	Phase   Phase
	Elapsed model.Ticks
	Lap     laps.Lap
	At      time.Time
}
