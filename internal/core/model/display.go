package model

import (
	"fmt"
	"strings"

	"digitime/internal/errors"
)

// ClockFormat selects 24-hour or 12-hour rendering.
type ClockFormat int

const (
	Hour24 ClockFormat = iota
	Hour12
)

// String returns the config spelling of the format.
func (format ClockFormat) String() string {
	if format == Hour12 {
		return "12h"
	}
	return "24h"
}

// Toggled returns the other format.
func (format ClockFormat) Toggled() ClockFormat {
	if format == Hour12 {
		return Hour24
	}
	return Hour12
}

// ParseClockFormat parses "24h" or "12h".
func ParseClockFormat(value string) (ClockFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "24h", "24":
		return Hour24, nil
	case "12h", "12":
		return Hour12, nil
	}
	return Hour24, fmt.Errorf("%w: %q", errors.ErrInvalidClockFormat, value)
}

// ClockStyle selects the clock face.
type ClockStyle int

const (
	StyleClassic ClockStyle = iota
	StyleFocus
)

// ClockStyles lists the faces in cycling order.
var ClockStyles = []ClockStyle{StyleClassic, StyleFocus}

// String returns the config spelling of the style.
func (style ClockStyle) String() string {
	if style == StyleFocus {
		return "focus"
	}
	return "classic"
}

// Title returns the display name of the style.
func (style ClockStyle) Title() string {
	if style == StyleFocus {
		return "Focus"
	}
	return "Classic"
}

// ParseClockStyle parses "classic" or "focus".
func ParseClockStyle(value string) (ClockStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "classic":
		return StyleClassic, nil
	case "focus":
		return StyleFocus, nil
	}
	return StyleClassic, fmt.Errorf("%w: %q", errors.ErrInvalidClockStyle, value)
}

// View is the active display surface.
type View string

const (
	ViewClock     View = "clock"
	ViewStopwatch View = "stopwatch"
	ViewPomodoro  View = "pomodoro"
)

// Views lists the display surfaces in navigation order.
var Views = []View{ViewClock, ViewStopwatch, ViewPomodoro}

// ParseView validates a view name.
func ParseView(value string) (View, error) {
	view := View(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Views {
		if view == known {
			return view, nil
		}
	}
	return ViewClock, fmt.Errorf("%w: %q", errors.ErrInvalidView, value)
}

// Cycle returns the element index+step positions away, wrapping in both directions.
func Cycle(index, step, size int) int {
	if size <= 0 {
		return 0
	}
	return ((index+step)%size + size) % size
}
