// Package clock provides the wall-clock abstraction and the live clock face.
// Code reads the time through the Clock interface so tests can pin it.
package clock

import "time"

// Clock is an interface for reading the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always returns the same instant.
type Fixed struct {
	Time time.Time
}

// Now returns the fixed time.
func (clock Fixed) Now() time.Time {
	return clock.Time
}

var (
	_ Clock = RealClock{}
	_ Clock = Fixed{}
)
