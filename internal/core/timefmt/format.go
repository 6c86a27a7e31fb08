// Package timefmt renders clock times and engine durations as fixed-width text.
package timefmt

import (
	"fmt"
	"time"

	"digitime/internal/core/model"
)

const (
	centisPerSecond = 100
	centisPerMinute = 60 * centisPerSecond
	centisPerHour   = 60 * centisPerMinute
)

// Clock renders now as HH:MM:SS, with an AM/PM suffix in 12-hour mode.
func Clock(now time.Time, format model.ClockFormat) string {
	hours, suffix := clockHours(now, format)
	return fmt.Sprintf("%02d:%02d:%02d%s", hours, now.Minute(), now.Second(), suffix)
}

// ClockShort renders now as HH:MM, with an AM/PM suffix in 12-hour mode.
func ClockShort(now time.Time, format model.ClockFormat) string {
	hours, suffix := clockHours(now, format)
	return fmt.Sprintf("%02d:%02d%s", hours, now.Minute(), suffix)
}

// Face renders now according to the clock style.
func Face(now time.Time, format model.ClockFormat, style model.ClockStyle) string {
	if style == model.StyleFocus {
		return ClockShort(now, format)
	}
	return Clock(now, format)
}

// Date renders now as "Monday, July 15".
func Date(now time.Time) string {
	return now.Format("Monday, January 2")
}

// Stopwatch renders centiseconds as HH:MM:SS,CC.
func Stopwatch(elapsed model.Ticks) string {
	if elapsed < 0 {
		elapsed = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d,%02d",
		elapsed/centisPerHour,
		(elapsed/centisPerMinute)%60,
		(elapsed/centisPerSecond)%60,
		elapsed%centisPerSecond,
	)
}

// Countdown renders seconds as MM:SS. Minutes are not capped at two digits.
func Countdown(remaining model.Ticks) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

func clockHours(now time.Time, format model.ClockFormat) (int, string) {
	hours := now.Hour()
	if format != model.Hour12 {
		return hours, ""
	}
	suffix := " AM"
	if hours >= 12 {
		suffix = " PM"
	}
	hours %= 12
	if hours == 0 {
		hours = 12
	}
	return hours, suffix
}
