package model

import "time"

// Ticks is a non-negative count of engine cadence units.
// The stopwatch counts centiseconds, the countdown and the clock count seconds.
type Ticks int64

// Centisecond is the stopwatch cadence.
const Centisecond = 10 * time.Millisecond

// SecondsOf converts a duration to whole seconds, truncating any remainder.
func SecondsOf(duration time.Duration) Ticks {
	if duration <= 0 {
		return 0
	}
	return Ticks(duration / time.Second)
}

// Duration converts a seconds count back to a time.Duration.
func (ticks Ticks) Duration() time.Duration {
	return time.Duration(ticks) * time.Second
}

// CountdownMode is one named countdown preset.
type CountdownMode struct {
	Key    string
	Name   string
	Label  string
	Preset Ticks
}

const (
	ModeFocus      = "focus"
	ModeShortBreak = "short_break"
	ModeLongBreak  = "long_break"
)

const (
	focusLabel = "Time to focus!"
	breakLabel = "Time for a break!"
)

// PresetConfig holds the durations of the three countdown presets.
type PresetConfig struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultPresets returns the classic pomodoro durations.
func DefaultPresets() PresetConfig {
	return PresetConfig{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// Modes converts the presets into the ordered countdown mode set.
func (presets PresetConfig) Modes() []CountdownMode {
	return []CountdownMode{
		{Key: ModeFocus, Name: "Pomodoro", Label: focusLabel, Preset: SecondsOf(presets.Focus)},
		{Key: ModeShortBreak, Name: "Short Break", Label: breakLabel, Preset: SecondsOf(presets.ShortBreak)},
		{Key: ModeLongBreak, Name: "Long Break", Label: breakLabel, Preset: SecondsOf(presets.LongBreak)},
	}
}

// DefaultModes returns Focus=1500s, ShortBreak=300s and LongBreak=900s.
func DefaultModes() []CountdownMode {
	return DefaultPresets().Modes()
}
