// Package config loads DigiTime configuration from defaults, a YAML file and
// DIGITIME_* environment variables.
package config

import (
	"time"

	"digitime/internal/core/model"
)

// Config is the root configuration.
type Config struct {
	Clock     ClockConfig     `mapstructure:"clock" yaml:"clock"`
	Stopwatch StopwatchConfig `mapstructure:"stopwatch" yaml:"stopwatch"`
	Countdown CountdownConfig `mapstructure:"countdown" yaml:"countdown"`
	UI        UIConfig        `mapstructure:"ui" yaml:"ui"`
}

// ClockConfig configures the live clock face.
type ClockConfig struct {
	// Format is "24h" or "12h".
	Format string `mapstructure:"format" yaml:"format"`
	// Style is "classic" (with seconds) or "focus" (without).
	Style    string        `mapstructure:"style" yaml:"style"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// StopwatchConfig configures the stopwatch cadence.
type StopwatchConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// CountdownConfig configures the countdown cadence and presets.
type CountdownConfig struct {
	Interval   time.Duration `mapstructure:"interval" yaml:"interval"`
	Focus      time.Duration `mapstructure:"focus" yaml:"focus"`
	ShortBreak time.Duration `mapstructure:"short_break" yaml:"short_break"`
	LongBreak  time.Duration `mapstructure:"long_break" yaml:"long_break"`
}

// UIConfig configures the presentation layers.
type UIConfig struct {
	View              string        `mapstructure:"view" yaml:"view"`
	HideControlsAfter time.Duration `mapstructure:"hide_controls_after" yaml:"hide_controls_after"`
	// ExpiredPulse is how long the compact window pulses after expiry. Zero disables it.
	ExpiredPulse      time.Duration `mapstructure:"expired_pulse" yaml:"expired_pulse"`
}

// Overrides holds command-line values that take precedence over every other source.
// Empty fields are ignored.
type Overrides struct {
	Format string
	Style  string
	View   string
}

// ClockFormat returns the parsed hour format. Invalid values fall back to 24h;
// Validate reports them.
func (cfg *Config) ClockFormat() model.ClockFormat {
	format, _ := model.ParseClockFormat(cfg.Clock.Format)
	return format
}

// ClockStyle returns the parsed clock style.
func (cfg *Config) ClockStyle() model.ClockStyle {
	style, _ := model.ParseClockStyle(cfg.Clock.Style)
	return style
}

// View returns the parsed initial view.
func (cfg *Config) View() model.View {
	view, _ := model.ParseView(cfg.UI.View)
	return view
}

// Presets returns the configured countdown presets.
func (cfg *Config) Presets() model.PresetConfig {
	return model.PresetConfig{
		Focus:      cfg.Countdown.Focus,
		ShortBreak: cfg.Countdown.ShortBreak,
		LongBreak:  cfg.Countdown.LongBreak,
	}
}

// Settings converts the configuration to the user preference defaults.
func (cfg *Config) Settings() model.Settings {
	return model.Settings{
		ClockFormat: cfg.ClockFormat(),
		ClockStyle:  cfg.ClockStyle(),
		View:        cfg.View(),
		Presets:     cfg.Presets(),
	}
}
