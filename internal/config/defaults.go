package config

import (
	"time"

	"github.com/spf13/viper"

	"digitime/internal/core/model"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	presets := model.DefaultPresets()
	return &Config{
		Clock: ClockConfig{
			Format:   model.Hour24.String(),
			Style:    model.StyleClassic.String(),
			Interval: time.Second,
		},
		Stopwatch: StopwatchConfig{
			Interval: model.Centisecond,
		},
		Countdown: CountdownConfig{
			Interval:   time.Second,
			Focus:      presets.Focus,
			ShortBreak: presets.ShortBreak,
			LongBreak:  presets.LongBreak,
		},
		UI: UIConfig{
			View:              string(model.ViewClock),
			HideControlsAfter: 10 * time.Second,
			ExpiredPulse:      30 * time.Second,
		},
	}
}

// setDefaults registers DefaultConfig with viper.
// Keys must match the mapstructure tags.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("clock.format", defaults.Clock.Format)
	v.SetDefault("clock.style", defaults.Clock.Style)
	v.SetDefault("clock.interval", defaults.Clock.Interval.String())

	v.SetDefault("stopwatch.interval", defaults.Stopwatch.Interval.String())

	v.SetDefault("countdown.interval", defaults.Countdown.Interval.String())
	v.SetDefault("countdown.focus", defaults.Countdown.Focus.String())
	v.SetDefault("countdown.short_break", defaults.Countdown.ShortBreak.String())
	v.SetDefault("countdown.long_break", defaults.Countdown.LongBreak.String())

	v.SetDefault("ui.view", defaults.UI.View)
	v.SetDefault("ui.hide_controls_after", defaults.UI.HideControlsAfter.String())
	v.SetDefault("ui.expired_pulse", defaults.UI.ExpiredPulse.String())
}
