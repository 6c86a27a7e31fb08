package config

import (
	"fmt"
	"time"

	"digitime/internal/core/model"
	"digitime/internal/errors"
)

// Validate checks the configuration and returns the first failure, wrapped in
// errors.ErrInvalidConfig.
//
// Rules:
//   - clock.format is 24h or 12h, clock.style is classic or focus
//   - every interval is positive
//   - every countdown preset is a positive whole number of seconds
//   - ui.view names a known view and ui.hide_controls_after is not negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "config is nil")
	}
	if err := validateClock(&cfg.Clock); err != nil {
		return invalid(err)
	}
	if err := validateInterval("stopwatch.interval", cfg.Stopwatch.Interval); err != nil {
		return invalid(err)
	}
	if err := validateCountdown(&cfg.Countdown); err != nil {
		return invalid(err)
	}
	if err := validateUI(&cfg.UI); err != nil {
		return invalid(err)
	}
	return nil
}

// invalid marks err as a configuration failure while keeping its own sentinel.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
}

func validateClock(cfg *ClockConfig) error {
	if _, err := model.ParseClockFormat(cfg.Format); err != nil {
		return errors.Wrap(err, "clock.format")
	}
	if _, err := model.ParseClockStyle(cfg.Style); err != nil {
		return errors.Wrap(err, "clock.style")
	}
	return validateInterval("clock.interval", cfg.Interval)
}

func validateCountdown(cfg *CountdownConfig) error {
	if err := validateInterval("countdown.interval", cfg.Interval); err != nil {
		return err
	}
	presets := []struct {
		key   string
		value time.Duration
	}{
		{key: "countdown.focus", value: cfg.Focus},
		{key: "countdown.short_break", value: cfg.ShortBreak},
		{key: "countdown.long_break", value: cfg.LongBreak},
	}
	for _, preset := range presets {
		if preset.value < time.Second || preset.value%time.Second != 0 {
			return errors.Wrapf(errors.ErrInvalidPreset,
				"%s must be a positive whole number of seconds, got %s", preset.key, preset.value)
		}
	}
	return nil
}

func validateUI(cfg *UIConfig) error {
	if _, err := model.ParseView(cfg.View); err != nil {
		return errors.Wrap(err, "ui.view")
	}
	if cfg.HideControlsAfter < 0 {
		return errors.Wrapf(errors.ErrInvalidInterval,
			"ui.hide_controls_after must not be negative, got %s", cfg.HideControlsAfter)
	}
	if cfg.ExpiredPulse < 0 {
		return errors.Wrapf(errors.ErrInvalidInterval,
			"ui.expired_pulse must not be negative, got %s", cfg.ExpiredPulse)
	}
	return nil
}

func validateInterval(key string, value time.Duration) error {
	if value <= 0 {
		return errors.Wrapf(errors.ErrInvalidInterval, "%s must be positive, got %s", key, value)
	}
	return nil
}
