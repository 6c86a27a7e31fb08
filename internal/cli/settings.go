package cli

import (
	"github.com/rs/zerolog"

	"digitime/internal/config"
	"digitime/internal/core/clock"
	"digitime/internal/core/hub"
	"digitime/internal/core/model"
	"digitime/internal/storage"
)

// resolveSettings merges saved preferences over the configuration. Values
// given explicitly on the command line win over saved ones.
func resolveSettings(state *session, dir string) model.Settings {
	settings := state.cfg.Settings()
	if dir != "" {
		saved, err := storage.LoadSettings(dir, settings)
		if err != nil {
			state.logger.Warn().Err(err).Str("dir", dir).Msg("ignoring saved settings")
		} else {
			settings = saved
		}
	}

	if state.flags.Format != "" {
		settings.ClockFormat = state.cfg.ClockFormat()
	}
	if state.flags.Style != "" {
		settings.ClockStyle = state.cfg.ClockStyle()
	}
	if state.flags.View != "" {
		settings.View = state.cfg.View()
	}
	return settings
}

// settingsDir returns the directory holding saved preferences, or "" when
// none is available.
func settingsDir(logger zerolog.Logger) string {
	dir, err := config.Dir()
	if err != nil {
		logger.Warn().Err(err).Msg("config directory unavailable, preferences will not persist")
		return ""
	}
	return dir
}

// newHub builds the engines for settings. Presets are fixed for the
// lifetime of the hub.
func newHub(cfg *config.Config, settings model.Settings) *hub.Hub {
	return hub.New(hub.Config{
		Clock:   clock.RealClock{},
		Format:  settings.ClockFormat,
		Style:   settings.ClockStyle,
		Modes:   settings.Presets.Modes(),
		Sources: hub.IntervalSources(cfg.Clock.Interval, cfg.Stopwatch.Interval, cfg.Countdown.Interval),
	})
}

// saveSettings persists settings, logging failures.
func saveSettings(logger zerolog.Logger, dir string, settings model.Settings) {
	if dir == "" {
		return
	}
	if err := storage.SaveSettings(dir, settings); err != nil {
		logger.Error().Err(err).Msg("failed to save settings")
		return
	}
	logger.Debug().Str("path", storage.SettingsPath(dir)).Msg("settings saved")
}
