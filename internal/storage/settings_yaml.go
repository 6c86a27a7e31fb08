// Package storage persists user preferences between runs.
package storage

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"digitime/internal/core/model"
	"digitime/internal/errors"
)

const (
	settingsFileName = "settings.yaml"
	settingsLockName = "settings.yaml.lock"
)

type yamlSettings struct {
	ClockFormat       string `yaml:"clock_format,omitempty"`
	ClockStyle        string `yaml:"clock_style,omitempty"`
	View              string `yaml:"view,omitempty"`
	FocusSeconds      int64  `yaml:"focus_seconds,omitempty"`
	ShortBreakSeconds int64  `yaml:"short_break_seconds,omitempty"`
	LongBreakSeconds  int64  `yaml:"long_break_seconds,omitempty"`
}

// SettingsPath returns the settings file inside dir.
func SettingsPath(dir string) string {
	return filepath.Join(dir, settingsFileName)
}

// LoadSettings reads user preferences from dir, starting from defaults.
// If the settings file does not exist, defaults are returned unchanged.
// Unknown or out-of-range values keep the corresponding default.
func LoadSettings(dir string, defaults model.Settings) (model.Settings, error) {
	settings := defaults

	rawData, err := os.ReadFile(SettingsPath(dir))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, errors.Wrap(err, "read settings file")
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, errors.Wrap(err, "parse settings yaml")
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to dir while holding a file lock.
func SaveSettings(dir string, settings model.Settings) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	lock := flock.New(filepath.Join(dir, settingsLockName))
	if err := lock.Lock(); err != nil {
		return errors.Wrap(err, "lock settings file")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	fileData := yamlSettings{
		ClockFormat:       settings.ClockFormat.String(),
		ClockStyle:        settings.ClockStyle.String(),
		View:              string(settings.View),
		FocusSeconds:      int64(settings.Presets.Focus / time.Second),
		ShortBreakSeconds: int64(settings.Presets.ShortBreak / time.Second),
		LongBreakSeconds:  int64(settings.Presets.LongBreak / time.Second),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return errors.Wrap(err, "marshal settings yaml")
	}

	// Write to a sibling file and rename so readers never see a partial file.
	tmpPath := SettingsPath(dir) + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o600); err != nil {
		return errors.Wrap(err, "write settings file")
	}
	if err := os.Rename(tmpPath, SettingsPath(dir)); err != nil {
		return errors.Wrap(err, "replace settings file")
	}
	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if format, err := model.ParseClockFormat(fileData.ClockFormat); err == nil {
		settings.ClockFormat = format
	}
	if style, err := model.ParseClockStyle(fileData.ClockStyle); err == nil {
		settings.ClockStyle = style
	}
	if view, err := model.ParseView(fileData.View); err == nil {
		settings.View = view
	}

	if fileData.FocusSeconds > 0 {
		settings.Presets.Focus = time.Duration(fileData.FocusSeconds) * time.Second
	}
	if fileData.ShortBreakSeconds > 0 {
		settings.Presets.ShortBreak = time.Duration(fileData.ShortBreakSeconds) * time.Second
	}
	if fileData.LongBreakSeconds > 0 {
		settings.Presets.LongBreak = time.Duration(fileData.LongBreakSeconds) * time.Second
	}
}
