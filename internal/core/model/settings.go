package model

// Settings defines editable user preferences.
type Settings struct {
	ClockFormat ClockFormat
	ClockStyle  ClockStyle
	View        View
	Presets     PresetConfig
}

// DefaultSettings returns default settings for DigiTime.
func DefaultSettings() Settings {
	return Settings{
		ClockFormat: Hour24,
		ClockStyle:  StyleClassic,
		View:        ViewClock,
		Presets:     DefaultPresets(),
	}
}
