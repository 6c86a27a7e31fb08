// Package preferences is the GUI editor for persisted user preferences.
package preferences

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"digitime/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   model.Settings
	onSave     func(model.Settings)
	format     *widget.RadioGroup
	style      *widget.RadioGroup
	view       *widget.Select
	focus      *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("DigiTime Preferences")

	format := widget.NewRadioGroup([]string{model.Hour24.String(), model.Hour12.String()}, nil)
	format.Horizontal = true

	styleNames := make([]string, 0, len(model.ClockStyles))
	for _, style := range model.ClockStyles {
		styleNames = append(styleNames, style.String())
	}
	style := widget.NewRadioGroup(styleNames, nil)
	style.Horizontal = true

	viewNames := make([]string, 0, len(model.Views))
	for _, view := range model.Views {
		viewNames = append(viewNames, string(view))
	}
	view := widget.NewSelect(viewNames, nil)

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		format:     format,
		style:      style,
		view:       view,
		focus:      widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Clock", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Hour format"), format),
		container.NewHBox(widget.NewLabel("Face"), style),
		container.NewHBox(widget.NewLabel("Start in"), view),
		widget.NewLabelWithStyle("Pomodoro (minutes)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2,
			widget.NewLabel("Focus"), prefs.focus,
			widget.NewLabel("Short break"), prefs.shortBreak,
			widget.NewLabel("Long break"), prefs.longBreak,
		),
		widget.NewLabel("Timer lengths apply the next time DigiTime starts."),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 360))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved or loaded settings.
func (prefs *Window) Settings() model.Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.format.SetSelected(settings.ClockFormat.String())
	prefs.style.SetSelected(settings.ClockStyle.String())
	prefs.view.SetSelected(string(settings.View))
	prefs.focus.SetText(formatMinutes(settings.Presets.Focus))
	prefs.shortBreak.SetText(formatMinutes(settings.Presets.ShortBreak))
	prefs.longBreak.SetText(formatMinutes(settings.Presets.LongBreak))
}

func (prefs *Window) handleSave() {
	settings := prefs.collect()
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// collect reads the form, keeping the previous value for anything invalid.
func (prefs *Window) collect() model.Settings {
	settings := prefs.settings

	if format, err := model.ParseClockFormat(prefs.format.Selected); err == nil {
		settings.ClockFormat = format
	}
	if style, err := model.ParseClockStyle(prefs.style.Selected); err == nil {
		settings.ClockStyle = style
	}
	if view, err := model.ParseView(prefs.view.Selected); err == nil {
		settings.View = view
	}
	if minutes, ok := parseMinutes(prefs.focus.Text); ok {
		settings.Presets.Focus = minutes
	}
	if minutes, ok := parseMinutes(prefs.shortBreak.Text); ok {
		settings.Presets.ShortBreak = minutes
	}
	if minutes, ok := parseMinutes(prefs.longBreak.Text); ok {
		settings.Presets.LongBreak = minutes
	}
	return settings
}

func formatMinutes(duration time.Duration) string {
	return strconv.FormatFloat(duration.Minutes(), 'f', -1, 64)
}

// parseMinutes accepts a positive number of minutes that is a whole number of seconds.
func parseMinutes(value string) (time.Duration, bool) {
	minutes, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || minutes <= 0 {
		return 0, false
	}
	seconds := minutes * 60
	if seconds != float64(int64(seconds)) {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}
