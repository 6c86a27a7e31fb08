package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"digitime/internal/core/model"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input  string
		want   time.Duration
		wantOK bool
	}{
		{input: "25", want: 25 * time.Minute, wantOK: true},
		{input: " 1.5 ", want: 90 * time.Second, wantOK: true},
		{input: "0", wantOK: false},
		{input: "-5", wantOK: false},
		{input: "0.001", wantOK: false},
		{input: "soon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseMinutes(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindow_SaveCollectsForm(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []model.Settings
	prefs := New(app, model.DefaultSettings(), func(settings model.Settings) {
		saved = append(saved, settings)
	})

	assert.Equal(t, "25", prefs.focus.Text)
	assert.Equal(t, "24h", prefs.format.Selected)

	prefs.format.SetSelected("12h")
	prefs.style.SetSelected("focus")
	prefs.view.SetSelected("pomodoro")
	prefs.focus.SetText("50")
	prefs.shortBreak.SetText("not a number")
	prefs.handleSave()

	if assert.Len(t, saved, 1) {
		got := saved[0]
		assert.Equal(t, model.Hour12, got.ClockFormat)
		assert.Equal(t, model.StyleFocus, got.ClockStyle)
		assert.Equal(t, model.ViewPomodoro, got.View)
		assert.Equal(t, 50*time.Minute, got.Presets.Focus)
		assert.Equal(t, 5*time.Minute, got.Presets.ShortBreak, "invalid input keeps the previous value")
		assert.Equal(t, got, prefs.Settings())
	}
}
