package display

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitime/internal/core/clock"
	"digitime/internal/core/countdown"
	"digitime/internal/core/hub"
	"digitime/internal/core/laps"
	"digitime/internal/core/model"
	"digitime/internal/core/stopwatch"
)

func newTestWindow(t *testing.T, options Options) (*Window, *hub.Hub) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	engines := hub.New(hub.Config{
		Clock: clock.Fixed{Time: time.Date(2024, 7, 15, 13, 5, 9, 0, time.UTC)},
		Modes: model.DefaultModes(),
	})
	return New(app, engines, options), engines
}

func TestWindow_InitialRender(t *testing.T) {
	display, _ := newTestWindow(t, Options{})

	assert.Equal(t, model.ViewClock, display.View())
	assert.Equal(t, DefaultTitle, display.Window().Title())
	assert.Equal(t, "13:05:09", display.clock.text.Text)
	assert.Equal(t, "Monday, July 15", display.clock.date.Text)
	assert.Equal(t, "00:00:00,00", display.stopwatch.text.Text)
	assert.Equal(t, "25:00", display.countdown.text.Text)
}

func TestWindow_TitleFollowsPomodoroStatus(t *testing.T) {
	var views []model.View
	display, engines := newTestWindow(t, Options{
		View:   model.ViewPomodoro,
		OnView: func(view model.View) { views = append(views, view) },
	})
	assert.Equal(t, "25:00 - Time to focus!", display.Window().Title())

	engines.Countdown.Start()
	engines.Countdown.Tick()
	display.refreshCountdown(engines.Countdown.Snapshot())
	assert.Equal(t, "24:59 - Time to focus!", display.Window().Title())
	assert.Equal(t, "Stop", display.countdown.toggle.Text)

	display.SelectView(model.ViewStopwatch)
	assert.Equal(t, DefaultTitle, display.Window().Title())
	assert.Equal(t, []model.View{model.ViewStopwatch}, views)
}

func TestWindow_CountdownCallback(t *testing.T) {
	var seen []countdown.Snapshot
	display, engines := newTestWindow(t, Options{
		OnCountdown: func(snapshot countdown.Snapshot) { seen = append(seen, snapshot) },
	})
	seen = nil

	engines.Countdown.NextMode()
	display.refreshCountdown(engines.Countdown.Snapshot())

	require.Len(t, seen, 1)
	assert.Equal(t, model.ModeShortBreak, seen[0].Mode.Key)
	assert.Equal(t, "05:00", display.countdown.text.Text)
	assert.Equal(t, 1, seen[0].ModeIndex)
}

func TestWindow_ExpiredDisablesStart(t *testing.T) {
	display, engines := newTestWindow(t, Options{View: model.ViewPomodoro})

	engines.Countdown.SetModeByKey(model.ModeShortBreak)
	engines.Countdown.Start()
	for i := 0; i < 300; i++ {
		engines.Countdown.Tick()
	}
	display.refreshCountdown(engines.Countdown.Snapshot())

	assert.Equal(t, countdown.ExpiredStatus, display.Window().Title())
	assert.True(t, display.countdown.toggle.Disabled())
}

func TestWindow_TypedKeys(t *testing.T) {
	compact := 0
	display, engines := newTestWindow(t, Options{
		View:      model.ViewStopwatch,
		OnCompact: func() { compact++ },
	})

	display.typedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.True(t, engines.Stopwatch.State().Running)

	engines.Stopwatch.Tick()
	display.typedKey(&fyne.KeyEvent{Name: fyne.KeyL})
	assert.Len(t, engines.Stopwatch.Snapshot().Laps, 1)

	display.typedKey(&fyne.KeyEvent{Name: fyne.KeyR})
	assert.Len(t, engines.Stopwatch.Snapshot().Laps, 1, "reset is ignored while running")
	assert.True(t, engines.Stopwatch.State().Running)

	display.typedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	display.typedKey(&fyne.KeyEvent{Name: fyne.KeyR})
	assert.Empty(t, engines.Stopwatch.Snapshot().Laps)
	assert.Equal(t, model.Ticks(0), engines.Stopwatch.State().Elapsed)

	display.typedKey(&fyne.KeyEvent{Name: fyne.KeyF})
	assert.Equal(t, model.Hour12, engines.Face.Format())

	display.typedKey(&fyne.KeyEvent{Name: fyne.KeyC})
	assert.Equal(t, 1, compact)

	display.SelectView(model.ViewPomodoro)
	display.typedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.True(t, engines.Countdown.State().Running)
}

func TestWindow_ControlsVisibility(t *testing.T) {
	display, _ := newTestWindow(t, Options{})

	display.SetControlsVisible(false)
	assert.False(t, display.clock.controls.Visible())
	assert.True(t, display.clock.date.Visible())
	assert.False(t, display.stopwatch.controls.Visible())
	assert.False(t, display.countdown.controls.Visible())

	display.SetControlsVisible(true)
	assert.True(t, display.clock.controls.Visible())
	assert.False(t, display.clock.date.Visible())
}

func TestLapRows(t *testing.T) {
	tests := []struct {
		name     string
		snapshot stopwatch.Snapshot
		want     []lapRow
	}{
		{
			name: "no laps",
			want: []lapRow{},
		},
		{
			name: "single lap is fastest",
			snapshot: stopwatch.Snapshot{
				Laps:    []laps.Lap{{Index: 1, CapturedAt: 250}},
				Fastest: laps.Lap{Index: 1, CapturedAt: 250},
				Slowest: laps.Lap{Index: 1, CapturedAt: 250},
				Ranked:  true,
			},
			want: []lapRow{{Text: "Lap 1   00:00:02,50", Rank: rankFastest}},
		},
		{
			name: "newest first with ranking",
			snapshot: stopwatch.Snapshot{
				Laps:    []laps.Lap{{Index: 1, CapturedAt: 250}, {Index: 2, CapturedAt: 300}, {Index: 3, CapturedAt: 280}},
				Fastest: laps.Lap{Index: 1, CapturedAt: 250},
				Slowest: laps.Lap{Index: 2, CapturedAt: 300},
				Ranked:  true,
			},
			want: []lapRow{
				{Text: "Lap 3   00:00:02,80", Rank: rankNone},
				{Text: "Lap 2   00:00:03,00", Rank: rankSlowest},
				{Text: "Lap 1   00:00:02,50", Rank: rankFastest},
			},
		},
		{
			name: "unranked laps stay plain",
			snapshot: stopwatch.Snapshot{
				Laps: []laps.Lap{{Index: 1, CapturedAt: 250}},
			},
			want: []lapRow{{Text: "Lap 1   00:00:02,50", Rank: rankNone}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lapRows(tt.snapshot))
		})
	}
}

func TestStopwatchView_RefreshRows(t *testing.T) {
	display, engines := newTestWindow(t, Options{View: model.ViewStopwatch})

	engines.Stopwatch.Start()
	for i := 0; i < 250; i++ {
		engines.Stopwatch.Tick()
	}
	engines.Stopwatch.CaptureLap()
	display.stopwatch.refresh(engines.Stopwatch.Snapshot())

	assert.Equal(t, "00:00:02,50", display.stopwatch.text.Text)
	assert.Equal(t, "Lap", display.stopwatch.lap.Text)
	require.Len(t, display.stopwatch.rows, 1)
	assert.Equal(t, rankFastest, display.stopwatch.rows[0].Rank)
}

func TestNeedsSnapshot(t *testing.T) {
	tests := []struct {
		eventType stopwatch.EventType
		want      bool
	}{
		{eventType: stopwatch.EventTick, want: false},
		{eventType: stopwatch.EventLap, want: true},
		{eventType: stopwatch.EventCleared, want: true},
		{eventType: stopwatch.EventStateChange, want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.want, needsSnapshot(stopwatch.Event{Type: tt.eventType}))
		})
	}
}

func TestStopwatchView_SetElapsedKeepsRows(t *testing.T) {
	display, engines := newTestWindow(t, Options{View: model.ViewStopwatch})

	engines.Stopwatch.Start()
	engines.Stopwatch.Tick()
	engines.Stopwatch.CaptureLap()
	display.stopwatch.refresh(engines.Stopwatch.Snapshot())
	require.Len(t, display.stopwatch.rows, 1)

	display.stopwatch.setElapsed(4200)

	assert.Equal(t, "00:00:42,00", display.stopwatch.text.Text)
	assert.Len(t, display.stopwatch.rows, 1)
}
