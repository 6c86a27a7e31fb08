// Package display is the GUI main window: one tab per view over a running hub.
package display

import (
	"context"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"digitime/internal/core/countdown"
	"digitime/internal/core/hub"
	"digitime/internal/core/model"
	"digitime/internal/core/stopwatch"
)

// DefaultTitle is the window title outside the Pomodoro view.
const DefaultTitle = "DigiTime"

// Options configures a Window.
type Options struct {
	View model.View
	// OnCountdown is called on the UI thread whenever the countdown changes.
	OnCountdown func(snapshot countdown.Snapshot)
	// OnCompact is called when the user asks for the compact countdown.
	OnCompact func()
	// OnView is called when the user switches tabs.
	OnView func(view model.View)
}

// Window is the main DigiTime window.
type Window struct {
	window  fyne.Window
	engines *hub.Hub
	options Options
	tabs    *container.AppTabs
	view    model.View

	clock     *clockView
	stopwatch *stopwatchView
	countdown *countdownView

	latestElapsed  atomic.Int64
	elapsedPending atomic.Bool
}

// New creates the main window over engines. Call Watch to keep it current.
func New(app fyne.App, engines *hub.Hub, options Options) *Window {
	display := &Window{
		window:  app.NewWindow(DefaultTitle),
		engines: engines,
		options: options,
	}

	display.clock = newClockView(engines.Face)
	display.stopwatch = newStopwatchView(engines.Stopwatch)
	display.countdown = newCountdownView(engines.Countdown)

	display.tabs = container.NewAppTabs(
		container.NewTabItem("Clock", display.clock.content),
		container.NewTabItem("Stopwatch", display.stopwatch.content),
		container.NewTabItem("Pomodoro", display.countdown.content),
	)
	display.tabs.OnSelected = func(*container.TabItem) {
		display.setView(model.Views[display.tabs.SelectedIndex()])
	}

	display.window.SetContent(display.tabs)
	display.window.Resize(fyne.NewSize(520, 420))
	display.window.Canvas().SetOnTypedKey(display.typedKey)

	display.clock.refresh(engines.Face.Render())
	display.stopwatch.refresh(engines.Stopwatch.Snapshot())
	display.refreshCountdown(engines.Countdown.Snapshot())

	view, err := model.ParseView(string(options.View))
	if err != nil {
		view = model.ViewClock
	}
	display.view = view
	display.selectTab(view)
	display.updateTitle(engines.Countdown.Snapshot())
	return display
}

// Window returns the underlying Fyne window.
func (display *Window) Window() fyne.Window {
	return display.window
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
	display.window.RequestFocus()
}

// View returns the active tab.
func (display *Window) View() model.View {
	return display.view
}

// SelectView switches to view.
func (display *Window) SelectView(view model.View) {
	display.selectTab(view)
	// SelectIndex does not fire OnSelected for the current tab.
	display.setView(view)
}

func (display *Window) selectTab(view model.View) {
	for i, known := range model.Views {
		if known == view && display.tabs.SelectedIndex() != i {
			display.tabs.SelectIndex(i)
		}
	}
}

// SetControlsVisible shows or hides the buttons of every view. The clock
// shows the date instead of its controls while they are hidden.
func (display *Window) SetControlsVisible(visible bool) {
	display.clock.setControlsVisible(visible)
	display.stopwatch.setControlsVisible(visible)
	display.countdown.setControlsVisible(visible)
}

// Watch applies engine events to the window until ctx is cancelled or the
// engines are closed. Updates run on the UI thread.
func (display *Window) Watch(ctx context.Context) {
	faceEvents := display.engines.Face.Subscribe(4)
	watchEvents := display.engines.Stopwatch.Subscribe(16)
	timerEvents := display.engines.Countdown.Subscribe(8)

	for faceEvents != nil || watchEvents != nil || timerEvents != nil {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-faceEvents:
			if !ok {
				faceEvents = nil
				continue
			}
			fyne.Do(func() { display.clock.refresh(event) })
		case event, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			if !needsSnapshot(event) {
				display.queueElapsed(event.Elapsed)
				continue
			}
			snapshot := display.engines.Stopwatch.Snapshot()
			fyne.Do(func() { display.stopwatch.refresh(snapshot) })
		case _, ok := <-timerEvents:
			if !ok {
				timerEvents = nil
				continue
			}
			snapshot := display.engines.Countdown.Snapshot()
			fyne.Do(func() { display.refreshCountdown(snapshot) })
		}
	}
}

// queueElapsed schedules an elapsed-only redraw. Ticks arriving before the
// UI thread runs it are folded into the pending redraw.
func (display *Window) queueElapsed(elapsed model.Ticks) {
	display.latestElapsed.Store(int64(elapsed))
	if !display.elapsedPending.CompareAndSwap(false, true) {
		return
	}
	fyne.Do(func() {
		display.elapsedPending.Store(false)
		display.stopwatch.setElapsed(model.Ticks(display.latestElapsed.Load()))
	})
}

// needsSnapshot reports whether a stopwatch event changes more than the
// elapsed time.
func needsSnapshot(event stopwatch.Event) bool {
	return event.Type != stopwatch.EventTick
}

func (display *Window) setView(view model.View) {
	changed := view != display.view
	display.view = view
	display.updateTitle(display.engines.Countdown.Snapshot())
	if changed && display.options.OnView != nil {
		display.options.OnView(view)
	}
}

func (display *Window) refreshCountdown(snapshot countdown.Snapshot) {
	display.countdown.refresh(snapshot)
	display.updateTitle(snapshot)
	if display.options.OnCountdown != nil {
		display.options.OnCountdown(snapshot)
	}
}

func (display *Window) updateTitle(snapshot countdown.Snapshot) {
	display.window.SetTitle(windowTitle(display.view, snapshot))
}

// windowTitle mirrors the countdown status while the Pomodoro view is active.
func windowTitle(view model.View, snapshot countdown.Snapshot) string {
	if view == model.ViewPomodoro {
		return snapshot.Status
	}
	return DefaultTitle
}

func (display *Window) typedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyF:
		display.engines.Face.ToggleFormat()
	case fyne.KeyC:
		if display.options.OnCompact != nil {
			display.options.OnCompact()
		}
	case fyne.KeySpace:
		switch display.view {
		case model.ViewStopwatch:
			display.engines.Stopwatch.Toggle()
		case model.ViewPomodoro:
			display.engines.Countdown.Toggle()
		}
	case fyne.KeyL:
		if display.view == model.ViewStopwatch {
			display.engines.Stopwatch.LapOrReset()
		}
	case fyne.KeyR:
		switch display.view {
		case model.ViewStopwatch:
			display.engines.Stopwatch.ClearAll()
		case model.ViewPomodoro:
			display.engines.Countdown.Reset()
		}
	}
}
