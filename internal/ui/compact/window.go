// Package compact is a small frameless window that mirrors the Pomodoro
// countdown while the main window is hidden.
package compact

import (
	"context"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"digitime/internal/core/countdown"
	"digitime/internal/core/timefmt"
	"digitime/internal/ui/animation"
)

const (
	pulseBright = 600 * time.Millisecond
	pulseDim    = 400 * time.Millisecond

	widthFraction       = float32(0.12)
	heightFraction      = float32(0.12)
	defaultScreenWidth  = float32(1920)
	defaultScreenHeight = float32(1080)
)

var (
	brightColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	dimColor    = color.NRGBA{R: 232, G: 190, B: 66, A: 90}
)

// Window is the compact countdown.
type Window struct {
	window fyne.Window
	timer  *countdown.Countdown

	text   *canvas.Text
	status *canvas.Text
	toggle *widget.Button

	engine  *animation.Engine
	mu      sync.Mutex
	shown   bool
	pulsing bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden compact window over timer. Once the countdown
// expires its time pulses for pulseFor; zero keeps it steady.
func New(app fyne.App, timer *countdown.Countdown, pulseFor time.Duration) *Window {
	window := app.NewWindow("DigiTime")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash windows are undecorated.
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	compact := &Window{
		window: window,
		timer:  timer,
		text:   canvas.NewText("--:--", brightColor),
		status: canvas.NewText("", theme.ForegroundColor()),
		toggle: widget.NewButton("Start", timer.Toggle),
	}
	compact.text.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	compact.text.TextSize = 32
	compact.text.Alignment = fyne.TextAlignCenter
	compact.status.TextSize = 12
	compact.status.Alignment = fyne.TextAlignCenter

	compact.engine = animation.New(
		animation.PulseFor(pulseFor, pulseBright, pulseDim),
		func(frame animation.Frame) {
			fyne.Do(func() { compact.applyFrame(frame) })
		},
	)

	background := canvas.NewRectangle(color.NRGBA{A: 200})
	controls := container.NewHBox(
		compact.toggle,
		widget.NewButton("Reset", timer.Reset),
		widget.NewButtonWithIcon("", theme.CancelIcon(), compact.Hide),
	)
	window.SetContent(container.NewStack(background, container.NewPadded(container.NewVBox(
		compact.text,
		compact.status,
		container.NewCenter(controls),
	))))
	window.SetCloseIntercept(compact.Hide)

	compact.Refresh(timer.Snapshot())
	return compact
}

// Refresh applies a countdown snapshot. Must be called on the UI thread.
func (compact *Window) Refresh(snapshot countdown.Snapshot) {
	compact.text.Text = timefmt.Countdown(snapshot.State.Remaining)
	compact.text.Refresh()
	compact.status.Text = snapshot.Status
	compact.status.Refresh()

	if snapshot.State.Running {
		compact.toggle.SetText("Stop")
	} else {
		compact.toggle.SetText("Start")
	}
	if snapshot.Phase == countdown.PhaseExpired {
		compact.toggle.Disable()
	} else {
		compact.toggle.Enable()
	}

	compact.setPulsing(snapshot.Phase == countdown.PhaseExpired)
}

// Show displays the window in a corner-sized frame.
func (compact *Window) Show() {
	compact.mu.Lock()
	compact.shown = true
	compact.mu.Unlock()

	compact.resizeToScreenFraction()
	compact.window.Show()
}

// Toggle shows a hidden window and hides a visible one.
func (compact *Window) Toggle() {
	if compact.Visible() {
		compact.Hide()
		return
	}
	compact.Show()
}

// Hide closes the window. The pulse keeps its state for the next Show.
func (compact *Window) Hide() {
	compact.mu.Lock()
	compact.shown = false
	compact.mu.Unlock()
	compact.window.Hide()
}

// Visible reports whether the window is up.
func (compact *Window) Visible() bool {
	compact.mu.Lock()
	defer compact.mu.Unlock()
	return compact.shown
}

// Pulsing reports whether the expired pulse is active.
func (compact *Window) Pulsing() bool {
	compact.mu.Lock()
	defer compact.mu.Unlock()
	return compact.pulsing
}

func (compact *Window) setPulsing(pulsing bool) {
	compact.mu.Lock()
	changed := compact.pulsing != pulsing
	compact.pulsing = pulsing
	compact.mu.Unlock()
	if !changed {
		return
	}

	if pulsing {
		compact.engine.Start(context.Background())
		return
	}
	compact.engine.Stop()
	compact.applyFrame(animation.FrameBright)
}

func (compact *Window) applyFrame(frame animation.Frame) {
	if frame == animation.FrameDim {
		compact.text.Color = dimColor
	} else {
		compact.text.Color = brightColor
	}
	compact.text.Refresh()
}

func (compact *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := compact.window.Canvas().Size()
	// Canvas size can stand in for the monitor size when it is clearly screen-like.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	minSize := compact.window.Content().MinSize()
	width := max(screenSize.Width*widthFraction, minSize.Width)
	height := max(screenSize.Height*heightFraction, minSize.Height)

	compact.window.Resize(fyne.NewSize(width, height))
	compact.window.CenterOnScreen()
}
