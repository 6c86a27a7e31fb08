// Package menubar runs the Pomodoro countdown as a menu bar item with no window.
package menubar

import (
	"context"

	"fyne.io/systray"
	"github.com/rs/zerolog"

	"digitime/internal/core/countdown"
	"digitime/internal/core/model"
	"digitime/internal/core/timefmt"
	"digitime/resources"
)

// Menubar mirrors a countdown into the system menu bar.
type Menubar struct {
	timer  *countdown.Countdown
	onQuit func()

	toggle *systray.MenuItem
	reset  *systray.MenuItem
	modes  []*systray.MenuItem
	quit   *systray.MenuItem
}

// New creates a menu bar front end. onQuit runs after the menu bar exits.
func New(timer *countdown.Countdown, onQuit func()) *Menubar {
	return &Menubar{timer: timer, onQuit: onQuit}
}

// Run blocks until Quit is selected or ctx is cancelled.
func (menubar *Menubar) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx).With().Str("component", "menubar").Logger()

	systray.Run(func() {
		menubar.build()
		go menubar.loop(ctx, logger)
	}, func() {
		logger.Debug().Msg("menu bar closed")
		if menubar.onQuit != nil {
			menubar.onQuit()
		}
	})
}

func (menubar *Menubar) build() {
	if icon, err := resources.IconBytes(resources.IconActive); err == nil {
		systray.SetIcon(icon)
	}

	menubar.toggle = systray.AddMenuItem("Start", "Start or stop the countdown")
	menubar.reset = systray.AddMenuItem("Reset", "Reset the countdown")
	systray.AddSeparator()
	for _, mode := range menubar.timer.Modes() {
		item := systray.AddMenuItemCheckbox(mode.Name, mode.Label, false)
		menubar.modes = append(menubar.modes, item)
	}
	systray.AddSeparator()
	menubar.quit = systray.AddMenuItem("Quit", "Quit DigiTime")

	menubar.apply(present(menubar.timer.Snapshot()))
}

func (menubar *Menubar) loop(ctx context.Context, logger zerolog.Logger) {
	events := menubar.timer.Subscribe(8)
	modeClicks := make(chan int)
	for i, item := range menubar.modes {
		go forward(ctx, item.ClickedCh, modeClicks, i)
	}

	for {
		select {
		case <-ctx.Done():
			systray.Quit()
			return
		case event, ok := <-events:
			if !ok {
				systray.Quit()
				return
			}
			if event.Type == countdown.EventExpired {
				logger.Info().Str("mode", event.Mode.Key).Msg("countdown expired")
			}
			menubar.apply(present(menubar.timer.Snapshot()))
		case <-menubar.toggle.ClickedCh:
			menubar.timer.Toggle()
		case <-menubar.reset.ClickedCh:
			menubar.timer.Reset()
		case index := <-modeClicks:
			menubar.timer.SetMode(index)
		case <-menubar.quit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func forward(ctx context.Context, clicks <-chan struct{}, out chan<- int, index int) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-clicks:
			select {
			case out <- index:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (menubar *Menubar) apply(view presentation) {
	systray.SetTitle(view.Title)
	systray.SetTooltip(view.Tooltip)
	menubar.toggle.SetTitle(view.Toggle)
	if view.CanToggle {
		menubar.toggle.Enable()
	} else {
		menubar.toggle.Disable()
	}
	for i, item := range menubar.modes {
		if i == view.ModeIndex {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
}

type presentation struct {
	Title     string
	Tooltip   string
	Toggle    string
	CanToggle bool
	ModeIndex int
}

// present derives the menu bar labels. The title is the bare remaining time
// so it stays narrow; the tooltip carries the full status text.
func present(snapshot countdown.Snapshot) presentation {
	view := presentation{
		Title:     timefmt.Countdown(snapshot.State.Remaining),
		Tooltip:   snapshot.Status,
		Toggle:    "Start",
		CanToggle: snapshot.Phase != countdown.PhaseExpired,
		ModeIndex: snapshot.ModeIndex,
	}
	if snapshot.State.Running {
		view.Toggle = "Stop"
	}
	if snapshot.Phase == countdown.PhaseExpired {
		view.Title = countdown.ExpiredStatus
	}
	if snapshot.Mode.Key != model.ModeFocus && snapshot.Phase != countdown.PhaseExpired {
		view.Title = "☕ " + view.Title
	}
	return view
}
