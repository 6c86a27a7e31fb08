package cli

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"digitime/internal/activity"
	"digitime/internal/core/countdown"
	"digitime/internal/core/model"
	"digitime/internal/core/ticker"
	"digitime/internal/errors"
	"digitime/internal/platform"
	"digitime/internal/ui/compact"
	"digitime/internal/ui/display"
	"digitime/internal/ui/preferences"
	"digitime/internal/ui/tray"
	"digitime/resources"
)

const appID = "com.digitime.app"

func addGUICommand(root *cobra.Command, state *session) {
	root.AddCommand(&cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), state)
		},
	})
}

// runGUI runs the desktop front end until the window quits or ctx ends.
func runGUI(ctx context.Context, state *session) error {
	logger := zerolog.Ctx(ctx).With().Str("component", "gui").Logger()

	dir := settingsDir(logger)
	if dir != "" {
		guard, err := platform.AcquireSingleInstance(dir)
		if err != nil {
			if errors.Is(err, errors.ErrAlreadyRunning) {
				logger.Warn().Msg("DigiTime is already running")
			}
			return err
		}
		defer func() {
			_ = guard.Release()
		}()
	}

	settings := resolveSettings(state, dir)
	engines := newHub(state.cfg, settings)
	defer engines.Close()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	var settingsMu sync.Mutex
	persist := func(update func(*model.Settings)) {
		settingsMu.Lock()
		update(&settings)
		snapshot := settings
		settingsMu.Unlock()
		saveSettings(logger, dir, snapshot)
	}

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	running := false

	mini := compact.New(fyneApp, engines.Countdown, state.cfg.UI.ExpiredPulse)

	window := display.New(fyneApp, engines, display.Options{
		View: settings.View,
		OnCountdown: func(snapshot countdown.Snapshot) {
			mini.Refresh(snapshot)
			if trayManager == nil {
				return
			}
			trayManager.SetStatus(snapshot.Status)
			if snapshot.State.Running != running {
				running = snapshot.State.Running
				trayManager.SetRunning(running)
				desktopApp.SetSystemTrayIcon(trayIcon(running))
			}
		},
		OnCompact: mini.Toggle,
		OnView: func(view model.View) {
			persist(func(s *model.Settings) { s.View = view })
		},
	})

	prefs := preferences.New(fyneApp, settings, func(updated model.Settings) {
		engines.Face.SetFormat(updated.ClockFormat)
		engines.Face.SetStyle(updated.ClockStyle)
		settingsMu.Lock()
		presetsChanged := updated.Presets != settings.Presets
		settingsMu.Unlock()
		if presetsChanged {
			logger.Info().Msg("new Pomodoro presets apply after restart")
		}
		persist(func(s *model.Settings) { *s = updated })
	})
	showPreferences := func() {
		settingsMu.Lock()
		current := settings
		settingsMu.Unlock()
		current.ClockFormat = engines.Face.Format()
		current.ClockStyle = engines.Face.Style()
		prefs.UpdateSettings(current)
		prefs.Show()
	}

	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        window.Show,
			OnPreferences: showPreferences,
			OnToggle:      engines.Countdown.Toggle,
			OnReset:       engines.Countdown.Reset,
			OnNextMode:    engines.Countdown.NextMode,
			OnCompact:     mini.Toggle,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.SetStatus(engines.Countdown.StatusText())
		desktopApp.SetSystemTrayIcon(trayIcon(false))
		window.Window().SetCloseIntercept(window.Window().Hide)
	} else {
		logger.Debug().Msg("system tray unsupported, closing the window quits")
		window.Window().SetMaster()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	enginesDone := make(chan struct{})
	go func() {
		defer close(enginesDone)
		if err := engines.Run(runCtx); err != nil {
			logger.Error().Err(err).Msg("engines stopped")
		}
	}()
	// Watch and the idle monitor stop with runCtx.
	go window.Watch(runCtx)
	go func() {
		monitor := activity.New(platform.NewIdleProvider(), state.cfg.UI.HideControlsAfter)
		_ = monitor.Run(runCtx, ticker.NewInterval(activity.CheckInterval), func(visible bool) {
			fyne.Do(func() { window.SetControlsVisible(visible) })
		})
	}()

	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			logger.Info().Msg("shutting down")
			fyne.Do(fyneApp.Quit)
		case <-stopped:
		}
	}()

	window.Show()
	fyneApp.Run()
	close(stopped)

	cancel()
	<-enginesDone

	persist(func(s *model.Settings) {
		s.ClockFormat = engines.Face.Format()
		s.ClockStyle = engines.Face.Style()
	})
	return nil
}

func trayIcon(running bool) fyne.Resource {
	if running {
		return resources.MustIcon(resources.IconActive)
	}
	return resources.MustIcon(resources.IconIdle)
}
