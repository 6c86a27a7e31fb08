// Package hub owns the three engines of a display and the sources that drive them.
package hub

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"digitime/internal/core/clock"
	"digitime/internal/core/countdown"
	"digitime/internal/core/model"
	"digitime/internal/core/stopwatch"
	"digitime/internal/core/ticker"
	"digitime/internal/errors"
)

// Sources holds one cadence source per engine.
type Sources struct {
	Clock     ticker.Source
	Stopwatch ticker.Source
	Countdown ticker.Source
}

// IntervalSources returns wall-clock sources at the given periods.
// Non-positive periods fall back to the engine defaults.
func IntervalSources(clockPeriod, stopwatchPeriod, countdownPeriod time.Duration) Sources {
	if clockPeriod <= 0 {
		clockPeriod = clock.Interval
	}
	if stopwatchPeriod <= 0 {
		stopwatchPeriod = stopwatch.Interval
	}
	if countdownPeriod <= 0 {
		countdownPeriod = countdown.Interval
	}
	return Sources{
		Clock:     ticker.NewInterval(clockPeriod),
		Stopwatch: ticker.NewInterval(stopwatchPeriod),
		Countdown: ticker.NewInterval(countdownPeriod),
	}
}

// Config contains the construction options for a Hub.
type Config struct {
	Clock   clock.Clock
	Format  model.ClockFormat
	Style   model.ClockStyle
	Modes   []model.CountdownMode
	Sources Sources
}

// Hub wires a clock face, a stopwatch and a countdown to their sources.
type Hub struct {
	Face      *clock.Face
	Stopwatch *stopwatch.Stopwatch
	Countdown *countdown.Countdown

	mu      sync.Mutex
	sources Sources
	cancel  context.CancelFunc
	running bool
}

// New creates a Hub. Missing sources default to wall-clock intervals.
func New(config Config) *Hub {
	defaults := IntervalSources(0, 0, 0)
	if config.Sources.Clock == nil {
		config.Sources.Clock = defaults.Clock
	}
	if config.Sources.Stopwatch == nil {
		config.Sources.Stopwatch = defaults.Stopwatch
	}
	if config.Sources.Countdown == nil {
		config.Sources.Countdown = defaults.Countdown
	}
	return &Hub{
		Face:      clock.NewFace(config.Clock, config.Format, config.Style),
		Stopwatch: stopwatch.New(),
		Countdown: countdown.New(config.Modes),
		sources:   config.Sources,
	}
}

// Run drives every engine until ctx is cancelled or Close is called, then
// closes all engine observers. A Hub runs at most once.
func (hub *Hub) Run(ctx context.Context) error {
	hub.mu.Lock()
	if hub.running || hub.cancel != nil {
		hub.mu.Unlock()
		return errors.Wrap(errors.ErrAlreadyRunning, "hub")
	}
	runCtx, cancel := context.WithCancel(ctx)
	hub.cancel = cancel
	hub.running = true
	hub.mu.Unlock()
	defer cancel()

	logger := zerolog.Ctx(ctx).With().Str("component", "hub").Logger()
	logger.Debug().Msg("starting engines")

	watched := hub.Countdown.Subscribe(8)
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		logCountdown(logger, watched)
	}()

	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		return hub.sources.Clock.Run(groupCtx, hub.Face.Tick)
	})
	group.Go(func() error {
		return hub.sources.Stopwatch.Run(groupCtx, func(time.Time) { hub.Stopwatch.Tick() })
	})
	group.Go(func() error {
		return hub.sources.Countdown.Run(groupCtx, func(time.Time) { hub.Countdown.Tick() })
	})
	err := group.Wait()

	hub.Face.Close()
	hub.Stopwatch.Close()
	hub.Countdown.Close()
	<-watchDone

	hub.mu.Lock()
	hub.running = false
	hub.mu.Unlock()

	if err != nil {
		logger.Error().Err(err).Msg("engine source failed")
		return errors.Wrap(err, "run engines")
	}
	logger.Debug().Msg("engines stopped")
	return nil
}

// Close cancels a running hub. Run returns once every source has stopped.
func (hub *Hub) Close() {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.cancel != nil {
		hub.cancel()
	}
}

func logCountdown(logger zerolog.Logger, events <-chan countdown.Event) {
	for event := range events {
		switch event.Type {
		case countdown.EventExpired:
			logger.Info().Str("mode", event.Mode.Key).Msg("countdown expired")
		case countdown.EventModeChange:
			logger.Debug().Str("mode", event.Mode.Key).Int64("preset", int64(event.Mode.Preset)).Msg("countdown mode changed")
		}
	}
}
