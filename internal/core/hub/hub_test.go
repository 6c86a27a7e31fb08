package hub

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitime/internal/core/clock"
	"digitime/internal/core/countdown"
	"digitime/internal/core/model"
	"digitime/internal/core/stopwatch"
	"digitime/internal/core/ticker"
	"digitime/internal/errors"
)

type manualSources struct {
	clock     *ticker.Manual
	stopwatch *ticker.Manual
	countdown *ticker.Manual
}

func newManualSources() manualSources {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	return manualSources{
		clock:     ticker.NewManual(start, time.Second),
		stopwatch: ticker.NewManual(start, model.Centisecond),
		countdown: ticker.NewManual(start, time.Second),
	}
}

func (sources manualSources) sources() Sources {
	return Sources{Clock: sources.clock, Stopwatch: sources.stopwatch, Countdown: sources.countdown}
}

func (sources manualSources) waitReady(t *testing.T) {
	t.Helper()
	for _, source := range []*ticker.Manual{sources.clock, sources.stopwatch, sources.countdown} {
		select {
		case <-source.Ready():
		case <-time.After(time.Second):
			t.Fatal("source never started")
		}
	}
}

func startHub(t *testing.T, ctx context.Context, hub *Hub) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx) }()
	return done
}

func TestHub_DrivesEngines(t *testing.T) {
	manual := newManualSources()
	hub := New(Config{
		Clock:   clock.Fixed{Time: time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)},
		Format:  model.Hour24,
		Modes:   model.DefaultModes(),
		Sources: manual.sources(),
	})
	faceEvents := hub.Face.Subscribe(4)

	done := startHub(t, context.Background(), hub)
	manual.waitReady(t)

	hub.Stopwatch.Start()
	manual.stopwatch.Advance(250)
	hub.Stopwatch.LapOrReset()
	manual.stopwatch.Advance(50)
	hub.Stopwatch.LapOrReset()

	snapshot := hub.Stopwatch.Snapshot()
	require.Len(t, snapshot.Laps, 2)
	assert.Equal(t, model.Ticks(250), snapshot.Laps[0].CapturedAt)
	assert.Equal(t, model.Ticks(300), snapshot.Laps[1].CapturedAt)

	hub.Countdown.Start()
	manual.countdown.Advance(1500)
	assert.Equal(t, countdown.PhaseExpired, hub.Countdown.Snapshot().Phase)

	manual.clock.Advance(1)
	event := <-faceEvents
	assert.Equal(t, "09:00:01", event.Text)

	hub.Close()
	require.NoError(t, <-done)
}

func TestHub_TeardownClosesObservers(t *testing.T) {
	manual := newManualSources()
	hub := New(Config{Sources: manual.sources()})
	watchEvents := hub.Stopwatch.Subscribe(1)
	countdownEvents := hub.Countdown.Subscribe(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := startHub(t, ctx, hub)
	manual.waitReady(t)

	cancel()
	require.NoError(t, <-done)

	_, open := <-watchEvents
	assert.False(t, open)
	_, open = <-countdownEvents
	assert.False(t, open)

	assert.Equal(t, 0, manual.stopwatch.Advance(10))
	assert.Equal(t, stopwatch.State{}, hub.Stopwatch.State())
}

func TestHub_RunsOnce(t *testing.T) {
	manual := newManualSources()
	hub := New(Config{Sources: manual.sources()})

	done := startHub(t, context.Background(), hub)
	manual.waitReady(t)

	err := hub.Run(context.Background())
	require.ErrorIs(t, err, errors.ErrAlreadyRunning)

	hub.Close()
	require.NoError(t, <-done)
}

func TestHub_SourceFailureStopsEverything(t *testing.T) {
	manual := newManualSources()
	sources := manual.sources()
	sources.Stopwatch = ticker.NewInterval(0)
	hub := New(Config{Sources: sources})

	err := hub.Run(context.Background())
	require.ErrorIs(t, err, errors.ErrInvalidInterval)
}

func TestHub_LogsExpiry(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	manual := newManualSources()
	hub := New(Config{
		Modes:   []model.CountdownMode{{Key: "tiny", Name: "Tiny", Label: "go", Preset: 2}},
		Sources: manual.sources(),
	})
	done := startHub(t, ctx, hub)
	manual.waitReady(t)

	hub.Countdown.Start()
	manual.countdown.Advance(2)

	hub.Close()
	require.NoError(t, <-done)
	assert.Contains(t, buf.String(), `"message":"countdown expired"`)
	assert.Contains(t, buf.String(), `"mode":"tiny"`)
}

func TestIntervalSources_Defaults(t *testing.T) {
	sources := IntervalSources(0, 0, 0)
	assert.Equal(t, clock.Interval, sources.Clock.(*ticker.Interval).Period)
	assert.Equal(t, stopwatch.Interval, sources.Stopwatch.(*ticker.Interval).Period)
	assert.Equal(t, countdown.Interval, sources.Countdown.(*ticker.Interval).Period)
}
