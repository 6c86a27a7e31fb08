package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitime/internal/core/laps"
	"digitime/internal/core/model"
)

func tickN(watch *Stopwatch, n int) {
	for i := 0; i < n; i++ {
		watch.Tick()
	}
}

func TestNew_StartsStopped(t *testing.T) {
	watch := New()
	assert.Equal(t, State{}, watch.State())
	assert.Equal(t, PhaseStopped, watch.State().Phase())
}

func TestTick_CountsExactly(t *testing.T) {
	for _, n := range []int{0, 1, 99, 250, 1000} {
		watch := New()
		watch.Start()
		tickN(watch, n)
		assert.Equal(t, model.Ticks(n), watch.State().Elapsed)
	}
}

func TestTick_DroppedWhileNotRunning(t *testing.T) {
	watch := New()
	tickN(watch, 5)
	assert.Equal(t, model.Ticks(0), watch.State().Elapsed)

	watch.Start()
	tickN(watch, 10)
	watch.Stop()
	tickN(watch, 10)

	state := watch.State()
	assert.Equal(t, model.Ticks(10), state.Elapsed)
	assert.Equal(t, PhasePaused, state.Phase())

	watch.Start()
	tickN(watch, 5)
	assert.Equal(t, model.Ticks(15), watch.State().Elapsed)
}

func TestStartStop_AreIdempotent(t *testing.T) {
	watch := New()
	events := watch.Subscribe(10)

	watch.Start()
	watch.Start()
	watch.Stop()
	watch.Stop()

	require.Len(t, events, 2)
	first := <-events
	second := <-events
	assert.Equal(t, EventStateChange, first.Type)
	assert.Equal(t, PhaseRunning, first.Phase)
	assert.Equal(t, EventStateChange, second.Type)
	assert.Equal(t, PhaseStopped, second.Phase)
}

func TestToggle(t *testing.T) {
	watch := New()
	watch.Toggle()
	assert.True(t, watch.State().Running)
	watch.Toggle()
	assert.False(t, watch.State().Running)
}

func TestLapOrReset_WhileRunningCapturesLap(t *testing.T) {
	watch := New()
	watch.Start()
	tickN(watch, 40)

	for i := 1; i <= 3; i++ {
		before := watch.State()
		watch.LapOrReset()
		after := watch.Snapshot()

		assert.Equal(t, before, after.State)
		require.Len(t, after.Laps, i)
		assert.Equal(t, i, after.Laps[i-1].Index)
		assert.Equal(t, before.Elapsed, after.Laps[i-1].CapturedAt)
		tickN(watch, 7)
	}
}

func TestLapOrReset_WhileStoppedClearsEverything(t *testing.T) {
	watch := New()
	watch.Start()
	tickN(watch, 30)
	watch.LapOrReset()
	tickN(watch, 30)
	watch.Stop()

	watch.LapOrReset()

	snapshot := watch.Snapshot()
	assert.Equal(t, State{}, snapshot.State)
	assert.Equal(t, PhaseStopped, snapshot.Phase)
	assert.Empty(t, snapshot.Laps)
	assert.False(t, snapshot.Ranked)
}

func TestCaptureLapAndClearAll(t *testing.T) {
	watch := New()
	watch.Start()
	tickN(watch, 12)

	lap, ok := watch.CaptureLap()
	require.True(t, ok)
	assert.Equal(t, laps.Lap{Index: 1, CapturedAt: 12}, lap)
	assert.True(t, watch.State().Running)

	watch.Stop()
	require.True(t, watch.ClearAll())
	snapshot := watch.Snapshot()
	assert.Equal(t, State{}, snapshot.State)
	assert.Empty(t, snapshot.Laps)
}

func TestClearAll_IgnoredWhileRunning(t *testing.T) {
	watch := New()
	watch.Start()
	tickN(watch, 30)
	watch.LapOrReset()

	assert.False(t, watch.ClearAll())

	snapshot := watch.Snapshot()
	assert.True(t, snapshot.State.Running)
	assert.Equal(t, model.Ticks(30), snapshot.State.Elapsed)
	assert.Len(t, snapshot.Laps, 1)
}

func TestCaptureLap_IgnoredUnlessRunning(t *testing.T) {
	tests := []struct {
		name  string
		setup func(watch *Stopwatch)
	}{
		{name: "stopped", setup: func(*Stopwatch) {}},
		{
			name: "paused",
			setup: func(watch *Stopwatch) {
				watch.Start()
				tickN(watch, 30)
				watch.Stop()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			watch := New()
			tt.setup(watch)
			before := watch.State()

			lap, ok := watch.CaptureLap()

			assert.False(t, ok)
			assert.Equal(t, laps.Lap{}, lap)
			assert.Equal(t, before, watch.State())
			assert.Empty(t, watch.Snapshot().Laps)
		})
	}
}

func TestScenario_TwoLaps(t *testing.T) {
	watch := New()
	watch.Start()
	tickN(watch, 250)
	watch.LapOrReset()

	snapshot := watch.Snapshot()
	require.Len(t, snapshot.Laps, 1)
	assert.Equal(t, model.Ticks(250), snapshot.Laps[0].CapturedAt)

	tickN(watch, 50)
	watch.LapOrReset()

	snapshot = watch.Snapshot()
	require.Len(t, snapshot.Laps, 2)
	assert.Equal(t, model.Ticks(300), snapshot.Laps[1].CapturedAt)
	require.True(t, snapshot.Ranked)
	assert.Equal(t, 1, snapshot.Fastest.Index)
	assert.Equal(t, 2, snapshot.Slowest.Index)
}

func TestEvents(t *testing.T) {
	watch := New()
	events := watch.Subscribe(16)

	watch.Start()
	watch.Tick()
	watch.LapOrReset()
	watch.Stop()
	watch.LapOrReset()

	var types []EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.Equal(t, []EventType{EventStateChange, EventTick, EventLap, EventStateChange, EventCleared}, types)
}

func TestClose(t *testing.T) {
	watch := New()
	events := watch.Subscribe(1)
	watch.Start()
	<-events

	watch.Close()
	watch.Close()

	_, open := <-events
	assert.False(t, open)
	assert.False(t, watch.State().Running)

	late := watch.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}
