package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitime/internal/errors"
)

func TestInterval_RejectsNonPositivePeriod(t *testing.T) {
	err := NewInterval(0).Run(context.Background(), func(time.Time) {})
	require.ErrorIs(t, err, errors.ErrInvalidInterval)
}

func TestInterval_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var count atomic.Int64
	done := make(chan error, 1)

	go func() {
		done <- NewInterval(time.Millisecond).Run(ctx, func(time.Time) {
			count.Add(1)
		})
	}()

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("source did not stop after cancellation")
	}

	stopped := count.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, count.Load())
}

func TestManual_AdvanceDeliversSynchronously(t *testing.T) {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	source := NewManual(start, time.Second)

	assert.Equal(t, 0, source.Advance(5), "no ticks before Run")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	var seen []time.Time
	go func() {
		done <- source.Run(ctx, func(at time.Time) { seen = append(seen, at) })
	}()
	<-source.Ready()

	assert.Equal(t, 3, source.Advance(3))
	assert.Equal(t, []time.Time{
		start.Add(time.Second),
		start.Add(2 * time.Second),
		start.Add(3 * time.Second),
	}, seen)
	assert.Equal(t, start.Add(3*time.Second), source.Now())

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 0, source.Advance(1), "no ticks after cancellation")
}

func TestManual_CallbackCanReadNow(t *testing.T) {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	source := NewManual(start, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var seen []time.Time
	go func() {
		_ = source.Run(ctx, func(time.Time) { seen = append(seen, source.Now()) })
	}()
	<-source.Ready()

	delivered := make(chan int, 1)
	go func() { delivered <- source.Advance(2) }()

	select {
	case n := <-delivered:
		assert.Equal(t, 2, n)
	case <-time.After(2 * time.Second):
		t.Fatal("Advance blocked on a callback reading Now")
	}
	assert.Equal(t, []time.Time{start.Add(time.Second), start.Add(2 * time.Second)}, seen)
}
