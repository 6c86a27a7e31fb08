// Package ticker provides the cadence sources that drive the engines.
package ticker

import (
	"context"
	"sync"
	"time"

	"digitime/internal/errors"
)

// Source delivers periodic ticks until its context is cancelled.
// Run blocks; it returns nil once ctx is done.
type Source interface {
	Run(ctx context.Context, tick func(time.Time)) error
}

// Interval ticks on the wall clock at a fixed period.
type Interval struct {
	Period time.Duration
}

// NewInterval creates a wall-clock source.
func NewInterval(period time.Duration) *Interval {
	return &Interval{Period: period}
}

// Run delivers a tick every period until ctx is cancelled. Ticks the
// callback cannot keep up with are dropped by the underlying time.Ticker.
func (source *Interval) Run(ctx context.Context, tick func(time.Time)) error {
	if source.Period <= 0 {
		return errors.Wrapf(errors.ErrInvalidInterval, "ticker period %s", source.Period)
	}
	ticker := time.NewTicker(source.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case tickTime := <-ticker.C:
			tick(tickTime)
		}
	}
}

// Manual delivers ticks only when Advance is called.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	tick  func(time.Time)
	ready chan struct{}
	once  sync.Once
}

// NewManual creates a source whose clock starts at start and moves by step per tick.
func NewManual(start time.Time, step time.Duration) *Manual {
	return &Manual{
		now:   start,
		step:  step,
		ready: make(chan struct{}),
	}
}

// Run registers tick and blocks until ctx is cancelled.
func (source *Manual) Run(ctx context.Context, tick func(time.Time)) error {
	source.mu.Lock()
	source.tick = tick
	source.mu.Unlock()
	source.once.Do(func() { close(source.ready) })

	<-ctx.Done()

	source.mu.Lock()
	source.tick = nil
	source.mu.Unlock()
	return nil
}

// Ready is closed once Run has registered its callback.
func (source *Manual) Ready() <-chan struct{} {
	return source.ready
}

// Advance delivers n ticks synchronously and returns how many were delivered.
// Nothing is delivered when Run is not active.
// The callback runs without the source lock held, so it may call Now.
func (source *Manual) Advance(n int) int {
	delivered := 0
	for ; delivered < n; delivered++ {
		source.mu.Lock()
		tick := source.tick
		if tick == nil {
			source.mu.Unlock()
			break
		}
		source.now = source.now.Add(source.step)
		now := source.now
		source.mu.Unlock()

		tick(now)
	}
	return delivered
}

// Now returns the time of the last delivered tick.
func (source *Manual) Now() time.Time {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.now
}
