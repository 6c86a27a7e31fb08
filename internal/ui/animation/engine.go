// Package animation drives timed frame sequences for attention cues.
package animation

import (
	"context"
	"sync"
	"time"
)

// Frame is one state of a pulse.
type Frame int

const (
	FrameBright Frame = iota
	FrameDim
)

// Config contains pulse timing values.
type Config struct {
	// Bright and Dim are how long each frame is held.
	Bright time.Duration
	Dim    time.Duration
	// Cycles is the number of bright/dim pairs. Zero pulses until stopped.
	Cycles int
}

// Period returns the length of one bright/dim pair.
func (config Config) Period() time.Duration {
	return config.Bright + config.Dim
}

// Enabled reports whether the config describes a visible pulse.
func (config Config) Enabled() bool {
	return config.Bright > 0 && config.Dim > 0
}

// PulseFor returns a config whose cycles fill duration. Non-positive
// durations disable the pulse.
func PulseFor(duration, bright, dim time.Duration) Config {
	config := Config{Bright: bright, Dim: dim}
	if duration <= 0 || !config.Enabled() {
		return Config{}
	}
	config.Cycles = max(int(duration/config.Period()), 1)
	return config
}

// Engine runs one pulse at a time. Starting a new pulse cancels the previous one.
type Engine struct {
	mu     sync.Mutex
	config Config
	update func(Frame)
	cancel context.CancelFunc
}

// New creates a pulse engine that reports frames to update.
func New(config Config, update func(Frame)) *Engine {
	return &Engine{config: config, update: update}
}

// Start begins a pulse. The returned channel is closed once the pulse has
// finished or was stopped; a finished pulse always ends on FrameBright.
func (engine *Engine) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	engine.start(ctx, func(runCtx context.Context) {
		defer close(done)
		engine.run(runCtx)
	})
	return done
}

// Stop terminates any active pulse.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) run(ctx context.Context) {
	if !engine.config.Enabled() {
		return
	}
	for cycle := 0; engine.config.Cycles == 0 || cycle < engine.config.Cycles; cycle++ {
		engine.update(FrameBright)
		if !sleepWithContext(ctx, engine.config.Bright) {
			return
		}
		engine.update(FrameDim)
		if !sleepWithContext(ctx, engine.config.Dim) {
			return
		}
	}
	engine.update(FrameBright)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
