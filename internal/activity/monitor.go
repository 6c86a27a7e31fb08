// Package activity decides whether on-screen controls are shown, based on how
// long the user has been idle.
package activity

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_monitor_test.go -package=$GOPACKAGE

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"digitime/internal/core/ticker"
	"digitime/internal/errors"
)

// CheckInterval is how often Run polls the idle provider.
const CheckInterval = time.Second

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// Monitor tracks control visibility. Controls are visible until the idle time
// reaches the hide delay; any input makes them visible again.
type Monitor struct {
	mu        sync.Mutex
	provider  IdleProvider
	hideAfter time.Duration
	visible   bool
	supported bool
	lastErr   error
}

// New creates a monitor with visible controls. A zero hideAfter keeps the
// controls visible forever.
func New(provider IdleProvider, hideAfter time.Duration) *Monitor {
	return &Monitor{
		provider:  provider,
		hideAfter: hideAfter,
		visible:   true,
		supported: provider != nil,
	}
}

// Visible reports whether the controls are currently shown.
func (monitor *Monitor) Visible() bool {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.visible
}

// Supported reports whether idle detection still works. It turns false for
// good once the provider returns errors.ErrIdleUnsupported.
func (monitor *Monitor) Supported() bool {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.supported
}

// Check polls the provider once and reports whether visibility changed.
func (monitor *Monitor) Check() (visible bool, changed bool) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()

	next := monitor.evaluateLocked()
	changed = next != monitor.visible
	monitor.visible = next
	return next, changed
}

// Poke marks user activity, for front ends that observe input directly.
func (monitor *Monitor) Poke() (changed bool) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	changed = !monitor.visible
	monitor.visible = true
	return changed
}

// Run polls on every tick of source until ctx is cancelled and calls onChange
// whenever visibility flips.
func (monitor *Monitor) Run(ctx context.Context, source ticker.Source, onChange func(visible bool)) error {
	logger := zerolog.Ctx(ctx).With().Str("component", "activity").Logger()
	reported := false

	return source.Run(ctx, func(time.Time) {
		visible, changed := monitor.Check()
		if changed && onChange != nil {
			onChange(visible)
		}
		if err := monitor.err(); err != nil && !reported {
			reported = true
			logger.Warn().Err(err).Msg("idle detection unavailable, controls stay visible")
		}
	})
}

func (monitor *Monitor) err() error {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.lastErr
}

func (monitor *Monitor) evaluateLocked() bool {
	if !monitor.supported || monitor.hideAfter <= 0 {
		return true
	}

	idle, err := monitor.provider.IdleDuration()
	if err != nil {
		monitor.lastErr = err
		if errors.Is(err, errors.ErrIdleUnsupported) {
			monitor.supported = false
		}
		return true
	}
	return idle < monitor.hideAfter
}
