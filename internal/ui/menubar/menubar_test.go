package menubar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digitime/internal/core/countdown"
	"digitime/internal/core/model"
)

func TestPresent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(timer *countdown.Countdown)
		want  presentation
	}{
		{
			name:  "idle focus",
			setup: func(*countdown.Countdown) {},
			want: presentation{
				Title: "25:00", Tooltip: "25:00 - Time to focus!", Toggle: "Start", CanToggle: true,
			},
		},
		{
			name: "running focus",
			setup: func(timer *countdown.Countdown) {
				timer.Start()
				timer.Tick()
			},
			want: presentation{
				Title: "24:59", Tooltip: "24:59 - Time to focus!", Toggle: "Stop", CanToggle: true,
			},
		},
		{
			name: "break mode",
			setup: func(timer *countdown.Countdown) {
				timer.NextMode()
			},
			want: presentation{
				Title: "☕ 05:00", Tooltip: "05:00 - Time for a break!", Toggle: "Start", CanToggle: true, ModeIndex: 1,
			},
		},
		{
			name: "expired",
			setup: func(timer *countdown.Countdown) {
				timer.SetMode(2)
				timer.Start()
				for i := 0; i < 900; i++ {
					timer.Tick()
				}
			},
			want: presentation{
				Title: "Time's up!", Tooltip: "Time's up!", Toggle: "Start", CanToggle: false, ModeIndex: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := countdown.New(model.DefaultModes())
			tt.setup(timer)
			assert.Equal(t, tt.want, present(timer.Snapshot()))
		})
	}
}
