package countdown

import "digitime/internal/core/model"

// State is the countdown timer state. Transitions return a new value.
type State struct {
	Remaining model.Ticks
	Running   bool
}

func initialState(mode model.CountdownMode) State {
	return State{Remaining: mode.Preset}
}

// Phase derives the countdown phase from the state and the active preset.
func (state State) Phase(preset model.Ticks) Phase {
	switch {
	case state.Running:
		return PhaseRunning
	case state.Remaining <= 0:
		return PhaseExpired
	case state.Remaining < preset:
		return PhasePaused
	default:
		return PhaseIdle
	}
}

// Expired reports whether the countdown has run out.
func (state State) Expired() bool {
	return state.Remaining <= 0
}

func (state State) started() State {
	if state.Remaining > 0 {
		state.Running = true
	}
	return state
}

func (state State) stopped() State {
	state.Running = false
	return state
}

func (state State) advanced() State {
	if !state.Running {
		return state
	}
	state.Remaining--
	if state.Remaining <= 0 {
		state.Remaining = 0
		state.Running = false
	}
	return state
}
