package stopwatch

import "digitime/internal/core/model"

// State is the stopwatch timer state. Transitions return a new value.
type State struct {
	Elapsed model.Ticks
	Running bool
}

// Phase derives the stopwatch phase from the state.
func (state State) Phase() Phase {
	switch {
	case state.Running:
		return PhaseRunning
	case state.Elapsed > 0:
		return PhasePaused
	default:
		return PhaseStopped
	}
}

func (state State) started() State {
	state.Running = true
	return state
}

func (state State) stopped() State {
	state.Running = false
	return state
}

func (state State) advanced() State {
	if state.Running {
		state.Elapsed++
	}
	return state
}

func (state State) cleared() State {
	return State{}
}
