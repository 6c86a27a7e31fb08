// Package laps keeps the ordered lap log of a stopwatch.
package laps

import "digitime/internal/core/model"

// Lap is one captured stopwatch reading.
type Lap struct {
	Index      int
	CapturedAt model.Ticks
}

// Recorder is an append-only lap log. It is not safe for concurrent use;
// the owning stopwatch serializes access.
type Recorder struct {
	laps []Lap
}

// Append records duration as the next lap and returns it.
func (recorder *Recorder) Append(duration model.Ticks) Lap {
	lap := Lap{Index: len(recorder.laps) + 1, CapturedAt: duration}
	recorder.laps = append(recorder.laps, lap)
	return lap
}

// Clear empties the log; the next lap starts again at index 1.
func (recorder *Recorder) Clear() {
	recorder.laps = nil
}

// Len returns the number of recorded laps.
func (recorder *Recorder) Len() int {
	return len(recorder.laps)
}

// Laps returns a copy of the log in capture order.
func (recorder *Recorder) Laps() []Lap {
	return append([]Lap(nil), recorder.laps...)
}

// Fastest returns the lap with the smallest reading. Ties go to the lowest index.
// ok is false when no lap has been recorded.
func (recorder *Recorder) Fastest() (Lap, bool) {
	return recorder.extreme(func(candidate, best model.Ticks) bool { return candidate < best })
}

// Slowest returns the lap with the largest reading. Ties go to the lowest index.
// ok is false when no lap has been recorded.
func (recorder *Recorder) Slowest() (Lap, bool) {
	return recorder.extreme(func(candidate, best model.Ticks) bool { return candidate > best })
}

func (recorder *Recorder) extreme(better func(candidate, best model.Ticks) bool) (Lap, bool) {
	if len(recorder.laps) == 0 {
		return Lap{}, false
	}
	best := recorder.laps[0]
	for _, lap := range recorder.laps[1:] {
		if better(lap.CapturedAt, best.CapturedAt) {
			best = lap
		}
	}
	return best, true
}
