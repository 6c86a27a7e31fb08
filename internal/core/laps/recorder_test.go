package laps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitime/internal/core/model"
)

func TestRecorder_AppendIndexesDensely(t *testing.T) {
	var recorder Recorder

	first := recorder.Append(250)
	second := recorder.Append(300)

	assert.Equal(t, Lap{Index: 1, CapturedAt: 250}, first)
	assert.Equal(t, Lap{Index: 2, CapturedAt: 300}, second)
	assert.Equal(t, 2, recorder.Len())
	assert.Equal(t, []Lap{first, second}, recorder.Laps())
}

func TestRecorder_ClearRestartsIndex(t *testing.T) {
	var recorder Recorder
	recorder.Append(10)
	recorder.Append(20)

	recorder.Clear()
	assert.Equal(t, 0, recorder.Len())
	assert.Empty(t, recorder.Laps())

	lap := recorder.Append(30)
	assert.Equal(t, 1, lap.Index)
}

func TestRecorder_LapsReturnsCopy(t *testing.T) {
	var recorder Recorder
	recorder.Append(10)

	snapshot := recorder.Laps()
	snapshot[0].CapturedAt = 99

	assert.Equal(t, model.Ticks(10), recorder.Laps()[0].CapturedAt)
}

func TestRecorder_EmptyRanking(t *testing.T) {
	var recorder Recorder

	_, ok := recorder.Fastest()
	assert.False(t, ok)
	_, ok = recorder.Slowest()
	assert.False(t, ok)
}

func TestRecorder_Ranking(t *testing.T) {
	tests := []struct {
		name    string
		values  []model.Ticks
		fastest int
		slowest int
	}{
		{name: "single lap is both", values: []model.Ticks{42}, fastest: 1, slowest: 1},
		{name: "increasing", values: []model.Ticks{250, 300}, fastest: 1, slowest: 2},
		{name: "mixed", values: []model.Ticks{500, 120, 900, 300}, fastest: 2, slowest: 3},
		{name: "ties go to first occurrence", values: []model.Ticks{100, 50, 100, 50}, fastest: 2, slowest: 1},
		{name: "all equal", values: []model.Ticks{7, 7, 7}, fastest: 1, slowest: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var recorder Recorder
			for _, value := range tc.values {
				recorder.Append(value)
			}

			fastest, ok := recorder.Fastest()
			require.True(t, ok)
			slowest, ok := recorder.Slowest()
			require.True(t, ok)

			assert.Equal(t, tc.fastest, fastest.Index)
			assert.Equal(t, tc.slowest, slowest.Index)
			for _, lap := range recorder.Laps() {
				assert.LessOrEqual(t, fastest.CapturedAt, lap.CapturedAt)
				assert.GreaterOrEqual(t, slowest.CapturedAt, lap.CapturedAt)
			}
		})
	}
}
