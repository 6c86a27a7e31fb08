package display

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"digitime/internal/core/clock"
	"digitime/internal/core/countdown"
	"digitime/internal/core/model"
	"digitime/internal/core/stopwatch"
	"digitime/internal/core/timefmt"
)

const faceTextSize = 56

func newFaceText() *canvas.Text {
	text := canvas.NewText("", theme.ForegroundColor())
	text.TextSize = faceTextSize
	text.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	text.Alignment = fyne.TextAlignCenter
	return text
}

type clockView struct {
	face     *clock.Face
	text     *canvas.Text
	date     *widget.Label
	caption  *widget.Label
	controls *fyne.Container
	content  fyne.CanvasObject
}

func newClockView(face *clock.Face) *clockView {
	view := &clockView{
		face:    face,
		text:    newFaceText(),
		date:    widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		caption: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}
	view.date.Hide()

	view.controls = container.NewHBox(
		widget.NewButton("12/24h", face.ToggleFormat),
		widget.NewButton("Previous face", face.PreviousStyle),
		widget.NewButton("Next face", face.NextStyle),
	)
	view.content = container.NewVBox(
		view.text,
		view.date,
		view.caption,
		container.NewCenter(view.controls),
	)
	return view
}

func (view *clockView) refresh(event clock.Event) {
	view.text.Text = event.Text
	view.text.Refresh()
	view.date.SetText(event.Date)
	view.caption.SetText(fmt.Sprintf("%s face, %s", event.Style.Title(), event.Format))
}

func (view *clockView) setControlsVisible(visible bool) {
	if visible {
		view.controls.Show()
		view.caption.Show()
		view.date.Hide()
		return
	}
	view.controls.Hide()
	view.caption.Hide()
	view.date.Show()
}

type stopwatchView struct {
	watch    *stopwatch.Stopwatch
	text     *canvas.Text
	toggle   *widget.Button
	lap      *widget.Button
	rows     []lapRow
	list     *widget.List
	controls *fyne.Container
	content  fyne.CanvasObject
}

func newStopwatchView(watch *stopwatch.Stopwatch) *stopwatchView {
	view := &stopwatchView{
		watch:  watch,
		text:   newFaceText(),
		toggle: widget.NewButton("Start", watch.Toggle),
		lap:    widget.NewButton("Reset", watch.LapOrReset),
	}
	view.list = widget.NewList(
		func() int { return len(view.rows) },
		func() fyne.CanvasObject {
			text := canvas.NewText("", theme.ForegroundColor())
			text.TextStyle = fyne.TextStyle{Monospace: true}
			return text
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			if id < 0 || id >= len(view.rows) {
				return
			}
			row := view.rows[id]
			text := object.(*canvas.Text)
			text.Text = row.Text
			text.Color = row.Rank.color()
			text.Refresh()
		},
	)

	view.controls = container.NewHBox(view.toggle, view.lap)
	view.content = container.NewBorder(
		container.NewVBox(view.text, container.NewCenter(view.controls)),
		nil, nil, nil,
		view.list,
	)
	return view
}

func (view *stopwatchView) refresh(snapshot stopwatch.Snapshot) {
	view.setElapsed(snapshot.State.Elapsed)

	if snapshot.State.Running {
		view.toggle.SetText("Stop")
		view.lap.SetText("Lap")
	} else {
		view.toggle.SetText("Start")
		view.lap.SetText("Reset")
	}

	rows := lapRows(snapshot)
	if !sameRows(rows, view.rows) {
		view.rows = rows
		view.list.Refresh()
	}
}

func (view *stopwatchView) setElapsed(elapsed model.Ticks) {
	view.text.Text = timefmt.Stopwatch(elapsed)
	view.text.Refresh()
}

func (view *stopwatchView) setControlsVisible(visible bool) {
	if visible {
		view.controls.Show()
	} else {
		view.controls.Hide()
	}
}

type countdownView struct {
	timer    *countdown.Countdown
	text     *canvas.Text
	status   *widget.Label
	progress *widget.ProgressBar
	toggle   *widget.Button
	modes    []*widget.Button
	controls *fyne.Container
	content  fyne.CanvasObject
}

func newCountdownView(timer *countdown.Countdown) *countdownView {
	view := &countdownView{
		timer:    timer,
		text:     newFaceText(),
		status:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		progress: widget.NewProgressBar(),
		toggle:   widget.NewButton("Start", timer.Toggle),
	}
	view.progress.TextFormatter = func() string { return "" }

	modeBar := container.NewHBox()
	for i, mode := range timer.Modes() {
		index := i
		button := widget.NewButton(mode.Name, func() { timer.SetMode(index) })
		view.modes = append(view.modes, button)
		modeBar.Add(button)
	}

	view.controls = container.NewHBox(view.toggle, widget.NewButton("Reset", timer.Reset))
	view.content = container.NewVBox(
		container.NewCenter(modeBar),
		view.text,
		view.progress,
		view.status,
		container.NewCenter(view.controls),
	)
	return view
}

func (view *countdownView) refresh(snapshot countdown.Snapshot) {
	view.text.Text = timefmt.Countdown(snapshot.State.Remaining)
	view.text.Refresh()
	view.status.SetText(snapshot.Status)
	view.progress.SetValue(snapshot.Progress)

	if snapshot.State.Running {
		view.toggle.SetText("Stop")
	} else {
		view.toggle.SetText("Start")
	}
	if snapshot.Phase == countdown.PhaseExpired {
		view.toggle.Disable()
	} else {
		view.toggle.Enable()
	}

	for i, button := range view.modes {
		importance := widget.MediumImportance
		if i == snapshot.ModeIndex {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}
}

func (view *countdownView) setControlsVisible(visible bool) {
	if visible {
		view.controls.Show()
	} else {
		view.controls.Hide()
	}
}

type lapRank int

const (
	rankNone lapRank = iota
	rankFastest
	rankSlowest
)

func (rank lapRank) color() color.Color {
	switch rank {
	case rankFastest:
		return theme.SuccessColor()
	case rankSlowest:
		return theme.ErrorColor()
	}
	return theme.ForegroundColor()
}

type lapRow struct {
	Text string
	Rank lapRank
}

// lapRows lists laps newest first. Ranking colours apply only when the
// stopwatch reports a ranking; a single lap counts as the fastest.
func lapRows(snapshot stopwatch.Snapshot) []lapRow {
	rows := make([]lapRow, 0, len(snapshot.Laps))
	for i := len(snapshot.Laps) - 1; i >= 0; i-- {
		lap := snapshot.Laps[i]
		row := lapRow{Text: fmt.Sprintf("Lap %-3d %s", lap.Index, timefmt.Stopwatch(lap.CapturedAt))}
		if snapshot.Ranked {
			switch lap.Index {
			case snapshot.Fastest.Index:
				row.Rank = rankFastest
			case snapshot.Slowest.Index:
				row.Rank = rankSlowest
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func sameRows(left, right []lapRow) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if left[i] != right[i] {
			return false
		}
	}
	return true
}
