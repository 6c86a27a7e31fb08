// Package tui is the terminal front end: the clock, stopwatch and Pomodoro
// views rendered with Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"digitime/internal/activity"
	"digitime/internal/core/countdown"
	"digitime/internal/core/hub"
	"digitime/internal/core/model"
	"digitime/internal/core/stopwatch"
	"digitime/internal/core/timefmt"
)

// RefreshInterval is how often the screen is redrawn. The engines keep their
// own cadence; the screen only samples them.
const RefreshInterval = 50 * time.Millisecond

// TickMsg signals time for a refresh.
type TickMsg time.Time

// Config contains the construction options for a Model.
type Config struct {
	View              model.View
	HideControlsAfter time.Duration
	// Now is the time source for input idleness. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model over a running hub.
type Model struct {
	engines  *hub.Hub
	keys     keyMap
	help     help.Model
	progress progress.Model
	title    cases.Caser

	view     model.View
	input    *keyboardIdle
	controls *activity.Monitor
	width    int
	quitting bool
}

// New creates a model showing cfg.View.
func New(engines *hub.Hub, cfg Config) *Model {
	view, err := model.ParseView(string(cfg.View))
	if err != nil {
		view = model.ViewClock
	}
	input := newKeyboardIdle(cfg.Now)

	return &Model{
		engines:  engines,
		keys:     defaultKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		title:    cases.Title(language.English),
		view:     view,
		input:    input,
		controls: activity.New(input, cfg.HideControlsAfter),
		width:    80,
	}
}

// Init starts the refresh timer.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages and returns the updated model and any commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.input.touch()
		m.controls.Poke()
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-8, 10), 60)
		return m, nil

	case TickMsg:
		m.controls.Check()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextView):
		m.cycleView(1)
	case key.Matches(msg, m.keys.PrevView):
		m.cycleView(-1)
	case key.Matches(msg, m.keys.ClockView):
		m.view = model.ViewClock
	case key.Matches(msg, m.keys.WatchView):
		m.view = model.ViewStopwatch
	case key.Matches(msg, m.keys.TimerView):
		m.view = model.ViewPomodoro
	case key.Matches(msg, m.keys.Format):
		m.engines.Face.ToggleFormat()
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.LapOrReset):
		if m.view == model.ViewStopwatch {
			m.engines.Stopwatch.LapOrReset()
		}
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Previous):
		m.step(-1)
	}
	return m, nil
}

func (m *Model) cycleView(step int) {
	index := 0
	for i, view := range model.Views {
		if view == m.view {
			index = i
		}
	}
	m.view = model.Views[model.Cycle(index, step, len(model.Views))]
}

func (m *Model) toggle() {
	switch m.view {
	case model.ViewStopwatch:
		m.engines.Stopwatch.Toggle()
	case model.ViewPomodoro:
		m.engines.Countdown.Toggle()
	}
}

func (m *Model) reset() {
	switch m.view {
	case model.ViewStopwatch:
		m.engines.Stopwatch.ClearAll()
	case model.ViewPomodoro:
		m.engines.Countdown.Reset()
	}
}

func (m *Model) step(direction int) {
	switch m.view {
	case model.ViewClock:
		if direction > 0 {
			m.engines.Face.NextStyle()
		} else {
			m.engines.Face.PreviousStyle()
		}
	case model.ViewPomodoro:
		if direction > 0 {
			m.engines.Countdown.NextMode()
		} else {
			m.engines.Countdown.PreviousMode()
		}
	}
}

// View renders the current state to a string.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.view {
	case model.ViewStopwatch:
		m.renderStopwatch(&b)
	case model.ViewPomodoro:
		m.renderPomodoro(&b)
	default:
		m.renderClock(&b)
	}

	if m.controls.Visible() {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

// ActiveView returns the view on screen.
func (m *Model) ActiveView() model.View {
	return m.view
}

// ControlsVisible reports whether the help line is shown.
func (m *Model) ControlsVisible() bool {
	return m.controls.Visible()
}

// IsQuitting returns true if the model is in quitting state.
func (m *Model) IsQuitting() bool {
	return m.quitting
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(model.Views))
	for _, view := range model.Views {
		label := m.title.String(string(view))
		if view == m.view {
			tabs = append(tabs, styleActiveTab.Render(label))
		} else {
			tabs = append(tabs, styleTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderClock(b *strings.Builder) {
	face := m.engines.Face.Render()
	b.WriteString(styleFace.Render(face.Text))
	b.WriteString("\n")
	if !m.controls.Visible() {
		b.WriteString(styleDate.Render(face.Date))
		b.WriteString("\n")
		return
	}
	b.WriteString(styleDate.Render(fmt.Sprintf("%s face, %s", face.Style.Title(), face.Format)))
	b.WriteString("\n")
}

func (m *Model) renderStopwatch(b *strings.Builder) {
	snapshot := m.engines.Stopwatch.Snapshot()
	b.WriteString(styleFace.Render(timefmt.Stopwatch(snapshot.State.Elapsed)))
	b.WriteString("\n")
	b.WriteString(styleStatus.Render(stopwatchHint(snapshot.Phase)))
	b.WriteString("\n")

	for i := len(snapshot.Laps) - 1; i >= 0; i-- {
		lap := snapshot.Laps[i]
		line := fmt.Sprintf("Lap %-3d %s", lap.Index, timefmt.Stopwatch(lap.CapturedAt))
		b.WriteString(lapStyle(snapshot, lap.Index).Render(line))
		b.WriteString("\n")
	}
}

func (m *Model) renderPomodoro(b *strings.Builder) {
	snapshot := m.engines.Countdown.Snapshot()

	modes := m.engines.Countdown.Modes()
	names := make([]string, 0, len(modes))
	for i, mode := range modes {
		if i == snapshot.ModeIndex {
			names = append(names, styleActiveTab.Render(mode.Name))
		} else {
			names = append(names, styleTab.Render(mode.Name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, names...))
	b.WriteString("\n")

	b.WriteString(styleFace.Render(timefmt.Countdown(snapshot.State.Remaining)))
	b.WriteString("\n")
	b.WriteString(styleStatus.Render(m.progress.ViewAs(snapshot.Progress)))
	b.WriteString("\n")
	b.WriteString(styleStatus.Render(snapshot.Status))
	b.WriteString("\n")
	if snapshot.Phase == countdown.PhaseExpired {
		b.WriteString(styleDate.Render("press r to restart"))
		b.WriteString("\n")
	}
}

func lapStyle(snapshot stopwatch.Snapshot, index int) lipgloss.Style {
	if !snapshot.Ranked {
		return styleLap
	}
	switch index {
	case snapshot.Fastest.Index:
		return styleFastest
	case snapshot.Slowest.Index:
		return styleSlowest
	}
	return styleLap
}

func stopwatchHint(phase stopwatch.Phase) string {
	switch phase {
	case stopwatch.PhaseRunning:
		return "running: l records a lap"
	case stopwatch.PhasePaused:
		return "paused: l clears laps"
	}
	return "stopped"
}

// tick returns a command that sends a TickMsg after RefreshInterval.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// keyboardIdle measures idleness as time since the last key press.
type keyboardIdle struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newKeyboardIdle(now func() time.Time) *keyboardIdle {
	if now == nil {
		now = time.Now
	}
	return &keyboardIdle{now: now, last: now()}
}

func (idle *keyboardIdle) touch() {
	idle.mu.Lock()
	defer idle.mu.Unlock()
	idle.last = idle.now()
}

func (idle *keyboardIdle) IdleDuration() (time.Duration, error) {
	idle.mu.Lock()
	defer idle.mu.Unlock()
	return idle.now().Sub(idle.last), nil
}
