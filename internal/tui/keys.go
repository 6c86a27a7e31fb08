package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView   key.Binding
	PrevView   key.Binding
	ClockView  key.Binding
	WatchView  key.Binding
	TimerView  key.Binding
	Toggle     key.Binding
	LapOrReset key.Binding
	Reset      key.Binding
	Next       key.Binding
	Previous   key.Binding
	Format     key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part of the key.Map interface
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Toggle, k.LapOrReset, k.Reset, k.Next, k.Format, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the key.Map interface
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.PrevView, k.ClockView, k.WatchView, k.TimerView},
		{k.Toggle, k.LapOrReset, k.Reset},
		{k.Previous, k.Next, k.Format, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),
		ClockView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "clock"),
		),
		WatchView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "stopwatch"),
		),
		TimerView: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "pomodoro"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start/stop"),
		),
		LapOrReset: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap/reset"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Next: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next mode"),
		),
		Previous: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous mode"),
		),
		Format: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "12/24h"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}
