package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}
	colorError   = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	styleTab       = lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted)
	styleActiveTab = styleTab.Bold(true).Foreground(colorPrimary).Underline(true)

	styleFace   = lipgloss.NewStyle().Bold(true).Padding(1, 4)
	styleDate   = lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(4)
	styleStatus = lipgloss.NewStyle().Foreground(colorPrimary).PaddingLeft(4)

	styleLap     = lipgloss.NewStyle().PaddingLeft(4)
	styleFastest = styleLap.Foreground(colorSuccess)
	styleSlowest = styleLap.Foreground(colorError)
)
