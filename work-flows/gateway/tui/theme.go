package tui

import (
	"github.com/charmbracelet/lipgloss"

	"practice-coach/work-flows/models"
)

var (
	colorReady   = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#66bb6a"}
	colorLoading = lipgloss.AdaptiveColor{Light: "#e65100", Dark: "#ffa726"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#6a1b9a", Dark: "#ce93d8"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#bdbdbd", Dark: "#616161"}
	colorFocus   = lipgloss.AdaptiveColor{Light: "#1565c0", Dark: "#42a5f5"}
	colorButtonF = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1e1e1e"}
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	hintStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorButtonF).
			Background(colorFocus).
			Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Faint(true).
				Foreground(colorMuted).
				Padding(0, 2)

	outputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	stateTagStyle = lipgloss.NewStyle().Faint(true)
)

// outputBorder maps the output state classifier to a border colour.
func outputBorder(state models.OutputState) lipgloss.Style {
	switch state {
	case models.OutputStateReady:
		return outputBoxStyle.BorderForeground(colorReady)
	case models.OutputStateLoading:
		return outputBoxStyle.BorderForeground(colorLoading)
	default:
		return outputBoxStyle.BorderForeground(colorBorder)
	}
}
