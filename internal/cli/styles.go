package cli

import "github.com/charmbracelet/lipgloss"

var (
	styleBold    = lipgloss.NewStyle().Bold(true)
	styleDefault = lipgloss.NewStyle()
	styleFaded   = lipgloss.NewStyle().Faint(true)

	styleInput          = styleDefault
	styleInputFocused   = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiBlue))
	stylePlaceholder    = styleFaded
	styleTitle          = styleBold
	styleSectionHeading = styleBold.Underline(true)

	styleScoreBanner = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Bold(true).
				Padding(0, 2).
				Align(lipgloss.Center)
	styleCriteriaColumn = lipgloss.NewStyle().PaddingRight(4)
	styleVerdict        = lipgloss.NewStyle().Bold(true)
)
