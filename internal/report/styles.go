package report

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	totalStyle = lipgloss.NewStyle().
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	docStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2)
)
