package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	graphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("49")).
			Padding(1, 0)
)

// Header renders a styled section header.
func Header(text string) string {
	return headerStyle.Render(text)
}

// KeyValue renders a "label: value" line.
func KeyValue(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}
