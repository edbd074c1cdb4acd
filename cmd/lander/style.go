package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// outcomeStyles colours outcomes in result tables.
var outcomeStyles = map[string]lipgloss.Style{
	"landed":   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"dead":     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"survived": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// outcome renders an outcome padded to width.
func outcome(name string, width int) string {
	style, ok := outcomeStyles[name]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Width(width).Render(name)
}
