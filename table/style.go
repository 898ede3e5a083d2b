package table

import "github.com/charmbracelet/lipgloss"

// Style controls the table's rendering.
//
// The identities mirror the structural roles of the table and stay
// independently configurable: the outer wrapper, the grid frame, each cell
// frame, the content padding inside a cell, the editable text itself, and
// the highlight modifier layered over the selected cell's text.
type Style struct {
	Wrapper lipgloss.Style
	Grid    lipgloss.Style
	Cell    lipgloss.Style
	Content lipgloss.Style
	Input   lipgloss.Style

	Highlight lipgloss.Style

	Menu         lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Wrapper:   lipgloss.NewStyle(),
		Grid:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
		Cell:      lipgloss.NewStyle().Padding(0, 1),
		Content:   lipgloss.NewStyle(),
		Input:     lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().Reverse(true),

		Menu:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		MenuItem:     lipgloss.NewStyle().Padding(0, 1),
		MenuSelected: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
	}
}
