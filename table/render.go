package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ljungmark/lattice/grid"
	graphemeutil "github.com/ljungmark/lattice/internal/grapheme"
)

func (m *Model) renderContent() string {
	g := m.grid
	st := m.cfg.Style
	if g.Rows() == 0 || g.Cols() == 0 {
		return st.Wrapper.Render(st.Grid.Render(""))
	}

	widths := m.columnWidths()
	heights := m.rowHeights()
	sel, selOK := g.Selection()

	rows := make([]string, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		cells := make([]string, 0, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			ref := grid.Ref{Row: r, Col: c}
			text, _ := g.CellText(ref)
			cells = append(cells, m.renderCell(text, widths[c], heights[r], selOK && ref == sel))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return st.Wrapper.Render(st.Grid.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func (m *Model) renderCell(text string, width, height int, selected bool) string {
	st := m.cfg.Style
	input := st.Input
	if selected {
		// The highlight is a modifier layered over the input style; exactly
		// one cell can carry it because the selection is a single index pair.
		input = st.Highlight.Inherit(st.Input)
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out = append(out, input.Render(graphemeutil.Pad(line, width)))
	}

	return st.Cell.Render(st.Content.Render(strings.Join(out, "\n")))
}

// columnWidths returns the content width of every column: the widest cell
// line in that column, never below one cell so empty columns stay visible.
func (m *Model) columnWidths() []int {
	g := m.grid
	widths := make([]int, g.Cols())
	for c := range widths {
		widths[c] = 1
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			text, _ := g.CellText(grid.Ref{Row: r, Col: c})
			for _, line := range strings.Split(text, "\n") {
				if w := graphemeutil.Width(line); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}
	return widths
}

// rowHeights returns the line count of every row: the tallest cell in the
// row, at least one.
func (m *Model) rowHeights() []int {
	g := m.grid
	heights := make([]int, g.Rows())
	for r := range heights {
		heights[r] = 1
		for c := 0; c < g.Cols(); c++ {
			text, _ := g.CellText(grid.Ref{Row: r, Col: c})
			if h := strings.Count(text, "\n") + 1; h > heights[r] {
				heights[r] = h
			}
		}
	}
	return heights
}
