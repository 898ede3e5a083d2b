package table

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ljungmark/lattice/grid"
)

// hitCell maps viewport-local mouse coordinates to the cell at that
// position.
//
// Coordinates are in terminal cells relative to the widget's viewport:
// (0,0) is the top-left of the visible region. Clicks on wrapper or grid
// frame, and clicks past the last row or column, resolve to nothing.
func (m *Model) hitCell(x, y int) (grid.Ref, bool) {
	g := m.grid
	if g.Rows() == 0 || g.Cols() == 0 {
		return grid.Ref{}, false
	}
	st := m.cfg.Style

	x -= leftFrame(st.Wrapper) + leftFrame(st.Grid)
	y -= topFrame(st.Wrapper) + topFrame(st.Grid)
	y += m.viewport.YOffset
	if x < 0 || y < 0 {
		return grid.Ref{}, false
	}

	frameX := st.Cell.GetHorizontalFrameSize() + st.Content.GetHorizontalFrameSize()
	frameY := st.Cell.GetVerticalFrameSize() + st.Content.GetVerticalFrameSize()

	col := -1
	acc := 0
	for c, w := range m.columnWidths() {
		if x < acc+w+frameX {
			col = c
			break
		}
		acc += w + frameX
	}
	if col < 0 {
		return grid.Ref{}, false
	}

	row := -1
	acc = 0
	for r, h := range m.rowHeights() {
		if y < acc+h+frameY {
			row = r
			break
		}
		acc += h + frameY
	}
	if row < 0 {
		return grid.Ref{}, false
	}

	return grid.Ref{Row: row, Col: col}, true
}

// cellOrigin returns the viewport-local top-left coordinate of the cell at
// ref, the inverse of hitCell. Used to anchor the actions popup.
func (m *Model) cellOrigin(ref grid.Ref) (x, y int) {
	st := m.cfg.Style
	x = leftFrame(st.Wrapper) + leftFrame(st.Grid)
	y = topFrame(st.Wrapper) + topFrame(st.Grid) - m.viewport.YOffset

	frameX := st.Cell.GetHorizontalFrameSize() + st.Content.GetHorizontalFrameSize()
	frameY := st.Cell.GetVerticalFrameSize() + st.Content.GetVerticalFrameSize()

	for c, w := range m.columnWidths() {
		if c >= ref.Col {
			break
		}
		x += w + frameX
	}
	for r, h := range m.rowHeights() {
		if r >= ref.Row {
			break
		}
		y += h + frameY
	}
	return x, y
}

func leftFrame(s lipgloss.Style) int {
	return s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
}

func topFrame(s lipgloss.Style) int {
	return s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
}
