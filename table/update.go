package table

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ljungmark/lattice/grid"
	graphemeutil "github.com/ljungmark/lattice/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.menu.open {
		return m.updateMenuKey(msg)
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Up):
		m.moveSelection(-1, 0)
	case key.Matches(msg, km.Down):
		m.moveSelection(1, 0)
	case key.Matches(msg, km.Left):
		m.moveSelection(0, -1)
	case key.Matches(msg, km.Right):
		m.moveSelection(0, 1)

	case key.Matches(msg, km.NextCell):
		m.advanceSelection(1)
	case key.Matches(msg, km.PrevCell):
		m.advanceSelection(-1)

	case key.Matches(msg, km.NewRow):
		// New-row bindings overlap with enter on some terminals, so this
		// case must stay above km.Enter.
		if m.cfg.ReadOnly {
			return m, nil
		}
		at := m.grid.InsertRowAfter()
		if m.grid.Cols() > 0 {
			m.grid.SetSelection(grid.Ref{Row: at, Col: 0})
		}
		return m.finish(), activateCmd(at, SideStart)

	case key.Matches(msg, km.LineBreak):
		if !m.cfg.ReadOnly {
			m.appendToSelected("\n")
		}

	case key.Matches(msg, km.Enter):
		// Plain enter is reserved for the host editor's block handling;
		// consume it without inserting a newline.
		return m, nil

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.trimSelected()
		}

	case key.Matches(msg, km.Menu):
		if !m.cfg.ReadOnly {
			m.menu = openMenu()
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.appendToSelected(string(msg.Runes))
			}
		}
	}

	return m.finish(), nil
}

// moveSelection moves the selected cell by (dr, dc), clamped to the grid.
// With nothing selected the first cell becomes selected, mirroring focus
// entering the table.
func (m *Model) moveSelection(dr, dc int) {
	g := m.grid
	if g.Rows() == 0 || g.Cols() == 0 {
		return
	}
	next := grid.Ref{}
	if sel, ok := g.Selection(); ok {
		next = grid.Ref{Row: sel.Row + dr, Col: sel.Col + dc}
	}
	g.SetSelection(grid.ClampRef(next, g.Rows(), g.Cols()))
}

// advanceSelection walks the grid in reading order (tab/shift+tab).
func (m *Model) advanceSelection(delta int) {
	g := m.grid
	if g.Rows() == 0 || g.Cols() == 0 {
		return
	}
	sel, ok := g.Selection()
	if !ok {
		g.SetSelection(grid.Ref{})
		return
	}
	idx := sel.Row*g.Cols() + sel.Col + delta
	last := g.Rows()*g.Cols() - 1
	if idx < 0 {
		idx = 0
	}
	if idx > last {
		idx = last
	}
	g.SetSelection(grid.Ref{Row: idx / g.Cols(), Col: idx % g.Cols()})
}

func (m *Model) appendToSelected(s string) {
	g := m.grid
	ref, ok := g.Selection()
	if !ok {
		return
	}
	text, _ := g.CellText(ref)
	g.SetCellText(ref, text+s)
}

// trimSelected removes the final grapheme cluster of the selected cell.
func (m *Model) trimSelected() {
	g := m.grid
	ref, ok := g.Selection()
	if !ok {
		return
	}
	text, _ := g.CellText(ref)
	if text == "" {
		return
	}
	g.SetCellText(ref, graphemeutil.TrimLast(text))
}
