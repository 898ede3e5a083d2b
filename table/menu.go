package table

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/ljungmark/lattice/grid"
	graphemeutil "github.com/ljungmark/lattice/internal/grapheme"
)

// menuState tracks the row/column actions popup.
type menuState struct {
	open     bool
	selected int
}

func openMenu() menuState {
	return menuState{open: true}
}

type menuAction struct {
	label string
	run   func(Model) Model
}

func menuActions() []menuAction {
	return []menuAction{
		{label: "Insert row above", run: func(m Model) Model { m, _ = m.InsertRowBefore(); return m }},
		{label: "Insert row below", run: func(m Model) Model { m, _ = m.InsertRowAfter(); return m }},
		{label: "Insert column left", run: func(m Model) Model { m, _ = m.InsertColumnBefore(); return m }},
		{label: "Insert column right", run: func(m Model) Model { m, _ = m.InsertColumnAfter(); return m }},
		{label: "Delete row", run: Model.DeleteRow},
		{label: "Delete column", run: Model.DeleteColumn},
	}
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	actions := menuActions()

	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.cfg.KeyMap.Menu):
		m.menu.open = false
		return m, nil

	case msg.Type == tea.KeyUp, msg.String() == "k":
		if m.menu.selected > 0 {
			m.menu.selected--
		}
		return m, nil

	case msg.Type == tea.KeyDown, msg.String() == "j":
		if m.menu.selected < len(actions)-1 {
			m.menu.selected++
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		action := actions[m.menu.selected]
		m.menu.open = false
		m = action.run(m)
		return m, nil
	}

	return m, nil
}

// composeMenu layers the actions popup over the rendered table, anchored
// one line below the selected cell (or the grid origin without one).
func (m Model) composeMenu(base string) string {
	st := m.cfg.Style

	actions := menuActions()
	width := 0
	for _, a := range actions {
		if w := graphemeutil.Width(a.label); w > width {
			width = w
		}
	}

	rows := make([]string, 0, len(actions))
	for i, a := range actions {
		style := st.MenuItem
		if i == m.menu.selected {
			style = st.MenuSelected
		}
		rows = append(rows, style.Render(graphemeutil.Pad(a.label, width)))
	}
	menu := st.Menu.Render(strings.Join(rows, "\n"))

	anchor := grid.Ref{}
	if sel, ok := m.grid.Selection(); ok {
		anchor = sel
	}
	x, y := m.cellOrigin(anchor)

	return overlay.Composite(menu, base, overlay.Left, overlay.Top, x, y+1)
}
