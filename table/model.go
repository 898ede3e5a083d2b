package table

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ljungmark/lattice/grid"
)

// Model is a Bubble Tea component that renders and interacts with a grid.
//
// A fresh Model owns an empty 0×0 grid with no selection; the host grows it
// through the row/column operations or by supplying Config.Content.
type Model struct {
	cfg  Config
	grid *grid.Grid

	focused bool

	viewport viewport.Model
	menu     menuState

	lastVersion uint64
}

func New(cfg Config) Model {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)

	g := grid.New()
	if len(cfg.Content) > 0 {
		g.SetContent(cfg.Content)
	}

	m := Model{
		cfg:      cfg,
		grid:     g,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = g.Version()
	m.rebuildContent()
	return m
}

// Grid exposes the underlying state. Hosts may mutate it directly; the next
// Update call resyncs the view.
func (m Model) Grid() *grid.Grid { return m.grid }

// Selection returns the selected cell, if the stored reference still
// resolves against the grid.
func (m Model) Selection() (grid.Ref, bool) { return m.grid.Selection() }

// SelectedRow returns the row of the selected cell, or false without one.
func (m Model) SelectedRow() (int, bool) { return m.grid.SelectedRow() }

// Content returns a copy of the cell text, row by row.
func (m Model) Content() [][]string { return m.grid.Content() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

// Blur drops focus and clears the selection; focus leaving the editable
// area leaves no cell active.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	m.grid.ClearSelection()
	m.menu.open = false
	return m.finish()
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Resync in case the host mutated the grid outside of the widget.
		return m.finish(), nil
	}
}

func (m Model) View() string {
	base := m.viewport.View()
	if m.menu.open {
		return m.composeMenu(base)
	}
	return base
}

// InsertRowBefore inserts a row above the selected row (at the top when
// nothing is selected) and reports the new row's index.
func (m Model) InsertRowBefore() (Model, int) {
	return m.insertRow(grid.Before)
}

// InsertRowAfter inserts a row below the selected row.
func (m Model) InsertRowAfter() (Model, int) {
	return m.insertRow(grid.After)
}

// InsertColumnBefore inserts a column left of the selected cell (leftmost
// when nothing is selected) and reports the new column's index.
func (m Model) InsertColumnBefore() (Model, int) {
	return m.insertColumn(grid.Before)
}

// InsertColumnAfter inserts a column right of the selected cell.
func (m Model) InsertColumnAfter() (Model, int) {
	return m.insertColumn(grid.After)
}

// DeleteRow removes the selected row; a no-op without a selection.
func (m Model) DeleteRow() Model {
	if m.cfg.ReadOnly {
		return m
	}
	m.grid.DeleteRow()
	return m.finish()
}

// DeleteColumn removes the selected column; a no-op without a selection.
func (m Model) DeleteColumn() Model {
	if m.cfg.ReadOnly {
		return m
	}
	m.grid.DeleteColumn()
	return m.finish()
}

func (m Model) insertRow(d grid.Direction) (Model, int) {
	if m.cfg.ReadOnly {
		return m, -1
	}
	at := m.grid.InsertRow(d)
	return m.finish(), at
}

func (m Model) insertColumn(d grid.Direction) (Model, int) {
	if m.cfg.ReadOnly {
		return m, -1
	}
	at := m.grid.InsertColumn(d)
	return m.finish(), at
}

// finish resyncs the cached view with the grid and notifies the host when
// the version moved.
func (m Model) finish() Model {
	if m.grid.Version() == m.lastVersion {
		return m
	}
	m.lastVersion = m.grid.Version()
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.grid))
	}
	return m
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
