package table

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ljungmark/lattice/grid"
)

// Side tells the host where the text cursor should land inside a newly
// activated editable area.
type Side int

const (
	SideStart Side = iota
	SideEnd
)

// AreaActivatedMsg is emitted when the widget makes a new editable area
// active on its own, such as the row created by the new-row key. Hosts use
// it to decide cursor placement.
type AreaActivatedMsg struct {
	Row  int
	Side Side
}

func activateCmd(row int, side Side) tea.Cmd {
	return func() tea.Msg {
		return AreaActivatedMsg{Row: row, Side: side}
	}
}

// ChangeEvent describes the grid after an observable change.
type ChangeEvent struct {
	Version   uint64
	Selection struct {
		Ref    grid.Ref
		Active bool
	}

	// v0: simplest payload; host can diff if needed.
	Content [][]string
}

func buildChangeEvent(g *grid.Grid) ChangeEvent {
	ev := ChangeEvent{
		Version: g.Version(),
		Content: g.Content(),
	}
	if ref, ok := g.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Ref = ref
	}
	return ev
}
