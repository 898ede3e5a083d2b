package grid

// Selection returns the selected cell if one is set and it still resolves
// against the current grid shape.
//
// The stored index pair is not adjusted by deletions, so after deleting the
// selected row or column it may resolve to a different cell or to nothing.
// Callers that mutate the grid must treat a false result as "no selection".
func (g *Grid) Selection() (Ref, bool) {
	if !g.sel.active || !g.inBounds(g.sel.ref) {
		return Ref{}, false
	}
	return g.sel.ref, true
}

// SetSelection marks the cell at r as selected. The previous selection, if
// any, is replaced; at most one cell is selected at a time. r is stored as
// given and validated on read.
func (g *Grid) SetSelection(r Ref) {
	next := selectionState{active: true, ref: r}
	if g.sel == next {
		return
	}
	g.sel = next
	g.version++
}

// ClearSelection resets the selection to none. Clearing an already clear
// selection changes nothing.
func (g *Grid) ClearSelection() {
	if !g.sel.active {
		return
	}
	g.sel = selectionState{}
	g.version++
}

// SelectedRow returns the row of the selected cell, or false if no cell is
// selected.
func (g *Grid) SelectedRow() (int, bool) {
	ref, ok := g.Selection()
	if !ok {
		return 0, false
	}
	return ref.Row, true
}
