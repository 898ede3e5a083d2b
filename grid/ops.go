package grid

// InsertRow splices a new row into the grid relative to the selected row
// and returns the new row's index. With no resolvable selection the row is
// inserted at the top. The new row is populated with exactly Cols() empty
// cells and the row counter is incremented.
//
// An active selection keeps denoting the same cell content: inserting at or
// above the selected row shifts the stored index down by one.
func (g *Grid) InsertRow(d Direction) int {
	at := 0
	sel, selOK := g.Selection()
	if selOK {
		at = sel.Row + int(ClampDirection(d))
	}

	g.cells = append(g.cells, nil)
	copy(g.cells[at+1:], g.cells[at:])
	g.cells[at] = g.newRow()
	g.rowCount++

	if selOK && at <= sel.Row {
		g.sel.ref.Row++
	}
	g.version++
	return at
}

// InsertRowBefore inserts a row directly above the selected row.
func (g *Grid) InsertRowBefore() int { return g.InsertRow(Before) }

// InsertRowAfter inserts a row directly below the selected row.
func (g *Grid) InsertRowAfter() int { return g.InsertRow(After) }

// DeleteRow removes the row containing the selected cell and decrements the
// row counter. Without a resolvable selection it does nothing. The stored
// selection index is deliberately not adjusted; it re-resolves against the
// mutated grid on the next read.
func (g *Grid) DeleteRow() {
	at, ok := g.SelectedRow()
	if !ok {
		return
	}
	g.cells = append(g.cells[:at], g.cells[at+1:]...)
	g.rowCount--
	g.version++
}

// InsertColumn splices an empty cell into every row relative to the
// selected cell's column and returns the new column's index. With no
// resolvable selection the column is inserted at index 0. The column
// counter is incremented.
func (g *Grid) InsertColumn(d Direction) int {
	at := 0
	sel, selOK := g.Selection()
	if selOK {
		at = sel.Col + int(ClampDirection(d))
	}

	for i, row := range g.cells {
		row = append(row, "")
		copy(row[at+1:], row[at:])
		row[at] = ""
		g.cells[i] = row
	}
	g.colCount++

	if selOK && at <= sel.Col {
		g.sel.ref.Col++
	}
	g.version++
	return at
}

// InsertColumnBefore inserts a column directly left of the selected cell.
func (g *Grid) InsertColumnBefore() int { return g.InsertColumn(Before) }

// InsertColumnAfter inserts a column directly right of the selected cell.
func (g *Grid) InsertColumnAfter() int { return g.InsertColumn(After) }

// DeleteColumn removes the cell at the selected cell's column from every
// row and decrements the column counter. Without a resolvable selection it
// does nothing. As with DeleteRow, the stored selection index stays as-is.
func (g *Grid) DeleteColumn() {
	sel, ok := g.Selection()
	if !ok {
		return
	}
	at := sel.Col
	for i, row := range g.cells {
		g.cells[i] = append(row[:at], row[at+1:]...)
	}
	g.colCount--
	g.version++
}
