package grid

type selectionState struct {
	active bool
	ref    Ref
}

// Grid is the pure table state: cell text, row/column counters, and the
// selected cell.
type Grid struct {
	cells    [][]string
	rowCount int
	colCount int

	sel     selectionState
	version uint64
}

// New returns an empty 0×0 grid with no selection.
func New() *Grid {
	return &Grid{}
}

// Rows returns the row counter. It always equals the live row count.
func (g *Grid) Rows() int { return g.rowCount }

// Cols returns the column counter. Every row holds exactly this many cells.
func (g *Grid) Cols() int { return g.colCount }

func (g *Grid) Version() uint64 { return g.version }

// CellText returns the text of the cell at r, or false if r does not
// resolve against the current shape.
func (g *Grid) CellText(r Ref) (string, bool) {
	if !g.inBounds(r) {
		return "", false
	}
	return g.cells[r.Row][r.Col], true
}

// SetCellText replaces the text of the cell at r. Out-of-bounds refs are
// ignored. Text may contain '\n' (soft line breaks inside the cell).
func (g *Grid) SetCellText(r Ref, text string) {
	if !g.inBounds(r) {
		return
	}
	if g.cells[r.Row][r.Col] == text {
		return
	}
	g.cells[r.Row][r.Col] = text
	g.version++
}

// Content returns a copy of all cell text, row by row.
func (g *Grid) Content() [][]string {
	if g.rowCount == 0 {
		return nil
	}
	out := make([][]string, g.rowCount)
	for i, row := range g.cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// SetContent replaces the whole grid with cells. Ragged input is padded
// with empty cells to the widest row so every row keeps a uniform width.
// The selection is left untouched; it re-resolves against the new shape.
func (g *Grid) SetContent(cells [][]string) {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}

	next := make([][]string, 0, len(cells))
	for _, row := range cells {
		padded := make([]string, cols)
		copy(padded, row)
		next = append(next, padded)
	}

	g.cells = next
	g.rowCount = len(next)
	g.colCount = cols
	g.version++
}

// newRow builds a fresh row populated with exactly Cols() empty cells, so
// grid width stays uniform. A 0-column grid yields a zero-cell row; that is
// accepted behavior, not an error.
func (g *Grid) newRow() []string {
	return make([]string, g.colCount)
}

func (g *Grid) inBounds(r Ref) bool {
	return r.Row >= 0 && r.Row < g.rowCount && r.Col >= 0 && r.Col < g.colCount
}
