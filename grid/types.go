package grid

// Ref names a cell by (row, column) index. Both are 0-based.
type Ref struct {
	Row int
	Col int
}

// Direction controls whether a row or column insertion lands before or
// after the reference position.
type Direction int

const (
	Before Direction = 0
	After  Direction = 1
)

// ClampDirection clamps d to {Before, After}.
func ClampDirection(d Direction) Direction {
	if d < Before {
		return Before
	}
	if d > After {
		return After
	}
	return d
}

// ClampRef clamps r into a rows×cols shape. A non-positive dimension is
// treated as a single row or column so the result is always usable as an
// index pair.
func ClampRef(r Ref, rows, cols int) Ref {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return Ref{
		Row: clampInt(r.Row, 0, rows-1),
		Col: clampInt(r.Col, 0, cols-1),
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
