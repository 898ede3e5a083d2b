package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ljungmark/lattice/grid"
)

func framedStyle() Style {
	return Style{
		Grid: lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Cell: lipgloss.NewStyle().Padding(0, 1),
	}
}

func TestHitCell_BareGeometry(t *testing.T) {
	m := New(Config{
		Content: [][]string{{"aa", "b"}, {"c", "d"}},
		Style:   Style{},
	})

	cases := []struct {
		x, y int
		want grid.Ref
		ok   bool
	}{
		{x: 0, y: 0, want: grid.Ref{}, ok: true},
		{x: 1, y: 0, want: grid.Ref{}, ok: true},
		{x: 2, y: 0, want: grid.Ref{Row: 0, Col: 1}, ok: true},
		{x: 0, y: 1, want: grid.Ref{Row: 1, Col: 0}, ok: true},
		{x: 2, y: 1, want: grid.Ref{Row: 1, Col: 1}, ok: true},
		{x: 3, y: 0, ok: false},
		{x: 0, y: 2, ok: false},
		{x: -1, y: 0, ok: false},
	}

	for _, tc := range cases {
		got, ok := m.hitCell(tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("hitCell(%d, %d): got %v, %v, want %v, %v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHitCell_FramesOffsetTheGrid(t *testing.T) {
	m := New(Config{
		Content: [][]string{{"a", "b"}},
		Style:   framedStyle(),
	})

	// The grid border occupies the first row and column; cell padding adds
	// one cell on each side of the content.
	if _, ok := m.hitCell(0, 0); ok {
		t.Fatalf("border click must not resolve")
	}
	if got, ok := m.hitCell(1, 1); !ok || got != (grid.Ref{}) {
		t.Fatalf("first cell: got %v, %v", got, ok)
	}
	if got, ok := m.hitCell(4, 1); !ok || got != (grid.Ref{Row: 0, Col: 1}) {
		t.Fatalf("second cell: got %v, %v", got, ok)
	}
	if _, ok := m.hitCell(7, 1); ok {
		t.Fatalf("click past the last column must not resolve")
	}
}

func TestHitCell_EmptyGrid(t *testing.T) {
	m := New(Config{Style: Style{}})
	if _, ok := m.hitCell(0, 0); ok {
		t.Fatalf("empty grid has nothing to hit")
	}
}

func TestCellOrigin_InvertsHitCell(t *testing.T) {
	m := New(Config{
		Content: [][]string{{"aa", "b"}, {"c", "d"}},
		Style:   framedStyle(),
	})

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			ref := grid.Ref{Row: r, Col: c}
			x, y := m.cellOrigin(ref)
			got, ok := m.hitCell(x, y)
			if !ok || got != ref {
				t.Fatalf("cellOrigin(%v) = (%d, %d) does not hit back: got %v, %v", ref, x, y, got, ok)
			}
		}
	}
}
