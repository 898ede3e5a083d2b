package table

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ljungmark/lattice/grid"
)

func TestRender_BareGeometry(t *testing.T) {
	m := New(Config{
		Content: [][]string{{"aa", "b"}, {"c", "dd"}},
		Style:   Style{},
	})

	got := strings.Split(m.renderContent(), "\n")
	want := []string{
		"aab ",
		"c dd",
	}
	if len(got) != len(want) {
		t.Fatalf("lines: got %d, want %d\n%q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender_MultiLineCellStretchesRow(t *testing.T) {
	m := New(Config{
		Content: [][]string{{"x\ny", "z"}},
		Style:   Style{},
	})

	got := strings.Split(m.renderContent(), "\n")
	if len(got) != 2 {
		t.Fatalf("lines: got %d, want 2\n%q", len(got), got)
	}
	// The single-line neighbor is padded to the row height.
	if got[0] != "xz" || got[1] != "y " {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRender_WideRunesAlign(t *testing.T) {
	m := New(Config{
		Content: [][]string{{"テ"}, {"a"}},
		Style:   Style{},
	})

	got := strings.Split(m.renderContent(), "\n")
	if got[0] != "テ" || got[1] != "a " {
		t.Fatalf("wide rune alignment: %q", got)
	}
}

func TestRender_HighlightOnSelectedCellOnly(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	hl := r.NewStyle().Underline(true)
	m := New(Config{
		Content: [][]string{{"a", "b"}},
		Style:   Style{Highlight: hl},
	})
	m.Grid().SetSelection(grid.Ref{Row: 0, Col: 1})
	m, _ = m.Update(struct{}{})

	got := m.renderContent()
	want := "a" + hl.Render("b")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}

	// Moving the selection moves the single highlight with it.
	m.Grid().SetSelection(grid.Ref{Row: 0, Col: 0})
	m, _ = m.Update(struct{}{})

	got = m.renderContent()
	want = hl.Render("a") + "b"
	if got != want {
		t.Fatalf("unexpected render after reselect:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_EmptyGrid(t *testing.T) {
	m := New(Config{Style: Style{}})
	if got := m.renderContent(); got != "" {
		t.Fatalf("empty grid render: got %q, want empty", got)
	}
}
