package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the terminal cell width of text, measured per grapheme
// cluster so multi-rune clusters are not double counted. Every non-empty
// cluster occupies at least one cell.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	w := 0
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if cw < 1 {
			cw = 1
		}
		w += cw
	}
	return w
}

// TrimLast returns text without its final grapheme cluster.
func TrimLast(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	last := 0
	for g.Next() {
		from, _ := g.Positions()
		last = from
	}
	return text[:last]
}

// Pad appends spaces to text until its cell width reaches width. Text that
// is already wide enough is returned unchanged.
func Pad(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}
