// Package table provides a Bubble Tea editable-table component backed by
// the grid package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware cell rendering, mouse hit-testing, the row/column actions
// popup, and host integration hooks (activation and change events).
package table
