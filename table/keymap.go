package table

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the table key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	NextCell, PrevCell    key.Binding

	// Enter is reserved for the host editor's block handling and is
	// consumed without inserting anything.
	Enter     key.Binding
	LineBreak key.Binding
	NewRow    key.Binding
	Backspace key.Binding

	Menu key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "cell up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "cell down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cell left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cell right")),

		NextCell: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		PrevCell: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),

		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reserved")),
		// Not every terminal reports shift+enter; alt+enter is the fallback.
		LineBreak: key.NewBinding(key.WithKeys("shift+enter", "alt+enter"), key.WithHelp("shift+enter", "line break")),
		// Same portability concern for ctrl+enter; ctrl+j is distinct from
		// plain enter on every terminal.
		NewRow:    key.NewBinding(key.WithKeys("ctrl+enter", "ctrl+j"), key.WithHelp("ctrl+enter", "new row below")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete last")),

		Menu: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "table actions")),
	}
}

// normalizeKeyMap substitutes the default bindings for a zero KeyMap so a
// Config built with struct literals keeps working.
func normalizeKeyMap(km KeyMap) KeyMap {
	if km.Up.Enabled() || km.NewRow.Enabled() || km.Menu.Enabled() {
		return km
	}
	return DefaultKeyMap()
}
