package table

// Config configures the table Model.
type Config struct {
	// Initial cell content. Ragged rows are padded to the widest row.
	Content [][]string

	// ReadOnly disables cell edits and structure changes.
	ReadOnly bool

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// Rendering options.
	Style Style

	// OnChange, when set, receives a ChangeEvent after every observable
	// grid change.
	OnChange func(ChangeEvent)
}
