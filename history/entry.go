package history

// Entry records a single action applied to a key.
type Entry struct {
	// TS is the action's Unix timestamp in seconds.
	TS int64

	// Value is the value assigned by the action. Nil for deletions.
	Value any

	// Deleted marks the action as a deletion.
	Deleted bool

	// Source optionally names where the change came from.
	Source string

	// Version optionally tags the change with a version.
	Version string
}
