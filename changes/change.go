package changes

import "fmt"

// Op categorizes the net effect recorded for a key.
type Op uint8

const (
	// OpCreated indicates the key was absent at baseline and exists now.
	OpCreated Op = iota

	// OpUpdated indicates the key existed at baseline with a different value.
	OpUpdated

	// OpDeleted indicates the key existed at baseline and is gone now.
	OpDeleted
)

// String returns the wire name of the operation.
func (o Op) String() string {
	switch o {
	case OpCreated:
		return "created"
	case OpUpdated:
		return "updated"
	case OpDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is the net mutation record for a single key.
// Field presence follows the operation: created entries carry no
// previous value, deleted entries carry no new value, updated entries
// carry both.
type Change struct {
	// Key is the mutated key.
	Key string

	// Op is the net operation for the key.
	Op Op

	// Prev is the key's baseline value. Valid only when HasPrev is true.
	Prev any

	// HasPrev reports whether Prev is populated.
	HasPrev bool

	// New is the key's current value. Valid only when HasNew is true.
	New any

	// HasNew reports whether New is populated.
	HasNew bool
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Op {
	case OpCreated:
		return fmt.Sprintf("create %q = %v", c.Key, c.New)
	case OpUpdated:
		return fmt.Sprintf("update %q: %v -> %v", c.Key, c.Prev, c.New)
	case OpDeleted:
		return fmt.Sprintf("delete %q (was %v)", c.Key, c.Prev)
	default:
		return fmt.Sprintf("unknown change to %q", c.Key)
	}
}

// IsCreate returns true if the key did not exist at baseline.
func (c Change) IsCreate() bool { return c.Op == OpCreated }

// IsUpdate returns true if the key changed value since baseline.
func (c Change) IsUpdate() bool { return c.Op == OpUpdated }

// IsDelete returns true if the key was removed since baseline.
func (c Change) IsDelete() bool { return c.Op == OpDeleted }
