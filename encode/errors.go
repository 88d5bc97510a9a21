package encode

import (
	"errors"
	"fmt"
)

// ErrNotSerializable indicates a value has no JSON representation.
var ErrNotSerializable = errors.New("value not serializable")

// Error reports the key whose value could not be serialized.
type Error struct {
	// Key is the offending key, as a dotted path for nested values.
	Key string
	// Type is the Go type name of the offending value.
	Type string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("key %q: %s value is not JSON-representable", e.Key, e.Type)
}

// Is implements error matching against ErrNotSerializable.
func (e *Error) Is(target error) bool {
	return target == ErrNotSerializable
}
