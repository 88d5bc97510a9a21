package trackmap

import (
	"errors"
	"fmt"
)

// Errors returned by map operations.
var (
	// ErrKeyNotFound indicates the requested key is not present.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidJSON indicates the input is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON document")
)

// KeyError reports which key a lookup or deletion failed on.
type KeyError struct {
	// Key is the missing key.
	Key string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %q", e.Key)
}

// Is implements error matching against ErrKeyNotFound.
func (e *KeyError) Is(target error) bool {
	return target == ErrKeyNotFound
}
