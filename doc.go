// Package trackmap provides a mapping container that records every
// mutation applied to it.
//
// A [Map] behaves like an ordinary string-keyed dictionary and
// additionally answers two questions an ordinary map cannot: "what
// changed since tracking began" and "what did this look like at time
// T". It serves callers mutating in-memory configuration or
// document-like state who later need the delta for auditing, diffing,
// or syncing to storage.
//
// # Architecture
//
// The container is decomposed into one package per concern:
//
//   - trackmap (this package): the user-facing Map, owning current
//     state and delegating every mutation to the recorder and the
//     history store
//   - changes: the net change log, one collapsed entry per key in
//     first-touched order
//   - history: the full timestamped action timeline per key
//   - encode: JSON projection and value validation
//
// # Change tracking
//
// Mutations collapse to their net effect against the baseline (the
// state at creation or at the last [Map.ResetTracking]):
//
//	m := trackmap.FromMap(map[string]any{"a": 1})
//	m.Set("a", 2)
//	m.Set("b", true)
//	m.Delete("b")
//
//	m.Changes() // one entry: update "a" from 1 to 2; "b" netted out
//
// Setting a key to a structurally equal value is a complete no-op.
//
// # Serialization
//
//	doc, err := m.ToJSON()        // {"state":{"a":2}}
//	log, err := m.ChangesToJSON() // {"changes":[{"key":"a",...}]}
//
// Values may be anything until serialization time; at that point each
// value must be nil, a boolean, a number, a string, a []any, a
// map[string]any, or a nested *Map, or the call fails naming the
// offending key.
//
// # Nested maps
//
// A *Map stored as a value is tracked by identity only: the parent
// records that the key's value object changed, never the nested map's
// internal edits. Nested change logs are read by calling Changes on
// the nested map itself.
//
// # Mutable values
//
// Values are held by reference. In-place edits to a slice or map that
// is already stored are invisible to tracking; an explicit Set is
// required to capture them.
//
// # Concurrency
//
// A Map has no internal locking. Sharing one across goroutines
// requires external serialization by the caller.
package trackmap
