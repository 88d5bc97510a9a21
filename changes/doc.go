// Package changes records the net effect of mutations applied to a
// tracked mapping.
//
// The package maintains one [Change] per distinct key, not one per raw
// mutation. Repeated mutations of the same key collapse into a single
// entry that compares the key's baseline value (its value when tracking
// began) against its current value:
//
//   - absent at baseline, present now  → [OpCreated]
//   - present at baseline, absent now  → [OpDeleted]
//   - present at baseline, changed now → [OpUpdated]
//   - same on both sides               → no entry at all
//
// A key created and deleted within the same session therefore leaves no
// trace, and a key deleted and re-created with its original value nets
// to nothing.
//
// # Ordering
//
// Entries are reported in first-touched order: the order in which each
// key first acquired a live entry during the session. A key whose entry
// collapses away loses its position; if it is mutated again later it
// re-enters at the back.
//
// # Usage
//
//	rec := changes.NewRecorder(baseline, nil)
//
//	// After every mutation, report the key's current value.
//	rec.Record("port", 8080, true)
//	rec.Record("debug", nil, false) // key no longer present
//
//	for _, c := range rec.Changes() {
//	    fmt.Println(c)
//	}
//
// The recorder has no failure modes; it trusts the caller to report
// mutations that were actually applied.
package changes
