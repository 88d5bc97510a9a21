// Package history keeps the full timestamped action history of a
// tracked mapping.
//
// While the changes package answers "what is the net difference since
// tracking began", history answers "everything that ever happened":
// each mutation appends an immutable [Entry] to the key's timeline, and
// entries are never collapsed or removed.
//
// # Timestamps
//
// Entries carry Unix-second timestamps. Automatically clocked entries
// are clamped to the store's high-water mark so the global timeline
// never runs backwards. Explicitly pinned timestamps are validated
// strictly instead: a pinned entry must not precede the high-water mark
// and must be strictly newer than the key's latest entry, otherwise the
// append fails with [ErrTimestampOrder].
//
// # Lookups
//
//	latest, ok := store.Latest("a")        // most recent action
//	first, ok := store.First("a")          // the key's first action
//	then, ok := store.AsOf("a", ts)        // last action at or before ts
//
// Lookups return the raw entry including deletion markers; callers that
// want "the value visible at time T" must treat a returned entry with
// Deleted set as absence.
package history
