package history

import "errors"

// Errors returned by history operations.
var (
	// ErrTimestampOrder indicates a pinned timestamp is not newer than
	// the relevant prior timestamp.
	ErrTimestampOrder = errors.New("timestamp not newer than latest")
)

// Store holds the per-key action timelines for one mapping.
type Store struct {
	entries map[string][]Entry
	keys    []string // first-seen order, for deterministic export
	latest  int64    // high-water mark across all keys
}

// NewStore creates an empty history store.
func NewStore() *Store {
	return &Store{entries: make(map[string][]Entry)}
}

// Append adds an entry to a key's timeline.
//
// When pinned is false the entry's timestamp is clamped up to the
// store's high-water mark. When pinned is true the timestamp is taken
// as-is and validated: it must not precede the high-water mark and must
// be strictly newer than the key's latest entry.
func (s *Store) Append(key string, e Entry, pinned bool) error {
	timeline := s.entries[key]

	if pinned {
		if e.TS < s.latest {
			return ErrTimestampOrder
		}
		if len(timeline) > 0 && timeline[len(timeline)-1].TS >= e.TS {
			return ErrTimestampOrder
		}
	} else if e.TS < s.latest {
		e.TS = s.latest
	}

	if len(timeline) == 0 {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = append(timeline, e)
	if e.TS > s.latest {
		s.latest = e.TS
	}
	return nil
}

// Latest returns the most recent entry for a key.
func (s *Store) Latest(key string) (Entry, bool) {
	timeline := s.entries[key]
	if len(timeline) == 0 {
		return Entry{}, false
	}
	return timeline[len(timeline)-1], true
}

// First returns the earliest entry for a key.
func (s *Store) First(key string) (Entry, bool) {
	timeline := s.entries[key]
	if len(timeline) == 0 {
		return Entry{}, false
	}
	return timeline[0], true
}

// AsOf returns the last entry for a key with a timestamp at or before
// ts. It reports false if the key had no entry yet at that time.
func (s *Store) AsOf(key string, ts int64) (Entry, bool) {
	var (
		found Entry
		ok    bool
	)
	for _, e := range s.entries[key] {
		if e.TS > ts {
			break
		}
		found, ok = e, true
	}
	return found, ok
}

// Entries returns a copy of a key's timeline in action order.
func (s *Store) Entries(key string) []Entry {
	timeline := s.entries[key]
	if len(timeline) == 0 {
		return nil
	}
	out := make([]Entry, len(timeline))
	copy(out, timeline)
	return out
}

// Keys returns every key that ever had an entry, in first-seen order.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// LatestTS returns the store's high-water timestamp.
func (s *Store) LatestTS() int64 { return s.latest }

// Len returns the number of keys with at least one entry.
func (s *Store) Len() int { return len(s.keys) }
