package trackmap

import (
	"iter"
	"reflect"
	"sort"
	"time"

	"github.com/dshills/trackmap/changes"
	"github.com/dshills/trackmap/history"
)

// Map is a string-keyed container that records every mutation applied
// to it. It keeps three views in step: the current state (with
// insertion order preserved for serialization), the net change log for
// the current tracking session, and the full timestamped history.
//
// A Map is not internally synchronized; callers sharing one across
// goroutines must serialize access externally.
type Map struct {
	values map[string]any
	order  []string

	rec  *changes.Recorder
	hist *history.Store

	clock   func() int64
	pinned  int64
	hasPin  bool
	source  string
	version string
}

// New creates an empty Map.
func New(opts ...Option) *Map {
	m := &Map{
		values: make(map[string]any),
		hist:   history.NewStore(),
		clock:  func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(m)
	}
	m.rec = changes.NewRecorder(nil, valuesEqual)
	return m
}

// FromMap creates a Map seeded from an existing plain mapping. Seeding
// establishes the tracking baseline and the first history entry per key
// without generating change-log entries. Seed values are deep-copied;
// seed keys enter in sorted order since a Go map carries none.
func FromMap(seed map[string]any, opts ...Option) *Map {
	m := New(opts...)
	keys := make([]string, 0, len(seed))
	for k := range seed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m.seed(keys, seed)
	return m
}

// seed installs initial state, baseline, and history in key order.
func (m *Map) seed(keys []string, src map[string]any) {
	baseline := make(map[string]any, len(src))
	ts := m.timestamp()
	for _, key := range keys {
		v := cloneValue(src[key])
		m.values[key] = v
		m.order = append(m.order, key)
		baseline[key] = cloneValue(v)
		// Unpinned appends cannot fail.
		_ = m.hist.Append(key, m.entry(ts, v, false), false)
	}
	m.rec.Rebase(baseline)
}

// Get returns the current value for a key.
// Returns a KeyError matching ErrKeyNotFound when the key is absent.
// Reads have no tracking side effect.
func (m *Map) Get(key string) (any, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, &KeyError{Key: key}
	}
	return v, nil
}

// Set inserts or overwrites a key. The net operation is derived from
// current state: absent keys record a create, present keys with a
// different value record an update, and setting an equal value is a
// complete no-op. Equality is structural for plain values and identity
// for nested *Map values.
//
// Set fails only when a pinned timestamp violates history ordering; the
// map is left untouched in that case.
func (m *Map) Set(key string, value any) error {
	cur, exists := m.values[key]
	if exists && valuesEqual(cur, value) {
		return nil
	}

	if err := m.hist.Append(key, m.entry(m.timestamp(), value, false), m.hasPin); err != nil {
		return err
	}

	m.values[key] = value
	if !exists {
		m.order = append(m.order, key)
	}
	m.rec.Record(key, value, true)
	return nil
}

// Delete removes a key.
// Returns a KeyError matching ErrKeyNotFound when the key is absent.
func (m *Map) Delete(key string) error {
	if _, exists := m.values[key]; !exists {
		return &KeyError{Key: key}
	}

	if err := m.hist.Append(key, m.entry(m.timestamp(), nil, true), m.hasPin); err != nil {
		return err
	}

	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.rec.Record(key, nil, false)
	return nil
}

// Contains reports whether a key is currently present.
func (m *Map) Contains(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys currently present.
func (m *Map) Len() int { return len(m.values) }

// Keys returns the current keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Value returns the current value for a key in comma-ok form.
// Together with Keys it forms the encode.Mapper projection.
func (m *Map) Value(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Items returns a lazy sequence over current entries in insertion
// order. Each range over the sequence re-reads current state.
func (m *Map) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range m.order {
			v, ok := m.values[key]
			if !ok {
				continue
			}
			if !yield(key, v) {
				return
			}
		}
	}
}

// Changes returns the net change log for the current tracking session
// in first-touched order. The returned slice is a copy.
func (m *Map) Changes() []changes.Change {
	return m.rec.Changes()
}

// HasChanges reports whether any key differs from the baseline.
func (m *Map) HasChanges() bool { return m.rec.HasChanges() }

// ResetTracking clears the change log and re-baselines the snapshot to
// the current state. Current state and history are untouched.
func (m *Map) ResetTracking() {
	baseline := make(map[string]any, len(m.values))
	for k, v := range m.values {
		baseline[k] = cloneValue(v)
	}
	m.rec.Rebase(baseline)
}

// Original returns a key's baseline value, the value it had when the
// current tracking session began.
func (m *Map) Original(key string) (any, bool) {
	return m.rec.Baseline(key)
}

// History returns a copy of a key's full action timeline.
func (m *Map) History(key string) []history.Entry {
	return m.hist.Entries(key)
}

// ValueAt returns the value a key held at the given Unix timestamp.
// Returns a KeyError when the key did not exist then (never set yet, or
// deleted at that point).
func (m *Map) ValueAt(key string, ts int64) (any, error) {
	e, ok := m.hist.AsOf(key, ts)
	if !ok || e.Deleted {
		return nil, &KeyError{Key: key}
	}
	return e.Value, nil
}

// ValueDiff pairs a key's value at some past timestamp with its
// current value.
type ValueDiff struct {
	// Key is the differing key.
	Key string

	// Then is the value at the requested time; valid when ThenOK.
	Then   any
	ThenOK bool

	// Now is the current value; valid when NowOK.
	Now   any
	NowOK bool
}

// DiffSince compares current state against the state visible at the
// given Unix timestamp, over the map's own history only. Keys whose
// value is unchanged are omitted. Results follow the history's
// first-seen key order.
func (m *Map) DiffSince(ts int64) []ValueDiff {
	var out []ValueDiff
	for _, key := range m.hist.Keys() {
		then, ok := m.hist.AsOf(key, ts)
		thenOK := ok && !then.Deleted
		var thenVal any
		if thenOK {
			thenVal = then.Value
		}

		now, nowOK := m.values[key]
		if thenOK == nowOK && (!thenOK || valuesEqual(thenVal, now)) {
			continue
		}
		out = append(out, ValueDiff{Key: key, Then: thenVal, ThenOK: thenOK, Now: now, NowOK: nowOK})
	}
	return out
}

// PinTimestamp pins an explicit timestamp for subsequent mutations.
// The pin must not precede the history's latest timestamp.
func (m *Map) PinTimestamp(ts int64) error {
	if ts < m.hist.LatestTS() {
		return history.ErrTimestampOrder
	}
	m.pinned = ts
	m.hasPin = true
	return nil
}

// UnpinTimestamp returns the map to its clock.
func (m *Map) UnpinTimestamp() { m.hasPin = false }

// LatestTS returns the most recent history timestamp.
func (m *Map) LatestTS() int64 { return m.hist.LatestTS() }

func (m *Map) timestamp() int64 {
	if m.hasPin {
		return m.pinned
	}
	return m.clock()
}

func (m *Map) entry(ts int64, value any, deleted bool) history.Entry {
	return history.Entry{
		TS:      ts,
		Value:   value,
		Deleted: deleted,
		Source:  m.source,
		Version: m.version,
	}
}

// valuesEqual is the equality used for change collapsing and no-op
// detection: identity for nested *Map values (the parent tracks only
// that the value object changed), deep structural equality otherwise.
func valuesEqual(a, b any) bool {
	if am, ok := a.(*Map); ok {
		bm, ok := b.(*Map)
		return ok && am == bm
	}
	if _, ok := b.(*Map); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}
