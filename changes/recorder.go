package changes

import "reflect"

// EqualFunc reports whether two values are equal for collapsing
// purposes. A nil EqualFunc means reflect.DeepEqual.
type EqualFunc func(a, b any) bool

// Recorder maintains the net change log for one tracking session.
// It holds the baseline (the state when tracking began) and recomputes
// each key's net entry from (baseline, current) on every report, so
// collapsing falls out of the comparison rather than from rules about
// operation sequences.
type Recorder struct {
	baseline map[string]any
	entries  map[string]Change
	order    []string
	eq       EqualFunc
}

// NewRecorder creates a recorder over the given baseline.
// The recorder takes ownership of the baseline map; callers that keep
// mutating the source should pass a copy. A nil baseline is treated as
// empty. A nil eq falls back to reflect.DeepEqual.
func NewRecorder(baseline map[string]any, eq EqualFunc) *Recorder {
	if baseline == nil {
		baseline = make(map[string]any)
	}
	if eq == nil {
		eq = func(a, b any) bool { return reflect.DeepEqual(a, b) }
	}
	return &Recorder{
		baseline: baseline,
		entries:  make(map[string]Change),
		eq:       eq,
	}
}

// Record reports the current value of a mutated key. exists is false
// when the key is no longer present. The key's net entry is recomputed
// against the baseline; an entry whose two sides match is dropped.
func (r *Recorder) Record(key string, current any, exists bool) {
	base, inBase := r.baseline[key]

	switch {
	case !inBase && !exists:
		r.drop(key)
	case !inBase && exists:
		r.put(Change{Key: key, Op: OpCreated, New: current, HasNew: true})
	case inBase && !exists:
		r.put(Change{Key: key, Op: OpDeleted, Prev: base, HasPrev: true})
	default:
		if r.eq(base, current) {
			r.drop(key)
			return
		}
		r.put(Change{Key: key, Op: OpUpdated, Prev: base, HasPrev: true, New: current, HasNew: true})
	}
}

// put inserts or replaces the entry for a key. A key that already has a
// live entry keeps its position in the order; otherwise it is appended.
func (r *Recorder) put(c Change) {
	if _, live := r.entries[c.Key]; !live {
		r.order = append(r.order, c.Key)
	}
	r.entries[c.Key] = c
}

// drop removes a key's entry and its slot in the order.
func (r *Recorder) drop(key string) {
	if _, live := r.entries[key]; !live {
		return
	}
	delete(r.entries, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Changes returns the net log in first-touched order.
// The returned slice is a copy; mutating it does not affect the recorder.
func (r *Recorder) Changes() []Change {
	out := make([]Change, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.entries[key])
	}
	return out
}

// Len returns the number of live entries.
func (r *Recorder) Len() int { return len(r.entries) }

// HasChanges returns true if any key has a live entry.
func (r *Recorder) HasChanges() bool { return len(r.entries) > 0 }

// Baseline returns a key's baseline value.
func (r *Recorder) Baseline(key string) (any, bool) {
	v, ok := r.baseline[key]
	return v, ok
}

// Rebase clears the log and installs a new baseline.
// The recorder takes ownership of the map, as in NewRecorder.
func (r *Recorder) Rebase(baseline map[string]any) {
	if baseline == nil {
		baseline = make(map[string]any)
	}
	r.baseline = baseline
	r.entries = make(map[string]Change)
	r.order = r.order[:0]
}
