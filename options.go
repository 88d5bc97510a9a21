package trackmap

// Option configures a Map.
type Option func(*Map)

// WithClock sets the timestamp source for history entries.
// The clock returns Unix seconds. A nil clock is ignored.
func WithClock(clock func() int64) Option {
	return func(m *Map) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithTimestamp pins an explicit timestamp for subsequent mutations
// instead of reading the clock. Pinned timestamps are validated
// strictly: each mutation of a key must carry a timestamp newer than
// the key's latest history entry. Use PinTimestamp to advance the pin
// and UnpinTimestamp to return to the clock.
func WithTimestamp(ts int64) Option {
	return func(m *Map) {
		m.pinned = ts
		m.hasPin = true
	}
}

// WithSource stamps every history entry with the given change source.
func WithSource(source string) Option {
	return func(m *Map) {
		m.source = source
	}
}

// WithVersion stamps every history entry with the given version tag.
func WithVersion(version string) Option {
	return func(m *Map) {
		m.version = version
	}
}
