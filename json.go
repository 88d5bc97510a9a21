package trackmap

import (
	"github.com/tidwall/gjson"

	"github.com/dshills/trackmap/encode"
)

var _ encode.Mapper = (*Map)(nil)

// ToJSON serializes current state as {"state": {...}} in insertion
// order. Nested tracked maps expand to their own plain state
// projection. Fails with an error matching encode.ErrNotSerializable,
// naming the offending key, if any value has no JSON form.
func (m *Map) ToJSON() ([]byte, error) {
	return encode.State(m, encode.Options{})
}

// ToJSONIndent is ToJSON with pretty-printed output.
func (m *Map) ToJSONIndent() ([]byte, error) {
	return encode.State(m, encode.Options{Indent: true})
}

// ChangesToJSON serializes the net change log as {"changes": [...]} in
// first-touched order. Recorded previous and new values are validated
// like state values.
func (m *Map) ChangesToJSON() ([]byte, error) {
	return encode.Changes(m.rec.Changes(), encode.Options{})
}

// ChangesToJSONIndent is ChangesToJSON with pretty-printed output.
func (m *Map) ChangesToJSONIndent() ([]byte, error) {
	return encode.Changes(m.rec.Changes(), encode.Options{Indent: true})
}

// HistoryToJSON serializes the full action history as
// {"history": {key: [entries...]}}.
func (m *Map) HistoryToJSON() ([]byte, error) {
	return encode.History(m.hist, encode.Options{})
}

// HistoryToJSONIndent is HistoryToJSON with pretty-printed output.
func (m *Map) HistoryToJSONIndent() ([]byte, error) {
	return encode.History(m.hist, encode.Options{Indent: true})
}

// FromJSON creates a Map seeded from a JSON object of key/value pairs
// (the shape under "state" in a ToJSON document). The document's key
// order becomes the map's insertion order. Like FromMap, seeding
// establishes the baseline without generating change entries.
func FromJSON(data []byte, opts ...Option) (*Map, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, ErrInvalidJSON
	}

	m := New(opts...)
	var keys []string
	src := make(map[string]any)
	parsed.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if _, seen := src[key]; !seen {
			keys = append(keys, key)
		}
		src[key] = v.Value()
		return true
	})
	m.seed(keys, src)
	return m, nil
}
