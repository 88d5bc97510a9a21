package encode

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/trackmap/changes"
	"github.com/dshills/trackmap/history"
)

// Mapper is the projection a container must offer to be encoded as an
// ordered JSON object. It is satisfied by the root trackmap.Map, which
// lets nested tracked maps expand to their own state without this
// package importing the container.
type Mapper interface {
	// Keys returns the keys in serialization order.
	Keys() []string

	// Value returns the current value for a key.
	Value(key string) (any, bool)
}

// Options configures document output.
type Options struct {
	// Indent pretty-prints the document.
	Indent bool
}

// State encodes a container's current state as {"state": {...}} in the
// container's key order.
func State(m Mapper, opts Options) ([]byte, error) {
	doc := []byte(`{"state":{}}`)
	for _, key := range m.Keys() {
		v, ok := m.Value(key)
		if !ok {
			continue
		}
		raw, err := encodeValue(key, v)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetRawBytes(doc, "state."+escape(key), raw)
		if err != nil {
			return nil, err
		}
	}
	return finish(doc, opts), nil
}

// Changes encodes a net change log as {"changes": [...]} in log order.
// Recorded previous and new values are validated like state values.
func Changes(log []changes.Change, opts Options) ([]byte, error) {
	doc := []byte(`{"changes":[]}`)
	for _, c := range log {
		item := []byte(`{}`)
		item, err := sjson.SetBytes(item, "key", c.Key)
		if err != nil {
			return nil, err
		}
		item, err = sjson.SetBytes(item, "operation", c.Op.String())
		if err != nil {
			return nil, err
		}
		if c.HasPrev {
			raw, err := encodeValue(c.Key, c.Prev)
			if err != nil {
				return nil, err
			}
			if item, err = sjson.SetRawBytes(item, "previous_value", raw); err != nil {
				return nil, err
			}
		}
		if c.HasNew {
			raw, err := encodeValue(c.Key, c.New)
			if err != nil {
				return nil, err
			}
			if item, err = sjson.SetRawBytes(item, "new_value", raw); err != nil {
				return nil, err
			}
		}
		if doc, err = sjson.SetRawBytes(doc, "changes.-1", item); err != nil {
			return nil, err
		}
	}
	return finish(doc, opts), nil
}

// History encodes the full action history as {"history": {...}} with
// keys in first-seen order and each timeline in action order.
func History(st *history.Store, opts Options) ([]byte, error) {
	doc := []byte(`{"history":{}}`)
	for _, key := range st.Keys() {
		arr := []byte(`[]`)
		for _, e := range st.Entries(key) {
			item, err := encodeHistoryEntry(key, e)
			if err != nil {
				return nil, err
			}
			if arr, err = sjson.SetRawBytes(arr, "-1", item); err != nil {
				return nil, err
			}
		}
		var err error
		if doc, err = sjson.SetRawBytes(doc, "history."+escape(key), arr); err != nil {
			return nil, err
		}
	}
	return finish(doc, opts), nil
}

func encodeHistoryEntry(key string, e history.Entry) ([]byte, error) {
	item, err := sjson.SetBytes([]byte(`{}`), "ts", e.TS)
	if err != nil {
		return nil, err
	}
	if e.Deleted {
		if item, err = sjson.SetBytes(item, "del", true); err != nil {
			return nil, err
		}
	} else {
		raw, err := encodeValue(key, e.Value)
		if err != nil {
			return nil, err
		}
		if item, err = sjson.SetRawBytes(item, "value", raw); err != nil {
			return nil, err
		}
	}
	if e.Source != "" {
		if item, err = sjson.SetBytes(item, "source", e.Source); err != nil {
			return nil, err
		}
	}
	if e.Version != "" {
		if item, err = sjson.SetBytes(item, "version", e.Version); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// encodeValue renders one value as raw JSON, recursing into sequences
// and mappings. key names the value's location for error reporting.
func encodeValue(key string, v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte("null"), nil
	case Mapper:
		return encodeMapper(key, val)
	case map[string]any:
		return encodeMap(key, val)
	case []any:
		return encodeSlice(key, val)
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return json.Marshal(val)
	default:
		return nil, &Error{Key: key, Type: fmt.Sprintf("%T", v)}
	}
}

// encodeMapper expands a nested container to its plain state
// projection, honoring the container's own key order.
func encodeMapper(key string, m Mapper) ([]byte, error) {
	doc := []byte("{}")
	for _, k := range m.Keys() {
		v, ok := m.Value(k)
		if !ok {
			continue
		}
		raw, err := encodeValue(key+"."+k, v)
		if err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, escape(k), raw); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// encodeMap renders a plain map with sorted keys, since a Go map
// carries no order of its own and output must stay deterministic.
func encodeMap(key string, m map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := []byte("{}")
	for _, k := range keys {
		raw, err := encodeValue(key+"."+k, m[k])
		if err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, escape(k), raw); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func encodeSlice(key string, s []any) ([]byte, error) {
	doc := []byte("[]")
	for i, v := range s {
		raw, err := encodeValue(fmt.Sprintf("%s[%d]", key, i), v)
		if err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, "-1", raw); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func finish(doc []byte, opts Options) []byte {
	if opts.Indent {
		return pretty.Pretty(doc)
	}
	return doc
}

// escape backslash-escapes gjson path metacharacters so a key is
// addressed literally.
func escape(key string) string {
	if !strings.ContainsAny(key, `.\*?|#@`) {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '\\', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}
