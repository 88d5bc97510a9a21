// Package encode projects tracked-mapping state and change logs into
// JSON documents.
//
// Ordering matters here: the state document must reflect the mapping's
// insertion order and the changes document must reflect first-touched
// order. Documents are therefore assembled key by key with sjson, which
// appends new object members in construction order, instead of
// marshaling a Go map (encoding/json sorts map keys). Nested plain maps
// carry no order of their own and are emitted with sorted keys so
// output stays deterministic.
//
// # Document shapes
//
//	State:   {"state": {key: value, ...}}
//	Changes: {"changes": [{"key": k, "operation": op,
//	          "previous_value"?: v, "new_value"?: v}, ...]}
//	History: {"history": {key: [{"ts": n, "value"?: v, "del"?: true,
//	          "source"?: s, "version"?: s}, ...]}}
//
// # Validation
//
// Values are validated while encoding. The representable kinds are nil,
// booleans, strings, Go numeric types, []any, map[string]any, and
// nested containers implementing [Mapper]. Anything else aborts the
// call with an [*Error] naming the offending key; no partial document
// is returned.
package encode
