package manifest

import (
	"encoding/json"
	"sort"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is one node of a decoded manifest document. The zero Value is null.
//
// Accessors never fail: asking for the wrong variant returns the zero value
// of the requested type, and Get on a non-object returns null. This keeps
// optional-field lookups in callers free of type assertions.
type Value struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null is the null Value.
var Null = Value{}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(n json.Number) Value { return Value{kind: KindNumber, n: n} }

// Array returns an array Value.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object returns an object Value.
func Object(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// FromAny converts a document decoded with json.Number support into a Value.
// Unsupported Go types become null.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool(val)
	case json.Number:
		return Number(val)
	case string:
		return String(val)
	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			items[i] = FromAny(item)
		}
		return Array(items...)
	case map[string]any:
		fields := make(map[string]Value, len(val))
		for k, item := range val {
			fields[k] = FromAny(item)
		}
		return Object(fields)
	default:
		return Null
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null (or missing).
func (v Value) IsNull() bool { return v.kind == KindNull }

// Get returns the named field of an object, or null.
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Null
	}
	return v.obj[key]
}

// Index returns the i-th element of an array, or null.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Null
	}
	return v.arr[i]
}

// Str returns the string held by v and whether v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// StrOr returns the string held by v, or def when v is not a string.
func (v Value) StrOr(def string) string {
	if s, ok := v.Str(); ok {
		return s
	}
	return def
}

// BoolOr returns the boolean held by v, or def.
func (v Value) BoolOr(def bool) bool {
	if v.kind != KindBool {
		return def
	}
	return v.b
}

// Num returns the number held by v and whether v is a number.
func (v Value) Num() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.n, true
}

// Arr returns the elements of an array, or nil.
func (v Value) Arr() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Keys returns the sorted field names of an object, or nil.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of elements or fields; zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}
