package keyevent

import "encoding/json"

// RawEvent is the untyped keyboard event as delivered by a browser
// environment. Any field may be absent or of an unexpected type; readers on
// this type treat both the same way, as that field not being usable.
type RawEvent map[string]any

// codeFields are the legacy numeric code fields, in lookup order. Browsers
// disagree about which of these carries the real code, and several emit 0
// in the fields they do not populate.
var codeFields = [...]string{"keyCode", "which", "charCode"}

// Code resolves the numeric key code. Each field in the fallback chain is
// consulted in order and wins only if it is present, numeric, and non-zero.
// When no field qualifies the result is 0, which deliberately conflates "no
// code present" with a literal zero code; callers needing the distinction do
// not exist in practice.
func (r RawEvent) Code() int {
	for _, field := range codeFields {
		if n, ok := numField(r, field); ok && n != 0 {
			return n
		}
	}
	return 0
}

// KeyName returns the human-readable key name, if the raw event carries a
// usable one. Absent, non-string, and empty values all report ok=false;
// a missing key name is expected for many event flavors and is never an
// error.
func (r RawEvent) KeyName() (string, bool) {
	s, ok := r["key"].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// boolField reads a required modifier flag. Unlike the code and key fields
// there is no recovery for these; the caller turns ok=false into a decode
// failure.
func boolField(r RawEvent, field string) (bool, bool) {
	b, ok := r[field].(bool)
	return b, ok
}

// numField reads a numeric field, tolerating the integer and float shapes
// that JSON decoding and host bridges produce.
func numField(r RawEvent, field string) (int, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
