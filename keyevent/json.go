package keyevent

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DecodeJSON decodes a keyboard event from a raw JSON document, applying
// the same semantics as Decode without an intermediate map: the same
// fallback chain for the numeric code, the same empty-to-absent key name
// normalization, and the same strict requirements on the five modifier
// flags (JSON true/false only).
func (d *Decoder) DecodeJSON(data []byte) (KeyboardEvent, error) {
	if !gjson.ValidBytes(data) {
		return KeyboardEvent{}, fmt.Errorf("keyboard event: invalid JSON: %w", ErrMalformed)
	}

	var ev KeyboardEvent

	flags := []struct {
		field string
		dst   *bool
	}{
		{"altKey", &ev.AltKey},
		{"ctrlKey", &ev.CtrlKey},
		{"metaKey", &ev.MetaKey},
		{"repeat", &ev.Repeat},
		{"shiftKey", &ev.ShiftKey},
	}
	for _, f := range flags {
		v := gjson.GetBytes(data, f.field)
		if !v.Exists() {
			return KeyboardEvent{}, &FieldError{Field: f.field, Reason: "missing"}
		}
		switch v.Type {
		case gjson.True:
			*f.dst = true
		case gjson.False:
			*f.dst = false
		case gjson.Null:
			return KeyboardEvent{}, &FieldError{Field: f.field, Reason: "null"}
		default:
			return KeyboardEvent{}, &FieldError{Field: f.field, Reason: "not a boolean"}
		}
	}

	ev.KeyCode = d.translate(jsonCode(data))

	if key := gjson.GetBytes(data, "key"); key.Type == gjson.String && key.Str != "" {
		ev.Key = key.Str
		ev.HasKey = true
	}

	return ev, nil
}

// jsonCode is the JSON flavor of RawEvent.Code: the same ordered fallback
// chain over keyCode, which, and charCode, skipping absent, non-numeric,
// and zero values.
func jsonCode(data []byte) int {
	for _, field := range codeFields {
		v := gjson.GetBytes(data, field)
		if v.Type == gjson.Number {
			if n := int(v.Int()); n != 0 {
				return n
			}
		}
	}
	return 0
}
