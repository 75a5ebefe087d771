package keyevent

import "fmt"

// Decoder turns raw keyboard events into normalized KeyboardEvent records.
// The zero value is not usable; construct one with NewDecoder.
type Decoder struct {
	translate TranslateFunc
}

// NewDecoder creates a Decoder using the given code-to-identifier
// translation. A nil translate maps every code to KeyUnidentified.
func NewDecoder(translate TranslateFunc) *Decoder {
	if translate == nil {
		translate = func(int) Identifier { return KeyUnidentified }
	}
	return &Decoder{translate: translate}
}

// Decode assembles a normalized record from a raw event. The five modifier
// flags must be present and boolean; any other outcome fails the whole
// decode with a *FieldError and no partial record. The numeric code and the
// key name are recovered locally (see RawEvent.Code and RawEvent.KeyName)
// and never fail the decode on their own.
func (d *Decoder) Decode(raw RawEvent) (KeyboardEvent, error) {
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
		b, ok := boolField(raw, f.field)
		if !ok {
			return KeyboardEvent{}, &FieldError{Field: f.field, Reason: flagReason(raw, f.field)}
		}
		*f.dst = b
	}

	ev.KeyCode = d.translate(raw.Code())
	ev.Key, ev.HasKey = raw.KeyName()
	return ev, nil
}

// flagReason distinguishes a missing flag from a mistyped one for error
// messages.
func flagReason(raw RawEvent, field string) string {
	v, ok := raw[field]
	if !ok {
		return "missing"
	}
	return fmt.Sprintf("not a boolean (got %T)", v)
}

// Consider builds a decode function that filters and transforms events in
// one step. The selector receives each successfully decoded event and
// either produces a message (ok=true) or declines it (ok=false). Declined
// events fail with ErrIgnored; decode failures propagate unchanged, so the
// two outcomes stay distinguishable with errors.Is.
func Consider[T any](d *Decoder, selector func(KeyboardEvent) (T, bool)) func(RawEvent) (T, error) {
	return func(raw RawEvent) (T, error) {
		var zero T
		ev, err := d.Decode(raw)
		if err != nil {
			return zero, err
		}
		msg, ok := selector(ev)
		if !ok {
			return zero, ErrIgnored
		}
		return msg, nil
	}
}

// ConsiderJSON is Consider for events arriving as raw JSON documents,
// decoded with Decoder.DecodeJSON.
func ConsiderJSON[T any](d *Decoder, selector func(KeyboardEvent) (T, bool)) func([]byte) (T, error) {
	return func(data []byte) (T, error) {
		var zero T
		ev, err := d.DecodeJSON(data)
		if err != nil {
			return zero, err
		}
		msg, ok := selector(ev)
		if !ok {
			return zero, ErrIgnored
		}
		return msg, nil
	}
}
