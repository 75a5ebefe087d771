// Package keyevent decodes raw browser keyboard events into normalized,
// strongly-typed records.
//
// A raw event is the loosely-typed key/value bag a browser (or the bridge in
// front of one) delivers for a key press: some mix of the legacy numeric
// fields keyCode, which, and charCode, the modern key name, and the five
// modifier flags. None of those fields can be trusted to be present or
// correctly typed. This package turns that bag into a KeyboardEvent:
//
//   - The numeric code is resolved through an ordered fallback chain
//     (keyCode, then which, then charCode), skipping absent, mistyped, and
//     zero values, and defaulting to 0 when no field yields a code.
//   - The numeric code is mapped to a symbolic Identifier through an
//     injected TranslateFunc. The code-to-identifier table itself lives
//     outside this package (see the keytable package for one source).
//   - The key name is optional: an absent, mistyped, or empty key field
//     normalizes to "no key name", never to an empty string.
//   - The five modifier flags (altKey, ctrlKey, metaKey, repeat, shiftKey)
//     are required booleans. A missing or mistyped flag fails the whole
//     decode; no partial records are produced.
//
// Decode failures carry one of two categories. Malformed input surfaces as a
// *FieldError matching ErrMalformed. The Consider combinator additionally
// fails with ErrIgnored when the caller's selector declines an event, so an
// integration layer can drop declined events silently while still reporting
// genuinely bad input:
//
//	decode := keyevent.Consider(dec, func(ev keyevent.KeyboardEvent) (Msg, bool) {
//		if ev.KeyCode == keyevent.KeyEnter && !ev.Repeat {
//			return SubmitMsg{}, true
//		}
//		return nil, false
//	})
//
//	msg, err := decode(raw)
//	switch {
//	case errors.Is(err, keyevent.ErrIgnored):
//		// not interested, drop silently
//	case err != nil:
//		// malformed event
//	}
//
// Decoding is pure and stateless; a Decoder is safe for concurrent use.
package keyevent
