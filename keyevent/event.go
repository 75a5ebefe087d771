package keyevent

import "strings"

// Identifier is the symbolic, type-safe representation of a key after
// translating its numeric code. Values follow the W3C KeyboardEvent.key
// naming style ("Enter", "ArrowUp").
type Identifier string

// Well-known identifiers. The numeric-code-to-identifier table is supplied
// by the caller (see TranslateFunc); these constants only name the values
// such tables conventionally produce.
const (
	// KeyUnidentified is the conventional identifier for a code with no
	// known mapping, including the code 0 produced when a raw event
	// carries no code field at all.
	KeyUnidentified Identifier = "Unidentified"

	KeyEnter     Identifier = "Enter"
	KeyEscape    Identifier = "Escape"
	KeyTab       Identifier = "Tab"
	KeyBackspace Identifier = "Backspace"
	KeyDelete    Identifier = "Delete"
	KeyInsert    Identifier = "Insert"
	KeySpace     Identifier = "Space"

	KeyHome     Identifier = "Home"
	KeyEnd      Identifier = "End"
	KeyPageUp   Identifier = "PageUp"
	KeyPageDown Identifier = "PageDown"

	KeyArrowUp    Identifier = "ArrowUp"
	KeyArrowDown  Identifier = "ArrowDown"
	KeyArrowLeft  Identifier = "ArrowLeft"
	KeyArrowRight Identifier = "ArrowRight"

	KeyF1  Identifier = "F1"
	KeyF2  Identifier = "F2"
	KeyF3  Identifier = "F3"
	KeyF4  Identifier = "F4"
	KeyF5  Identifier = "F5"
	KeyF6  Identifier = "F6"
	KeyF7  Identifier = "F7"
	KeyF8  Identifier = "F8"
	KeyF9  Identifier = "F9"
	KeyF10 Identifier = "F10"
	KeyF11 Identifier = "F11"
	KeyF12 Identifier = "F12"
)

// TranslateFunc maps a numeric key code to its symbolic identifier.
// Implementations must be pure; the decoder calls them once per event.
type TranslateFunc func(code int) Identifier

// KeyboardEvent is a normalized keyboard event. It is an immutable value
// with no identity beyond its fields; construct one per raw event via
// Decoder.Decode and discard it after handling.
type KeyboardEvent struct {
	// AltKey reports whether Alt (Option on macOS) was held.
	AltKey bool

	// CtrlKey reports whether Control was held.
	CtrlKey bool

	// Key is the human-readable key name, when the raw event carried one.
	// It is only meaningful when HasKey is true and is never the empty
	// string in that case.
	Key string

	// HasKey reports whether the raw event carried a usable key name.
	HasKey bool

	// KeyCode is the symbolic identifier for the event's numeric code.
	KeyCode Identifier

	// MetaKey reports whether Meta (Cmd on macOS, Win on Windows) was held.
	MetaKey bool

	// Repeat reports whether the event came from key auto-repeat.
	Repeat bool

	// ShiftKey reports whether Shift was held.
	ShiftKey bool
}

// Modified returns true if any of Alt, Ctrl, or Meta was held. Shift is not
// counted; for character keys it changes the character itself.
func (e KeyboardEvent) Modified() bool {
	return e.AltKey || e.CtrlKey || e.MetaKey
}

// Equals returns true if two events are structurally equal.
func (e KeyboardEvent) Equals(other KeyboardEvent) bool {
	return e == other
}

// String returns a compact representation like "Ctrl+Enter" or
// "Alt+Shift+ArrowUp (repeat)".
func (e KeyboardEvent) String() string {
	var parts []string
	if e.CtrlKey {
		parts = append(parts, "Ctrl")
	}
	if e.AltKey {
		parts = append(parts, "Alt")
	}
	if e.MetaKey {
		parts = append(parts, "Meta")
	}
	if e.ShiftKey {
		parts = append(parts, "Shift")
	}

	name := string(e.KeyCode)
	if e.HasKey {
		name = e.Key
	}
	parts = append(parts, name)

	s := strings.Join(parts, "+")
	if e.Repeat {
		s += " (repeat)"
	}
	return s
}
