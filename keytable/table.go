// Package keytable builds code-to-identifier translation tables from user
// configuration. The table contents are always caller-supplied; this
// package only provides the plumbing (TOML loading, live reload) around
// them.
package keytable

import (
	"maps"

	"github.com/dshills/domkey/keyevent"
)

// Table maps numeric key codes to symbolic identifiers. Tables are
// immutable after construction and safe for concurrent use.
type Table struct {
	ids      map[int]keyevent.Identifier
	fallback keyevent.Identifier
}

// New creates a table from the given mapping. Codes with no entry resolve
// to keyevent.KeyUnidentified. The mapping is copied; later mutation of the
// argument does not affect the table.
func New(mapping map[int]keyevent.Identifier) *Table {
	return NewWithFallback(mapping, keyevent.KeyUnidentified)
}

// NewWithFallback creates a table with a custom fallback identifier for
// unmapped codes.
func NewWithFallback(mapping map[int]keyevent.Identifier, fallback keyevent.Identifier) *Table {
	return &Table{
		ids:      maps.Clone(mapping),
		fallback: fallback,
	}
}

// Lookup resolves a numeric code to its identifier, or the fallback when
// the code has no entry.
func (t *Table) Lookup(code int) keyevent.Identifier {
	if id, ok := t.ids[code]; ok {
		return id
	}
	return t.fallback
}

// Func returns the table's lookup as a keyevent.TranslateFunc for injecting
// into a Decoder.
func (t *Table) Func() keyevent.TranslateFunc {
	return t.Lookup
}

// Len returns the number of mapped codes.
func (t *Table) Len() int {
	return len(t.ids)
}
