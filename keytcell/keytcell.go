// Package keytcell bridges normalized browser keyboard events into
// tcell-based terminal programs, for hybrid applications that feed
// remote or embedded-webview input into a terminal UI event loop.
package keytcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/domkey/keyevent"
)

// specialKeys maps well-known identifiers to their tcell keys.
var specialKeys = map[keyevent.Identifier]tcell.Key{
	keyevent.KeyEnter:      tcell.KeyEnter,
	keyevent.KeyEscape:     tcell.KeyEscape,
	keyevent.KeyTab:        tcell.KeyTab,
	keyevent.KeyBackspace:  tcell.KeyBackspace2,
	keyevent.KeyDelete:     tcell.KeyDelete,
	keyevent.KeyInsert:     tcell.KeyInsert,
	keyevent.KeyHome:       tcell.KeyHome,
	keyevent.KeyEnd:        tcell.KeyEnd,
	keyevent.KeyPageUp:     tcell.KeyPgUp,
	keyevent.KeyPageDown:   tcell.KeyPgDn,
	keyevent.KeyArrowUp:    tcell.KeyUp,
	keyevent.KeyArrowDown:  tcell.KeyDown,
	keyevent.KeyArrowLeft:  tcell.KeyLeft,
	keyevent.KeyArrowRight: tcell.KeyRight,
	keyevent.KeyF1:         tcell.KeyF1,
	keyevent.KeyF2:         tcell.KeyF2,
	keyevent.KeyF3:         tcell.KeyF3,
	keyevent.KeyF4:         tcell.KeyF4,
	keyevent.KeyF5:         tcell.KeyF5,
	keyevent.KeyF6:         tcell.KeyF6,
	keyevent.KeyF7:         tcell.KeyF7,
	keyevent.KeyF8:         tcell.KeyF8,
	keyevent.KeyF9:         tcell.KeyF9,
	keyevent.KeyF10:        tcell.KeyF10,
	keyevent.KeyF11:        tcell.KeyF11,
	keyevent.KeyF12:        tcell.KeyF12,
}

// Event converts a normalized keyboard event to a tcell key event.
//
// Identifiers with a tcell equivalent map directly; otherwise a single-rune
// key name becomes a tcell.KeyRune event. Events with neither (unidentified
// codes, multi-character names like "Dead") report ok=false and should be
// dropped by the caller.
func Event(ev keyevent.KeyboardEvent) (*tcell.EventKey, bool) {
	mods := modMask(ev)

	if k, ok := specialKeys[ev.KeyCode]; ok {
		return tcell.NewEventKey(k, 0, mods), true
	}

	if ev.HasKey {
		if r := []rune(ev.Key); len(r) == 1 {
			return tcell.NewEventKey(tcell.KeyRune, r[0], mods), true
		}
	}

	return nil, false
}

// modMask converts the event's modifier flags to a tcell.ModMask.
func modMask(ev keyevent.KeyboardEvent) tcell.ModMask {
	var mods tcell.ModMask
	if ev.ShiftKey {
		mods |= tcell.ModShift
	}
	if ev.CtrlKey {
		mods |= tcell.ModCtrl
	}
	if ev.AltKey {
		mods |= tcell.ModAlt
	}
	if ev.MetaKey {
		mods |= tcell.ModMeta
	}
	return mods
}
