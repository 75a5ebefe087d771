// Package keylua lets Consider selectors be written in embedded Lua.
//
// A selector script must return a function taking one event table and
// returning either a message string (handle the event) or nil (decline it):
//
//	return function(ev)
//		if ev.keyCode == "Enter" and not ev["repeat"] then
//			return "submit"
//		end
//	end
//
// The event table carries altKey, ctrlKey, metaKey, repeat, shiftKey
// (booleans), keyCode (string), and key (string, or nil when the event had
// no key name). Note that "repeat" is a Lua keyword, so scripts must index
// it as ev["repeat"].
package keylua

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/domkey/keyevent"
)

// Errors returned by selector construction and evaluation.
var (
	// ErrNotAFunction indicates the script did not return a function.
	ErrNotAFunction = errors.New("selector script must return a function")

	// ErrSelectorClosed indicates use of a closed selector.
	ErrSelectorClosed = errors.New("selector is closed")
)

// Selector evaluates a Lua function against normalized keyboard events.
//
// gopher-lua's LState is not goroutine-safe; Selector serializes all
// evaluation through a mutex, so a single Selector may be shared across
// goroutines at the cost of contention.
type Selector struct {
	mu     sync.Mutex
	state  *lua.LState
	fn     *lua.LFunction
	closed bool
}

// NewSelector compiles a selector script. The script runs once at
// construction and must return a function.
func NewSelector(source string) (*Selector, error) {
	L := lua.NewState()
	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("compiling selector: %w", err)
	}

	fn, ok := L.Get(-1).(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNotAFunction
	}
	L.Pop(1)

	return &Selector{state: L, fn: fn}, nil
}

// Select evaluates the selector against one event. A string return from the
// Lua function is the selected message (ok=true); nil, false, or any other
// value declines the event (ok=false). Lua runtime errors are returned as
// errors, with the event declined.
func (s *Selector) Select(ev keyevent.KeyboardEvent) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", false, ErrSelectorClosed
	}

	L := s.state
	L.Push(s.fn)
	L.Push(s.eventTable(ev))
	if err := L.PCall(1, 1, nil); err != nil {
		return "", false, fmt.Errorf("running selector: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	if msg, ok := ret.(lua.LString); ok {
		return string(msg), true, nil
	}
	return "", false, nil
}

// Func adapts the selector for keyevent.Consider. Runtime errors decline
// the event; use Select directly when errors must be observed.
func (s *Selector) Func() func(keyevent.KeyboardEvent) (string, bool) {
	return func(ev keyevent.KeyboardEvent) (string, bool) {
		msg, ok, err := s.Select(ev)
		if err != nil {
			return "", false
		}
		return msg, ok
	}
}

// Close releases the underlying Lua state.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.state.Close()
}

// eventTable converts a normalized event into a Lua table.
func (s *Selector) eventTable(ev keyevent.KeyboardEvent) *lua.LTable {
	L := s.state
	tbl := L.NewTable()
	L.SetField(tbl, "altKey", lua.LBool(ev.AltKey))
	L.SetField(tbl, "ctrlKey", lua.LBool(ev.CtrlKey))
	L.SetField(tbl, "metaKey", lua.LBool(ev.MetaKey))
	L.SetField(tbl, "repeat", lua.LBool(ev.Repeat))
	L.SetField(tbl, "shiftKey", lua.LBool(ev.ShiftKey))
	L.SetField(tbl, "keyCode", lua.LString(ev.KeyCode))
	if ev.HasKey {
		L.SetField(tbl, "key", lua.LString(ev.Key))
	}
	return tbl
}
