package keylua

import (
	"errors"
	"testing"

	"github.com/dshills/domkey/keyevent"
)

func enterEvent() keyevent.KeyboardEvent {
	return keyevent.KeyboardEvent{
		Key:     "Enter",
		HasKey:  true,
		KeyCode: keyevent.KeyEnter,
	}
}

func TestNewSelectorNotAFunction(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"returns nothing", "local x = 1"},
		{"returns a string", `return "hello"`},
		{"returns a number", "return 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSelector(tt.source); !errors.Is(err, ErrNotAFunction) {
				t.Errorf("NewSelector() error = %v, want ErrNotAFunction", err)
			}
		})
	}
}

func TestNewSelectorBadSyntax(t *testing.T) {
	if _, err := NewSelector("return function("); err == nil {
		t.Fatal("NewSelector() succeeded with invalid Lua")
	}
}

func TestSelectString(t *testing.T) {
	sel, err := NewSelector(`
		return function(ev)
			if ev.keyCode == "Enter" then
				return "submit"
			end
		end
	`)
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	defer sel.Close()

	msg, ok, err := sel.Select(enterEvent())
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !ok || msg != "submit" {
		t.Errorf("Select() = (%q, %v), want (%q, true)", msg, ok, "submit")
	}
}

func TestSelectDeclines(t *testing.T) {
	sel, err := NewSelector(`
		return function(ev)
			if ev.keyCode == "Escape" then
				return "cancel"
			end
		end
	`)
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	defer sel.Close()

	_, ok, err := sel.Select(enterEvent())
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if ok {
		t.Error("Select() accepted an event the script declined")
	}
}

func TestSelectModifiersAndRepeat(t *testing.T) {
	sel, err := NewSelector(`
		return function(ev)
			if ev.ctrlKey and not ev["repeat"] then
				return "ctrl"
			end
		end
	`)
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	defer sel.Close()

	ev := enterEvent()
	ev.CtrlKey = true

	if msg, ok, _ := sel.Select(ev); !ok || msg != "ctrl" {
		t.Errorf("Select() = (%q, %v), want (%q, true)", msg, ok, "ctrl")
	}

	ev.Repeat = true
	if _, ok, _ := sel.Select(ev); ok {
		t.Error("Select() accepted a repeat event the script declines")
	}
}

func TestSelectMissingKeyIsNil(t *testing.T) {
	sel, err := NewSelector(`
		return function(ev)
			if ev.key == nil then
				return "no name"
			end
		end
	`)
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	defer sel.Close()

	ev := keyevent.KeyboardEvent{KeyCode: keyevent.KeyUnidentified}
	if msg, ok, _ := sel.Select(ev); !ok || msg != "no name" {
		t.Errorf("Select() = (%q, %v), want (%q, true)", msg, ok, "no name")
	}
}

func TestSelectRuntimeError(t *testing.T) {
	sel, err := NewSelector(`
		return function(ev)
			error("boom")
		end
	`)
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	defer sel.Close()

	_, ok, err := sel.Select(enterEvent())
	if err == nil {
		t.Fatal("Select() did not surface the Lua runtime error")
	}
	if ok {
		t.Error("Select() accepted an event despite the runtime error")
	}
}

func TestSelectorClosed(t *testing.T) {
	sel, err := NewSelector("return function(ev) return 'x' end")
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	sel.Close()

	if _, _, err := sel.Select(enterEvent()); !errors.Is(err, ErrSelectorClosed) {
		t.Errorf("Select() error = %v, want ErrSelectorClosed", err)
	}
}

func TestSelectorWithConsider(t *testing.T) {
	sel, err := NewSelector(`
		return function(ev)
			if ev.keyCode == "Enter" then
				return "submit"
			end
		end
	`)
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	defer sel.Close()

	dec := keyevent.NewDecoder(func(code int) keyevent.Identifier {
		if code == 13 {
			return keyevent.KeyEnter
		}
		return keyevent.KeyUnidentified
	})
	decode := keyevent.Consider(dec, sel.Func())

	raw := keyevent.RawEvent{
		"keyCode": 13, "altKey": false, "ctrlKey": false,
		"metaKey": false, "repeat": false, "shiftKey": false,
	}
	msg, err := decode(raw)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if msg != "submit" {
		t.Errorf("msg = %q, want %q", msg, "submit")
	}

	raw["keyCode"] = 1
	if _, err := decode(raw); !errors.Is(err, keyevent.ErrIgnored) {
		t.Errorf("decode error = %v, want ErrIgnored", err)
	}
}
