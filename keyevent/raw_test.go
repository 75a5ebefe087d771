package keyevent

import (
	"encoding/json"
	"testing"
)

func TestRawEventCode(t *testing.T) {
	tests := []struct {
		name string
		raw  RawEvent
		want int
	}{
		{"keyCode wins", RawEvent{"keyCode": 65, "which": 66, "charCode": 67}, 65},
		{"zero keyCode skipped", RawEvent{"keyCode": 0, "which": 13, "charCode": 0}, 13},
		{"falls through to charCode", RawEvent{"keyCode": 0, "which": 0, "charCode": 97}, 97},
		{"all absent defaults to zero", RawEvent{}, 0},
		{"all zero defaults to zero", RawEvent{"keyCode": 0, "which": 0, "charCode": 0}, 0},
		{"non-numeric keyCode skipped", RawEvent{"keyCode": "13", "which": 27}, 27},
		{"nil field skipped", RawEvent{"keyCode": nil, "which": 27}, 27},
		{"float shape accepted", RawEvent{"keyCode": float64(38)}, 38},
		{"json.Number accepted", RawEvent{"which": json.Number("40")}, 40},
		{"fractional json.Number skipped", RawEvent{"keyCode": json.Number("1.5"), "which": 40}, 40},
		{"only charCode", RawEvent{"charCode": 112}, 112},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.Code(); got != tt.want {
				t.Errorf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRawEventKeyName(t *testing.T) {
	tests := []struct {
		name   string
		raw    RawEvent
		want   string
		wantOK bool
	}{
		{"present", RawEvent{"key": "Enter"}, "Enter", true},
		{"absent", RawEvent{}, "", false},
		{"empty normalizes to absent", RawEvent{"key": ""}, "", false},
		{"non-string normalizes to absent", RawEvent{"key": 13}, "", false},
		{"nil normalizes to absent", RawEvent{"key": nil}, "", false},
		{"single character", RawEvent{"key": "a"}, "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.raw.KeyName()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("KeyName() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
