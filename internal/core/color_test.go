package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"orange", ColorOrange, true},
		{"bright_yellow", ColorBrightYellow, true},
		{"default", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
