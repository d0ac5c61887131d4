package utils

import "testing"

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"empty", "", ""},
		{"valid", "blur_x", "blur_x"},
		{"leading digit", "2d", "_2d"},
		{"dots", "f.s0.x", "f_s0_x"},
		{"unicode", "αβ", "__"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIdentifier(tt.input); got != tt.want {
				t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVarNameMatch(t *testing.T) {
	tests := []struct {
		candidate, name string
		want            bool
	}{
		{"x", "x", true},
		{"f.s0.x", "x", true},
		{"f.s0.xx", "x", false},
		{"f.s0.x.xi", "xi", true},
		{"f.s0.x.xi", "x", false},
		{"xi", "x", false},
		{"x", "f.s0.x", false},
	}
	for _, tt := range tests {
		if got := VarNameMatch(tt.candidate, tt.name); got != tt.want {
			t.Errorf("VarNameMatch(%q, %q) = %v, want %v", tt.candidate, tt.name, got, tt.want)
		}
	}
}
