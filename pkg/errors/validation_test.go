package errors

import (
	"testing"
)

func TestValidateResourceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid output", "ocean_lr_1700000000.svg", false},
		{"valid nested", "ocean_tb3_1700000000.svg", false},
		{"valid temp", "tmp_ocean_lr_1700000000_0190a1b2.svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"with path /", "out/ocean.svg", true},
		{"with path \\", "out\\ocean.svg", true},
		{"traversal", "..svg", true},
		{"hidden file", ".ocean.svg", true},
		{"null byte", "ocean\x00.svg", true},
		{"newline", "ocean\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResourceName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateResourceName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateResourceName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateComponentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"number", "85", false},
		{"zero padded", "085", false},
		{"glyph", "水", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"path", "svg/085", true},
		{"traversal", "..", true},
		{"backslash", "a\\b", true},
		{"control char", "8\x015", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponentID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComponentID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
