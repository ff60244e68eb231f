package assets

import (
	"errors"
	"testing"
)

func TestValidateFontName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "goregular", false},
		{"hyphenated", "go-mono", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateFontName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidFontName) {
				t.Errorf("ValidateFontName(%q) error = %v, want ErrInvalidFontName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateFontName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateTrueType(t *testing.T) {
	t.Parallel()

	pad := make([]byte, 8)

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"truetype 1.0 tag", append([]byte{0, 1, 0, 0}, pad...), false},
		{"apple true tag", append([]byte("true"), pad...), false},
		{"cff opentype", append([]byte("OTTO"), pad...), true},
		{"collection", append([]byte("ttcf"), pad...), true},
		{"too short", []byte{0, 1, 0, 0}, true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTrueType(tt.data)
			if tt.wantErr && !errors.Is(err, ErrUnsupportedFont) {
				t.Errorf("ValidateTrueType() error = %v, want ErrUnsupportedFont", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateTrueType() unexpected error: %v", err)
			}
		})
	}
}
