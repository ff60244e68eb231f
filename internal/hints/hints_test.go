package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForFontNotFound(t *testing.T) {
	t.Parallel()

	t.Run("lists embedded fonts", func(t *testing.T) {
		t.Parallel()

		hint := ForFontNotFound([]string{"gomono", "goregular"})
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint %q missing prefix", hint)
		}
		if !strings.Contains(hint, "--font") {
			t.Errorf("hint %q should mention --font", hint)
		}
		if !strings.Contains(hint, "embedded: gomono, goregular") {
			t.Errorf("hint %q should list embedded fonts", hint)
		}
	})

	t.Run("no embedded fonts", func(t *testing.T) {
		t.Parallel()

		hint := ForFontNotFound(nil)
		if strings.Contains(hint, "embedded:") {
			t.Errorf("hint %q should not list embedded fonts", hint)
		}
		if strings.Count(hint, "hint:") != 1 {
			t.Errorf("hint %q should have exactly one prefix", hint)
		}
	})
}

func TestForInputExtension(t *testing.T) {
	t.Parallel()

	if got := ForInputExtension(nil); got != "" {
		t.Errorf("ForInputExtension(nil) = %q, want empty", got)
	}

	hint := ForInputExtension([]string{".md", ".markdown", ".txt"})
	if !strings.Contains(hint, ".md, .markdown, .txt") {
		t.Errorf("hint %q should list extensions", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("/home/u", ".config", "go-mdpdf", "work.yaml")

	tests := []struct {
		name       string
		paths      []string
		wantCreate bool
	}{
		{"suggests user config path", []string{"work.yaml", "work.yml", userPath}, true},
		{"local paths only", []string{"work.yaml", "work.yml"}, false},
		{"no paths", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "--config") {
				t.Errorf("hint %q should mention --config", hint)
			}
			gotCreate := strings.Contains(hint, "or create "+userPath)
			if gotCreate != tt.wantCreate {
				t.Errorf("hint %q: create suggestion = %v, want %v", hint, gotCreate, tt.wantCreate)
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"font unsupported", ForFontUnsupported(), "TrueType"},
		{"invalid utf8", ForInvalidUTF8(), "UTF-8"},
		{"output directory", ForOutputDirectory(), "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q should contain %q", tt.hint, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints = %q", got)
	}
}
