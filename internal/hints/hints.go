// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// configDirMarker identifies the per-user config location among searched paths.
var configDirMarker = filepath.Join(".config", "go-mdpdf")

// ForFontNotFound returns hints for a font source that could not be located.
// available lists the embedded font names.
func ForFontNotFound(available []string) string {
	hints := []string{"use --font /path/to/font.ttf"}
	if len(available) > 0 {
		hints = append(hints, "embedded: "+strings.Join(available, ", "))
	}
	return formatHints(hints)
}

// ForFontUnsupported returns a hint for font files fpdf cannot embed.
func ForFontUnsupported() string {
	return format("only TrueType outlines (.ttf) are supported; CFF-based .otf fonts are not")
}

// ForInvalidUTF8 returns a hint for input files that are not UTF-8.
func ForInvalidUTF8() string {
	return format("re-encode the file as UTF-8, e.g. iconv -f LATIN1 -t UTF-8 in.md > out.md")
}

// ForInputExtension returns a hint listing accepted input extensions.
func ForInputExtension(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("accepted extensions: " + strings.Join(extensions, ", "))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdpdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, configDirMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
