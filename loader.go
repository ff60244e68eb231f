package mdpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxMarkdownSize caps the input file size.
const MaxMarkdownSize = 32 << 20

// MarkdownExtensions lists the file extensions accepted as Markdown input.
var MarkdownExtensions = []string{".md", ".markdown", ".txt"}

// IsMarkdownFile reports whether path has an accepted extension (case-insensitive).
func IsMarkdownFile(path string) bool {
	return slices.Contains(MarkdownExtensions, strings.ToLower(filepath.Ext(path)))
}

// LoadMarkdown reads the whole file at path and returns it as a string.
// Fails with ErrFileAccess when the file is missing, unreadable, a directory
// or too large; errors.Is(err, fs.ErrNotExist) still holds for a missing file.
// Fails with ErrDecoding when the content is not valid UTF-8.
func LoadMarkdown(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrFileAccess, path)
	}
	if info.Size() > MaxMarkdownSize {
		return "", fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFileAccess, path, info.Size(), MaxMarkdownSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: invalid byte at offset %d", ErrDecoding, path, invalidUTF8Offset(data))
	}

	return string(data), nil
}

// invalidUTF8Offset returns the index of the first byte that does not start a
// valid UTF-8 sequence, or -1.
func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
