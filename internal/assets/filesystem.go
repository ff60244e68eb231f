package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MaxFontSize caps font files at 64MB; CJK fonts run to ~20MB.
const MaxFontSize = 64 << 20

// FilesystemLoader loads TrueType fonts from disk.
// Implements Loader interface.
type FilesystemLoader struct{}

// NewFilesystemLoader creates a FilesystemLoader.
func NewFilesystemLoader() *FilesystemLoader {
	return &FilesystemLoader{}
}

// LoadFont reads and validates the font file at path.
// The returned Font is named after the file, without extension.
func (f *FilesystemLoader) LoadFont(path string) (*Font, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFontNotFound)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontRead, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFontNotFound, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrFontRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFontNotFound, absPath)
	}
	if info.Size() > MaxFontSize {
		return nil, fmt.Errorf("%w: %s (%d bytes, max %d)", ErrFontTooLarge, absPath, info.Size(), MaxFontSize)
	}

	data, err := os.ReadFile(absPath) // #nosec G304 -- font path is user configuration
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontRead, err)
	}

	if err := ValidateTrueType(data); err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}

	name := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))
	return &Font{Name: name, Source: absPath, Data: data}, nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
