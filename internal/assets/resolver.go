package assets

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdpdf/internal/fileutil"
)

// Resolver dispatches a font source to the embedded or filesystem loader.
type Resolver struct {
	embedded   Loader
	filesystem Loader
}

// NewResolver creates a Resolver over the embedded fonts and the filesystem.
func NewResolver() *Resolver {
	return &Resolver{
		embedded:   NewEmbeddedLoader(),
		filesystem: NewFilesystemLoader(),
	}
}

// LoadFont resolves source: empty selects DefaultFontName, paths go to the
// filesystem loader, bare names to the embedded loader. No fallback between them.
func (r *Resolver) LoadFont(source string) (*Font, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return r.embedded.LoadFont(DefaultFontName)
	}
	if IsFontPath(source) {
		return r.filesystem.LoadFont(source)
	}
	return r.embedded.LoadFont(source)
}

// IsFontPath reports whether source names a file rather than an embedded font.
func IsFontPath(source string) bool {
	if fileutil.IsFilePath(source) {
		return true
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
