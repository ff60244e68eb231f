package assets

import (
	"fmt"
	"sort"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName is the embedded font used when no source is configured.
const DefaultFontName = "goregular"

var embeddedFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomedium":  gomedium.TTF,
	"gobold":    gobold.TTF,
	"gomono":    gomono.TTF,
}

// EmbeddedLoader loads the Go fonts compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadFont returns the embedded font registered under name.
func (e *EmbeddedLoader) LoadFont(name string) (*Font, error) {
	if err := ValidateFontName(name); err != nil {
		return nil, err
	}

	data, ok := embeddedFonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrFontNotFound, name, EmbeddedFontNames())
	}

	return &Font{Name: name, Source: name, Data: data}, nil
}

// EmbeddedFontNames lists the embedded font names in sorted order.
func EmbeddedFontNames() []string {
	names := make([]string, 0, len(embeddedFonts))
	for name := range embeddedFonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
