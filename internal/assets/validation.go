package assets

import (
	"bytes"
	"fmt"
	"strings"
)

// ValidateFontName checks that an embedded font name is a plain identifier.
func ValidateFontName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFontName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidFontName, name)
	}
	return nil
}

// sfnt version tags accepted by the PDF writer. CFF-flavoured OpenType ("OTTO")
// and collections ("ttcf") are rejected because only glyf outlines are embedded.
var trueTypeTags = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("true"),
}

// ValidateTrueType checks the sfnt header of data.
func ValidateTrueType(data []byte) error {
	if len(data) < 12 {
		return fmt.Errorf("%w: %d bytes is too short for a font header", ErrUnsupportedFont, len(data))
	}
	for _, tag := range trueTypeTags {
		if bytes.Equal(data[:4], tag) {
			return nil
		}
	}
	return fmt.Errorf("%w: sfnt tag %q (want TrueType outlines)", ErrUnsupportedFont, data[:4])
}
