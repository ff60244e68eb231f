package assets

import "errors"

// Sentinel errors for font operations.
var (
	// ErrFontNotFound indicates the font name or file does not exist.
	ErrFontNotFound = errors.New("font not found")

	// ErrInvalidFontName indicates the embedded font name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidFontName = errors.New("invalid font name")

	// ErrFontRead indicates an I/O error occurred while reading a font file.
	ErrFontRead = errors.New("failed to read font")

	// ErrUnsupportedFont indicates the data is not a TrueType font.
	ErrUnsupportedFont = errors.New("unsupported font format")

	// ErrFontTooLarge indicates the font file exceeds MaxFontSize.
	ErrFontTooLarge = errors.New("font file too large")
)
