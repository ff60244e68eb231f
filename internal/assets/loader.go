package assets

// Font is a loaded TrueType font.
type Font struct {
	Name   string // Family name registered in the PDF
	Source string // Embedded name or absolute file path
	Data   []byte // Raw TrueType bytes (read-only, shared between documents)
}

// Loader defines the contract for loading fonts.
// Implementations may load from embedded assets, filesystem, etc.
type Loader interface {
	// LoadFont loads a font by embedded name or file path.
	// Returns ErrFontNotFound if the font does not exist.
	LoadFont(source string) (*Font, error)
}
