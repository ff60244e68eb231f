package mdpdf

import (
	"errors"

	"github.com/alnah/go-mdpdf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrFileAccess = errors.New("cannot read input file")
	ErrDecoding   = errors.New("input is not valid UTF-8")
	ErrFontLoad   = errors.New("failed to load font")
	ErrRender     = errors.New("PDF rendering failed")

	// ErrHTMLConversion is returned when the Markdown renderer fails.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Typography validation errors.
	ErrInvalidStyle = errors.New("invalid style")

	// Pool errors.
	ErrPoolClosed = errors.New("converter pool is closed")
)
