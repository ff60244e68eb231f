package main

import (
	"errors"
	"strings"

	"github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/config"
	"github.com/alnah/go-mdpdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("unsupported input extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputDir          = errors.New("failed to create output directory")
	ErrWritePDF           = errors.New("failed to write PDF file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrConverterInit      = errors.New("failed to initialize converter")
	ErrConversionFailed   = errors.New("conversion failed")
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, assets.ErrFontNotFound), errors.Is(err, assets.ErrInvalidFontName):
		return hints.ForFontNotFound(mdpdf.EmbeddedFonts())
	case errors.Is(err, assets.ErrUnsupportedFont):
		return hints.ForFontUnsupported()
	case errors.Is(err, mdpdf.ErrDecoding):
		return hints.ForInvalidUTF8()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForInputExtension(mdpdf.MarkdownExtensions)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err.Error()))
	case errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}

// triedPaths extracts the search list from a config-not-found message.
func triedPaths(msg string) []string {
	_, list, ok := strings.Cut(msg, "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
