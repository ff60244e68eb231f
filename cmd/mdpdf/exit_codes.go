package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/config"
	"github.com/alnah/go-mdpdf/internal/pdftext"
)

// Exit codes for the mdpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, undecodable input
	ExitRender  = 4 // Font loading or PDF rendering errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4); checked first since a missing font file also
	// carries os.ErrNotExist
	if errors.Is(err, mdpdf.ErrFontLoad) ||
		errors.Is(err, mdpdf.ErrRender) {
		return ExitRender
	}

	// Usage/config/validation errors (exit 2); before I/O since a missing
	// config file is a usage problem
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, mdpdf.ErrInvalidPageSize) ||
		errors.Is(err, mdpdf.ErrInvalidOrientation) ||
		errors.Is(err, mdpdf.ErrInvalidMargin) ||
		errors.Is(err, mdpdf.ErrInvalidStyle) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdpdf.ErrFileAccess) ||
		errors.Is(err, mdpdf.ErrDecoding) ||
		errors.Is(err, pdftext.ErrOpen) ||
		errors.Is(err, pdftext.ErrExtract) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	return ExitGeneral
}
