package mdpdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/pipeline"
	"github.com/alnah/go-mdpdf/internal/render"
)

// Page size constants.
const (
	PageSizeA4     = render.PageSizeA4
	PageSizeLetter = render.PageSizeLetter
	PageSizeLegal  = render.PageSizeLegal
)

// Orientation constants.
const (
	OrientationPortrait  = render.OrientationPortrait
	OrientationLandscape = render.OrientationLandscape
)

// Margin bounds in millimetres.
const (
	MinMargin     = render.MinMargin
	MaxMargin     = render.MaxMargin
	DefaultMargin = render.DefaultMargin
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // mm, applied to left, top and right
}

// DefaultPageSettings returns A4 portrait with 10mm margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.1f (must be between %.0f and %.0f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

func (p *PageSettings) layout() render.PageLayout {
	if p == nil {
		return render.DefaultPageLayout()
	}
	return render.PageLayout{
		Size:        strings.ToLower(p.Size),
		Orientation: strings.ToLower(p.Orientation),
		Margin:      p.Margin,
	}
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Element is one allow-listed block of the rendered document.
type Element = pipeline.Element

// ElementKind identifies an allow-listed HTML element.
type ElementKind = pipeline.ElementKind

// Element kinds, in the order they are declared.
const (
	H1         = pipeline.H1
	H2         = pipeline.H2
	H3         = pipeline.H3
	Paragraph  = pipeline.Paragraph
	ListItem   = pipeline.ListItem
	InlineCode = pipeline.InlineCode
	CodeBlock  = pipeline.CodeBlock
)

// Style maps each ElementKind to font size, spacing and line height.
type Style = render.Style

// KindStyle is the typography of one ElementKind.
type KindStyle = render.KindStyle

// DefaultStyle returns the built-in typography: H1 16pt, H2 14pt, H3 12pt,
// paragraphs and list items 12pt, code 10pt.
func DefaultStyle() Style {
	return render.DefaultStyle()
}

// Font is a loaded TrueType font.
type Font = assets.Font

// FontLoader resolves a font source (embedded name or file path) to font bytes.
type FontLoader = assets.Loader

// HTMLConverter turns Markdown into an HTML document.
type HTMLConverter = pipeline.HTMLConverter

// DefaultFont is the embedded font used when no font is configured.
const DefaultFont = assets.DefaultFontName

// EmbeddedFonts lists the font names available without a file.
func EmbeddedFonts() []string {
	return assets.EmbeddedFontNames()
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (may be empty)
	Title    string // PDF title (optional, overrides WithDocumentInfo and the first H1)
	Author   string // PDF author (optional, overrides WithDocumentInfo)
	HTMLOnly bool   // Skip PDF generation
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML     []byte              // Intermediate HTML document
	PDF      []byte              // Nil when Input.HTMLOnly is set
	Elements []Element           // Elements drawn, in document order
	Pages    int                 // Page count of PDF
	Title    string              // Title written to the PDF metadata
	ByKind   map[ElementKind]int // Element count per kind
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	fontSource string
	page       *PageSettings
	style      *Style
	title      string
	author     string
	creator    string
}

// defaultCreator is written to the PDF Creator entry.
const defaultCreator = "go-mdpdf"

// WithFont selects the font by embedded name ("goregular", "gomono", ...)
// or by path to a TrueType file. Empty means DefaultFont.
func WithFont(source string) Option {
	return func(c *Converter) {
		c.cfg.fontSource = source
	}
}

// WithFontLoader replaces the font resolver.
// Useful for serving fonts from a custom store.
func WithFontLoader(loader FontLoader) Option {
	return func(c *Converter) {
		if loader != nil {
			c.fontLoader = loader
		}
	}
}

// WithPage sets page size, orientation and margin. Nil keeps the defaults.
func WithPage(p *PageSettings) Option {
	return func(c *Converter) {
		c.cfg.page = p
	}
}

// WithStyle replaces the per-kind typography.
func WithStyle(s Style) Option {
	return func(c *Converter) {
		c.cfg.style = &s
	}
}

// WithDocumentInfo sets the default PDF title and author.
// An empty title falls back to the first H1 of each document.
func WithDocumentInfo(title, author string) Option {
	return func(c *Converter) {
		c.cfg.title = title
		c.cfg.author = author
	}
}

// WithCreator sets the PDF Creator entry.
func WithCreator(creator string) Option {
	return func(c *Converter) {
		c.cfg.creator = creator
	}
}

// WithClock sets the time source for the PDF creation date.
// A fixed clock makes output byte-for-byte reproducible.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// WithHTMLConverter replaces the Markdown renderer.
func WithHTMLConverter(h HTMLConverter) Option {
	return func(c *Converter) {
		if h != nil {
			c.htmlConverter = h
		}
	}
}
