package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alnah/go-mdpdf/internal/assets"
)

// fontFamily is the name every document registers its single font under.
const fontFamily = "body"

// initialFontSize is the size set when the first page opens.
const initialFontSize = 12

// Drawer is the drawing half of a document: font, cursor and text.
type Drawer interface {
	// SetFont changes the size (points) of the document's single font family.
	SetFont(size float64)
	// AddVerticalSpace moves the cursor down h units and back to the left margin.
	AddVerticalSpace(h float64)
	// WriteCell writes text in a fixed-width cell and leaves the cursor to its right.
	WriteCell(w, h float64, text string)
	// WriteBlock writes text wrapped to the remaining line width, h units per line.
	WriteBlock(h float64, text string)
}

// DocumentBuilder is a Drawer that can be serialized exactly once.
type DocumentBuilder interface {
	Drawer
	PageCount() int
	Finish(w io.Writer) error
}

// PageLayout sets paper geometry. Units are millimetres.
type PageLayout struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // left, top and right margin
}

// Page size and orientation values.
const (
	PageSizeA4            = "a4"
	PageSizeLetter        = "letter"
	PageSizeLegal         = "legal"
	OrientationPortrait   = "portrait"
	OrientationLandscape  = "landscape"
	DefaultMargin         = 10.0
	MinMargin, MaxMargin  = 5.0, 50.0
	defaultPageBreakRatio = 2.0
)

// DefaultPageLayout returns fpdf's defaults: A4 portrait with 10mm margins.
func DefaultPageLayout() PageLayout {
	return PageLayout{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: DefaultMargin}
}

// Validate checks the layout values (case-insensitive).
func (p PageLayout) Validate() error {
	switch strings.ToLower(p.Size) {
	case PageSizeA4, PageSizeLetter, PageSizeLegal:
	default:
		return fmt.Errorf("%w: page size %q (must be a4, letter, or legal)", ErrInvalidPage, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: orientation %q (must be portrait or landscape)", ErrInvalidPage, p.Orientation)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: margin %.1fmm (must be between %.0f and %.0f)", ErrInvalidPage, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// Metadata is written to the PDF info dictionary.
type Metadata struct {
	Title   string
	Author  string
	Creator string
	Created time.Time // Zero leaves fpdf's current-time default
}

// BuilderConfig holds everything needed to open a document.
type BuilderConfig struct {
	Page     PageLayout
	Font     *assets.Font
	Metadata Metadata
}

// PDFBuilder is a DocumentBuilder backed by fpdf.
// Not safe for concurrent use.
type PDFBuilder struct {
	pdf     *fpdf.Fpdf
	written bool
}

// NewPDFBuilder registers the font and opens the first page.
// fpdf panics on some malformed TrueType tables; those panics surface as ErrFontRegister.
func NewPDFBuilder(cfg BuilderConfig) (b *PDFBuilder, err error) {
	if err := cfg.Page.Validate(); err != nil {
		return nil, err
	}
	if cfg.Font == nil || len(cfg.Font.Data) == 0 {
		return nil, fmt.Errorf("%w: no font data", ErrFontRegister)
	}

	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("%w: %s: %v", ErrFontRegister, cfg.Font.Source, r)
		}
	}()

	orientation := "P"
	if strings.EqualFold(cfg.Page.Orientation, OrientationLandscape) {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "mm", strings.ToLower(cfg.Page.Size), "")
	pdf.SetMargins(cfg.Page.Margin, cfg.Page.Margin, cfg.Page.Margin)
	pdf.SetAutoPageBreak(true, cfg.Page.Margin*defaultPageBreakRatio)
	pdf.SetCatalogSort(true)

	pdf.AddUTF8FontFromBytes(fontFamily, "", cfg.Font.Data)
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontRegister, cfg.Font.Source, pdf.Error())
	}

	applyMetadata(pdf, cfg.Metadata)

	pdf.AddPage()
	pdf.SetFont(fontFamily, "", initialFontSize)
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontRegister, cfg.Font.Source, pdf.Error())
	}

	return &PDFBuilder{pdf: pdf}, nil
}

func applyMetadata(pdf *fpdf.Fpdf, m Metadata) {
	if m.Title != "" {
		pdf.SetTitle(m.Title, true)
	}
	if m.Author != "" {
		pdf.SetAuthor(m.Author, true)
	}
	if m.Creator != "" {
		pdf.SetCreator(m.Creator, true)
	}
	if !m.Created.IsZero() {
		pdf.SetCreationDate(m.Created)
		pdf.SetModificationDate(m.Created)
	}
}

// SetTitle sets the document title. Valid until Finish.
func (b *PDFBuilder) SetTitle(title string) {
	b.pdf.SetTitle(title, true)
}

// SetFont implements Drawer.
func (b *PDFBuilder) SetFont(size float64) {
	b.pdf.SetFontSize(size)
}

// AddVerticalSpace implements Drawer.
func (b *PDFBuilder) AddVerticalSpace(h float64) {
	b.pdf.Ln(h)
}

// WriteCell implements Drawer.
func (b *PDFBuilder) WriteCell(w, h float64, text string) {
	b.pdf.CellFormat(w, h, text, "", 0, "L", false, 0, "")
}

// WriteBlock implements Drawer. Width 0 extends the block to the right margin.
func (b *PDFBuilder) WriteBlock(h float64, text string) {
	b.pdf.MultiCell(0, h, text, "", "L", false)
}

// PageCount returns the number of pages opened so far.
func (b *PDFBuilder) PageCount() int {
	return b.pdf.PageCount()
}

// Finish serializes the document to w. The builder is unusable afterwards.
func (b *PDFBuilder) Finish(w io.Writer) error {
	if b.written {
		return ErrBuilderFinished
	}
	b.written = true

	if b.pdf.Err() {
		return fmt.Errorf("%w: %v", ErrOutput, b.pdf.Error())
	}
	if err := b.pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}

// Compile-time interface check.
var _ DocumentBuilder = (*PDFBuilder)(nil)
