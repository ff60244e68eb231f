// Package pdftext reads the text layer back out of a PDF, page by page.
//
// It only sees text drawn with fonts that carry a ToUnicode map, which every
// document produced by this module does.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Sentinel errors for extraction.
var (
	ErrOpen    = errors.New("failed to open PDF")
	ErrExtract = errors.New("failed to extract PDF text")
)

// Page is the text of one page.
type Page struct {
	Number    int       // 1-based
	Text      string    // plain text in content-stream order
	FontSizes []float64 // distinct font sizes used on the page, ascending
}

// ExtractFile reads every page of the PDF at path.
func ExtractFile(path string) ([]Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}
	defer func() { _ = f.Close() }()

	return extract(r)
}

// Extract reads every page of an in-memory PDF.
func Extract(data []byte) ([]Page, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return extract(r)
}

// extract walks the pages. The reader panics on some malformed streams.
func extract(r *pdf.Reader) (pages []Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrExtract, rec)
		}
	}()

	numPages := r.NumPage()
	pages = make([]Page, 0, numPages)

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		text, pageErr := p.GetPlainText(pageFonts(p))
		if pageErr != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrExtract, i, pageErr)
		}

		pages = append(pages, Page{
			Number:    i,
			Text:      text,
			FontSizes: fontSizes(p),
		})
	}
	return pages, nil
}

// pageFonts maps the font resource names of p. Names are only unique within
// a page: another writer may bind F1 to different fonts on different pages.
func pageFonts(p pdf.Page) map[string]*pdf.Font {
	names := p.Fonts()
	fonts := make(map[string]*pdf.Font, len(names))
	for _, name := range names {
		font := p.Font(name)
		fonts[name] = &font
	}
	return fonts
}

func fontSizes(p pdf.Page) []float64 {
	var sizes []float64
	for _, t := range p.Content().Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		if !slices.Contains(sizes, t.FontSize) {
			sizes = append(sizes, t.FontSize)
		}
	}
	slices.Sort(sizes)
	return sizes
}

// Texts returns the text of each page.
func Texts(pages []Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Text
	}
	return out
}
