package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/alnah/go-mdpdf/internal/assets"
)

// Notes:
// - NewPDFBuilder recover branch: reaching fpdf's panic path needs a font that
//   passes the sfnt header check but breaks table parsing; not reproduced here.
// These are acceptable gaps: we test observable behavior, not implementation details.

func testFont() *assets.Font {
	return &assets.Font{Name: "goregular", Source: "goregular", Data: goregular.TTF}
}

func newTestBuilder(t *testing.T) *PDFBuilder {
	t.Helper()
	b, err := NewPDFBuilder(BuilderConfig{Page: DefaultPageLayout(), Font: testFont()})
	if err != nil {
		t.Fatalf("NewPDFBuilder() error = %v", err)
	}
	return b
}

// ---------------------------------------------------------------------------
// TestPageLayout_Validate
// ---------------------------------------------------------------------------

func TestPageLayout_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  PageLayout
		wantErr bool
	}{
		{"default", DefaultPageLayout(), false},
		{"letter landscape", PageLayout{Size: "letter", Orientation: "landscape", Margin: 20}, false},
		{"case insensitive", PageLayout{Size: "Legal", Orientation: "PORTRAIT", Margin: 10}, false},
		{"unknown size", PageLayout{Size: "a7", Orientation: "portrait", Margin: 10}, true},
		{"unknown orientation", PageLayout{Size: "a4", Orientation: "diagonal", Margin: 10}, true},
		{"margin too small", PageLayout{Size: "a4", Orientation: "portrait", Margin: 1}, true},
		{"margin too large", PageLayout{Size: "a4", Orientation: "portrait", Margin: 80}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.layout.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPage) {
					t.Errorf("Validate() error = %v, want ErrInvalidPage", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewPDFBuilder - Construction and font registration
// ---------------------------------------------------------------------------

func TestNewPDFBuilder(t *testing.T) {
	t.Parallel()

	t.Run("opens one page", func(t *testing.T) {
		t.Parallel()

		b := newTestBuilder(t)
		if got := b.PageCount(); got != 1 {
			t.Errorf("PageCount() = %d, want 1", got)
		}
	})

	t.Run("nil font", func(t *testing.T) {
		t.Parallel()

		_, err := NewPDFBuilder(BuilderConfig{Page: DefaultPageLayout()})
		if !errors.Is(err, ErrFontRegister) {
			t.Errorf("error = %v, want ErrFontRegister", err)
		}
	})

	t.Run("empty font data", func(t *testing.T) {
		t.Parallel()

		_, err := NewPDFBuilder(BuilderConfig{Page: DefaultPageLayout(), Font: &assets.Font{Name: "x"}})
		if !errors.Is(err, ErrFontRegister) {
			t.Errorf("error = %v, want ErrFontRegister", err)
		}
	})

	t.Run("invalid page layout", func(t *testing.T) {
		t.Parallel()

		_, err := NewPDFBuilder(BuilderConfig{Page: PageLayout{Size: "a9"}, Font: testFont()})
		if !errors.Is(err, ErrInvalidPage) {
			t.Errorf("error = %v, want ErrInvalidPage", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPDFBuilder_Finish - Serialization and terminal state
// ---------------------------------------------------------------------------

func TestPDFBuilder_Finish(t *testing.T) {
	t.Parallel()

	t.Run("writes PDF", func(t *testing.T) {
		t.Parallel()

		b := newTestBuilder(t)
		b.SetFont(16)
		b.AddVerticalSpace(10)
		b.WriteBlock(10, "Title")

		var buf bytes.Buffer
		if err := b.Finish(&buf); err != nil {
			t.Fatalf("Finish() error = %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("output does not start with %%PDF-: %q", buf.Bytes()[:min(16, buf.Len())])
		}
	})

	t.Run("second finish fails", func(t *testing.T) {
		t.Parallel()

		b := newTestBuilder(t)
		var buf bytes.Buffer
		if err := b.Finish(&buf); err != nil {
			t.Fatalf("first Finish() error = %v", err)
		}
		if err := b.Finish(&buf); !errors.Is(err, ErrBuilderFinished) {
			t.Errorf("second Finish() error = %v, want ErrBuilderFinished", err)
		}
	})

	t.Run("long content breaks pages", func(t *testing.T) {
		t.Parallel()

		b := newTestBuilder(t)
		for range 80 {
			b.SetFont(12)
			b.AddVerticalSpace(5)
			b.WriteBlock(10, "Paragraph")
		}
		if got := b.PageCount(); got < 2 {
			t.Errorf("PageCount() = %d, want >= 2", got)
		}
	})

	t.Run("writes metadata", func(t *testing.T) {
		t.Parallel()

		b, err := NewPDFBuilder(BuilderConfig{
			Page:     DefaultPageLayout(),
			Font:     testFont(),
			Metadata: Metadata{Title: "Doc", Author: "A", Creator: "test", Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		})
		if err != nil {
			t.Fatalf("NewPDFBuilder() error = %v", err)
		}
		b.WriteCell(5, 10, "•")
		b.WriteBlock(10, "item")

		var buf bytes.Buffer
		if err := b.Finish(&buf); err != nil {
			t.Fatalf("Finish() error = %v", err)
		}
		for _, key := range []string{"/Title", "/Author", "/Creator", "/CreationDate"} {
			if !bytes.Contains(buf.Bytes(), []byte(key)) {
				t.Errorf("output missing %s entry", key)
			}
		}
	})
}

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPDFBuilder_Finish_WriterError(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	err := b.Finish(failingWriter{})
	if !errors.Is(err, ErrOutput) {
		t.Fatalf("Finish() error = %v, want ErrOutput", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error %q should mention the writer failure", err)
	}
}
