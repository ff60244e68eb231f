package mdpdf

// Notes:
// - PageSettings: tests validation for size, orientation, and margin boundaries
// - Options: tests that each option lands in the converter it configures

import (
	"errors"
	"testing"

	"github.com/alnah/go-mdpdf/internal/render"
)

// ---------------------------------------------------------------------------
// TestPageSettings_Validate - PageSettings Validation
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ps      *PageSettings
		wantErr error
	}{
		{"nil is valid (use defaults)", nil, nil},
		{"default", DefaultPageSettings(), nil},
		{"letter landscape", &PageSettings{Size: PageSizeLetter, Orientation: OrientationLandscape, Margin: 15}, nil},
		{"uppercase legal", &PageSettings{Size: "LEGAL", Orientation: "Portrait", Margin: 10}, nil},
		{"margin at minimum", &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: MinMargin}, nil},
		{"margin at maximum", &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: MaxMargin}, nil},
		{"unknown size", &PageSettings{Size: "tabloid", Orientation: OrientationPortrait, Margin: 10}, ErrInvalidPageSize},
		{"empty size", &PageSettings{Size: "", Orientation: OrientationPortrait, Margin: 10}, ErrInvalidPageSize},
		{"unknown orientation", &PageSettings{Size: PageSizeA4, Orientation: "upside-down", Margin: 10}, ErrInvalidOrientation},
		{"margin below minimum", &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: MinMargin - 0.1}, ErrInvalidMargin},
		{"margin above maximum", &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: MaxMargin + 1}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ps.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageSettings_Layout(t *testing.T) {
	t.Parallel()

	var nilSettings *PageSettings
	if got := nilSettings.layout(); got != render.DefaultPageLayout() {
		t.Errorf("nil layout() = %+v, want default", got)
	}

	got := (&PageSettings{Size: "Letter", Orientation: "Landscape", Margin: 12}).layout()
	want := render.PageLayout{Size: "letter", Orientation: "landscape", Margin: 12}
	if got != want {
		t.Errorf("layout() = %+v, want %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestOptions - Functional options
// ---------------------------------------------------------------------------

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil arguments keep defaults", func(t *testing.T) {
		t.Parallel()

		conv := mustConverter(t, WithClock(nil), WithHTMLConverter(nil), WithFontLoader(nil))
		if conv.now == nil {
			t.Error("clock was replaced by nil")
		}
		if conv.htmlConverter == nil {
			t.Error("HTML converter was replaced by nil")
		}
		if conv.fontLoader == nil {
			t.Error("font loader was replaced by nil")
		}
	})

	t.Run("clock", func(t *testing.T) {
		t.Parallel()

		conv := mustConverter(t, WithClock(fixedClock))
		if !conv.now().Equal(fixedClock()) {
			t.Errorf("now() = %v, want %v", conv.now(), fixedClock())
		}
	})

	t.Run("style", func(t *testing.T) {
		t.Parallel()

		style := DefaultStyle()
		style.Paragraph.Size = 11
		conv := mustConverter(t, WithStyle(style))
		if conv.style.Paragraph.Size != 11 {
			t.Errorf("Paragraph.Size = %v, want 11", conv.style.Paragraph.Size)
		}
	})

	t.Run("document info", func(t *testing.T) {
		t.Parallel()

		conv := mustConverter(t, WithDocumentInfo("T", "A"))
		if conv.cfg.title != "T" || conv.cfg.author != "A" {
			t.Errorf("title, author = %q, %q", conv.cfg.title, conv.cfg.author)
		}
	})
}

func TestEmbeddedFonts(t *testing.T) {
	t.Parallel()

	names := EmbeddedFonts()
	found := false
	for _, n := range names {
		if n == DefaultFont {
			found = true
		}
	}
	if !found {
		t.Errorf("EmbeddedFonts() = %v, missing %q", names, DefaultFont)
	}
}
