package render

import (
	"fmt"

	"github.com/alnah/go-mdpdf/internal/pipeline"
)

// KindStyle is the typography applied to one ElementKind.
type KindStyle struct {
	Size        float64 // font size in points
	SpaceBefore float64 // vertical space added before the element, in mm
	LineHeight  float64 // height of each wrapped line, in mm
}

// Style maps every ElementKind to a KindStyle. InlineCode and CodeBlock share Code.
type Style struct {
	H1        KindStyle
	H2        KindStyle
	H3        KindStyle
	Paragraph KindStyle
	ListItem  KindStyle
	Code      KindStyle

	Bullet      string  // drawn in its own cell before each list item
	BulletWidth float64 // mm
	TabWidth    int     // spaces per tab; 0 leaves tabs untouched
}

// Font size bounds accepted by Validate.
const (
	MinFontSize = 4.0
	MaxFontSize = 72.0
)

// DefaultStyle returns the built-in typography.
func DefaultStyle() Style {
	return Style{
		H1:          KindStyle{Size: 16, SpaceBefore: 10, LineHeight: 10},
		H2:          KindStyle{Size: 14, SpaceBefore: 10, LineHeight: 10},
		H3:          KindStyle{Size: 12, SpaceBefore: 10, LineHeight: 10},
		Paragraph:   KindStyle{Size: 12, SpaceBefore: 5, LineHeight: 10},
		ListItem:    KindStyle{Size: 12, SpaceBefore: 2, LineHeight: 10},
		Code:        KindStyle{Size: 10, SpaceBefore: 5, LineHeight: 8},
		Bullet:      "•",
		BulletWidth: 5,
		TabWidth:    4,
	}
}

// For returns the style of kind. The second value is false for unknown kinds.
func (s Style) For(kind pipeline.ElementKind) (KindStyle, bool) {
	switch kind {
	case pipeline.H1:
		return s.H1, true
	case pipeline.H2:
		return s.H2, true
	case pipeline.H3:
		return s.H3, true
	case pipeline.Paragraph:
		return s.Paragraph, true
	case pipeline.ListItem:
		return s.ListItem, true
	case pipeline.InlineCode, pipeline.CodeBlock:
		return s.Code, true
	default:
		return KindStyle{}, false
	}
}

// Validate checks every kind, the heading order and the bullet settings.
func (s Style) Validate() error {
	for _, kind := range pipeline.Kinds {
		ks, _ := s.For(kind)
		if err := ks.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidStyle, kind, err)
		}
	}
	if err := ValidateHeadingOrder(s.H1.Size, s.H2.Size, s.H3.Size); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	if s.Bullet == "" {
		return fmt.Errorf("%w: bullet cannot be empty", ErrInvalidStyle)
	}
	if s.BulletWidth <= 0 {
		return fmt.Errorf("%w: bullet width must be positive, got %.1f", ErrInvalidStyle, s.BulletWidth)
	}
	if s.TabWidth < 0 || s.TabWidth > 16 {
		return fmt.Errorf("%w: tab width must be between 0 and 16, got %d", ErrInvalidStyle, s.TabWidth)
	}
	return nil
}

// ValidateHeadingOrder reports an error unless h1 > h2 > h3.
func ValidateHeadingOrder(h1, h2, h3 float64) error {
	if h1 > h2 && h2 > h3 {
		return nil
	}
	return fmt.Errorf("heading sizes must decrease, got h1 %.1f, h2 %.1f, h3 %.1f", h1, h2, h3)
}

func (k KindStyle) validate() error {
	if k.Size < MinFontSize || k.Size > MaxFontSize {
		return fmt.Errorf("size %.1f out of range [%.0f, %.0f]", k.Size, MinFontSize, MaxFontSize)
	}
	if k.SpaceBefore < 0 {
		return fmt.Errorf("spacing cannot be negative, got %.1f", k.SpaceBefore)
	}
	if k.LineHeight <= 0 {
		return fmt.Errorf("line height must be positive, got %.1f", k.LineHeight)
	}
	return nil
}
