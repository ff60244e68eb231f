package render

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/alnah/go-mdpdf/internal/pipeline"
)

// EmitStats counts what Emit drew.
type EmitStats struct {
	Elements int
	ByKind   map[pipeline.ElementKind]int
}

// Emit draws elements onto d in sequence order.
// The context is checked before each element; on cancellation the elements
// already drawn stay on d and ctx.Err() is returned.
func Emit(ctx context.Context, elements iter.Seq[pipeline.Element], d Drawer, style Style) (EmitStats, error) {
	stats := EmitStats{ByKind: make(map[pipeline.ElementKind]int)}

	for el := range elements {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := emitElement(d, style, el); err != nil {
			return stats, err
		}
		stats.Elements++
		stats.ByKind[el.Kind]++
	}
	return stats, nil
}

func emitElement(d Drawer, style Style, el pipeline.Element) error {
	var ks KindStyle
	bullet := false

	switch el.Kind {
	case pipeline.H1:
		ks = style.H1
	case pipeline.H2:
		ks = style.H2
	case pipeline.H3:
		ks = style.H3
	case pipeline.Paragraph:
		ks = style.Paragraph
	case pipeline.ListItem:
		ks = style.ListItem
		bullet = true
	case pipeline.InlineCode, pipeline.CodeBlock:
		ks = style.Code
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, el.Kind)
	}

	d.SetFont(ks.Size)
	d.AddVerticalSpace(ks.SpaceBefore)
	if bullet {
		d.WriteCell(style.BulletWidth, ks.LineHeight, style.Bullet)
	}
	d.WriteBlock(ks.LineHeight, expandTabs(el.Text, style.TabWidth))
	return nil
}

// expandTabs replaces each tab with spaces up to the next tab stop.
func expandTabs(s string, width int) string {
	if width <= 0 || !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + width)
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
