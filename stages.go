package mdpdf

import (
	"context"
	"iter"

	"golang.org/x/net/html"

	"github.com/alnah/go-mdpdf/internal/pipeline"
	"github.com/alnah/go-mdpdf/internal/render"
)

// The stages below are the pieces Converter.Convert chains together,
// exposed for callers that want to inspect or replace one of them.

// Kinds lists every ElementKind in declaration order.
var Kinds = pipeline.Kinds

// Classify maps an HTML element node to its ElementKind.
// The second value is false for anything outside h1, h2, h3, p, li, code and pre.
func Classify(n *html.Node) (ElementKind, bool) {
	return pipeline.Classify(n)
}

// Walk parses htmlContent and yields the allow-listed elements in document order.
// The sequence is single-use.
func Walk(htmlContent string) iter.Seq[Element] {
	return pipeline.Walk(htmlContent)
}

// DocumentBuilder is the drawing surface Emit writes to.
type DocumentBuilder = render.DocumentBuilder

// EmitStats counts the elements Emit drew.
type EmitStats = render.EmitStats

// Emit draws elements onto b using style. It does not call b.Finish.
func Emit(ctx context.Context, elements iter.Seq[Element], b DocumentBuilder, style Style) (EmitStats, error) {
	return render.Emit(ctx, elements, b, style)
}
