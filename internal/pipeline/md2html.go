package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkSettings holds the dialect switches exposed to configuration.
type goldmarkSettings struct {
	hardWraps      bool
	highlight      bool
	highlightStyle string
}

// GoldmarkOption configures a GoldmarkConverter.
type GoldmarkOption func(*goldmarkSettings)

// WithHardWraps controls whether single newlines inside a paragraph become
// <br> (and therefore line breaks in the PDF). Enabled by default.
func WithHardWraps(enabled bool) GoldmarkOption {
	return func(s *goldmarkSettings) { s.hardWraps = enabled }
}

// WithHighlighting controls chroma markup inside fenced code blocks.
// The walker flattens it, so it only affects the HTML debug output.
func WithHighlighting(enabled bool) GoldmarkOption {
	return func(s *goldmarkSettings) { s.highlight = enabled }
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
// Safe for concurrent use.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM and footnotes.
func NewGoldmarkConverter(opts ...GoldmarkOption) *GoldmarkConverter {
	settings := goldmarkSettings{hardWraps: true, highlight: true, highlightStyle: "github"}
	for _, opt := range opts {
		opt(&settings)
	}

	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if settings.highlight {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(settings.highlightStyle),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		))
	}

	rendererOpts := []renderer.Option{html.WithXHTML()}
	if settings.hardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to a standalone HTML5 document.
// Goldmark has no context support, so conversion runs in a goroutine and the
// caller returns early on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
