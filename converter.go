package mdpdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/fileutil"
	"github.com/alnah/go-mdpdf/internal/pipeline"
	"github.com/alnah/go-mdpdf/internal/render"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ render.DocumentBuilder        = (*render.PDFBuilder)(nil)
	_ assets.Loader                 = (*assets.Resolver)(nil)
)

// builderFactory opens a document. Replaced in tests.
type builderFactory func(render.BuilderConfig) (render.DocumentBuilder, error)

func newPDFBuilder(cfg render.BuilderConfig) (render.DocumentBuilder, error) {
	return render.NewPDFBuilder(cfg)
}

// Converter runs the Markdown to PDF pipeline.
// Create with NewConverter and reuse it: the font is loaded once and every
// Convert call opens its own document, so a Converter is safe for concurrent
// use when its HTMLConverter is.
type Converter struct {
	cfg           converterConfig
	fontLoader    assets.Loader
	font          *assets.Font
	style         Style
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	newBuilder    builderFactory
	now           func() time.Time
}

// NewConverter creates a Converter and loads its font.
// Returns ErrFontLoad when the font cannot be located or is not TrueType,
// and a validation error when page or style settings are out of range.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{creator: defaultCreator},
		fontLoader:    assets.NewResolver(),
		style:         DefaultStyle(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		newBuilder:    newPDFBuilder,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.page.Validate(); err != nil {
		return nil, err
	}

	if c.cfg.style != nil {
		if err := c.cfg.style.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
		}
		c.style = *c.cfg.style
	}

	font, err := c.fontLoader.LoadFont(c.cfg.fontSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	c.font = font

	return c, nil
}

// FontSource returns where the font was loaded from (embedded name or absolute path).
func (c *Converter) FontSource() string {
	return c.font.Source
}

// Convert runs the full pipeline and returns the HTML, the drawn elements and the PDF.
// The context is checked between stages and between elements.
// If input.HTMLOnly is true, PDF generation is skipped (for debugging).
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrRender, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	res := &ConvertResult{HTML: []byte(htmlContent)}

	if input.HTMLOnly {
		res.Elements = pipeline.Elements(htmlContent)
		res.Title = c.title(input, res.Elements)
		return res, nil
	}

	doc, err := c.newBuilder(render.BuilderConfig{
		Page: c.cfg.page.layout(),
		Font: c.font,
		Metadata: render.Metadata{
			Title:   c.title(input, nil),
			Author:  firstNonEmpty(input.Author, c.cfg.author),
			Creator: c.cfg.creator,
			Created: c.now(),
		},
	})
	if err != nil {
		if errors.Is(err, render.ErrFontRegister) {
			return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	stats, err := render.Emit(ctx, collect(pipeline.Walk(htmlContent), &res.Elements), doc, c.style)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	res.ByKind = stats.ByKind

	// The title may come from the first H1, known only after the walk.
	res.Title = c.title(input, res.Elements)
	if ts, ok := doc.(interface{ SetTitle(string) }); ok && res.Title != "" {
		ts.SetTitle(res.Title)
	}

	var buf bytes.Buffer
	if err := doc.Finish(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	res.PDF = buf.Bytes()
	res.Pages = doc.PageCount()
	return res, nil
}

// ConvertFile loads inputPath, converts it and writes the PDF to outputPath.
// The output is written atomically: on any failure no file is created at
// outputPath and an existing file there is left untouched.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (*ConvertResult, error) {
	markdown, err := LoadMarkdown(inputPath)
	if err != nil {
		return nil, err
	}

	result, err := c.Convert(ctx, Input{Markdown: markdown})
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outputPath, result.PDF, 0o644); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %w", ErrRender, outputPath, err)
	}

	return result, nil
}

// title picks the PDF title: explicit input, converter default, then first H1.
func (c *Converter) title(input Input, elements []Element) string {
	if t := firstNonEmpty(input.Title, c.cfg.title); t != "" {
		return t
	}
	for _, el := range elements {
		if el.Kind == H1 && el.Text != "" {
			return el.Text
		}
	}
	return ""
}

// collect passes seq through unchanged, appending each element to dst.
func collect(seq iter.Seq[Element], dst *[]Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for el := range seq {
			*dst = append(*dst, el)
			if !yield(el) {
				return
			}
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
