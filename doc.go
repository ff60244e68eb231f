// Package mdpdf converts Markdown documents to PDF by drawing them directly
// with fpdf, without a browser or layout engine.
//
// # Quick Start
//
//	conv, err := mdpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdpdf.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// ConvertFile does the same from a file path and writes the PDF atomically.
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (BOM removal, line endings, NFC normalization)
//  2. Markdown to HTML via Goldmark (GFM, footnotes, syntax highlighting)
//  3. Element walk: the HTML tree is reduced to h1, h2, h3, p, li, code and
//     pre blocks in document order; every other tag is transparent
//  4. Emission: each element sets the font size, adds vertical space and
//     writes a wrapping text block; list items get a bullet cell first
//
// Nested markup inside an emitted element is flattened to plain text. Pages
// break automatically when the cursor reaches the bottom margin.
//
// # Configuration
//
//	conv, err := mdpdf.NewConverter(
//	    mdpdf.WithFont("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
//	    mdpdf.WithPage(&mdpdf.PageSettings{Size: "letter", Orientation: "portrait", Margin: 15}),
//	    mdpdf.WithStyle(style),
//	)
//
// Fonts are TrueType files or one of the embedded Go fonts (see EmbeddedFonts).
// The whole document uses a single font family.
//
// # Parallel Processing
//
//	pool := mdpdf.NewConverterPool(mdpdf.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//
// # Errors
//
// LoadMarkdown and ConvertFile return ErrFileAccess or ErrDecoding for input
// problems; NewConverter returns ErrFontLoad; serialization and write failures
// are ErrRender. Use errors.Is to test for them.
package mdpdf
