// Package pipeline implements the Markdown-to-elements half of the conversion.
//
// This package handles the stages that precede drawing:
//   - Markdown preprocessing (BOM, line endings, Unicode normalization)
//   - Markdown to HTML conversion via Goldmark
//   - HTML tree walking into a flat sequence of allow-listed block elements
//
// PDF drawing is handled separately by the render package. This separation
// keeps the pipeline focused on document structure and content, while render
// owns fonts, spacing and page geometry.
package pipeline
