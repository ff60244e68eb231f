// Package render draws pipeline elements onto PDF pages.
//
// The DocumentBuilder interface is the only drawing surface: set the font
// size, advance the cursor, write a cell or a wrapping block, and finish once.
// PDFBuilder implements it on top of fpdf with a single embedded TrueType
// family; Emit maps each ElementKind to a KindStyle and drives the builder.
//
// Pagination is left to fpdf's automatic page break.
package render
