package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdpdf/internal/pdftext"
)

// runText prints the extracted text of each page of a PDF.
func runText(args []string, env *Environment) error {
	flags, positional, err := parseTextFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: text expects exactly one PDF file, got %d args", ErrUsage, len(positional))
	}
	if flags.page < 0 {
		return fmt.Errorf("%w: --page must be >= 0, got %d", ErrUsage, flags.page)
	}

	pages, err := pdftext.ExtractFile(positional[0])
	if err != nil {
		return err
	}

	if flags.page > 0 {
		if flags.page > len(pages) {
			return fmt.Errorf("%w: page %d out of range (document has %d)", ErrUsage, flags.page, len(pages))
		}
		pages = pages[flags.page-1 : flags.page]
	}

	for _, p := range pages {
		fmt.Fprintf(env.Stdout, "--- page %d ---\n", p.Number)
		if text := strings.TrimRight(p.Text, "\n"); text != "" {
			fmt.Fprintln(env.Stdout, text)
		}
	}
	return nil
}
