package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// documentFlags holds PDF metadata flags.
type documentFlags struct {
	title  string
	author string
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    time.Duration
	font       string
	page       pageFlags
	document   documentFlags
	outputMode outputFlags
}

// textFlags holds flags for the text command.
type textFlags struct {
	page int
}

// configFlags holds flags for the config command.
type configFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and element counts")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in mm (5-50)")
}

// addDocumentFlags adds PDF metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "PDF title (default: first heading)")
	fs.StringVar(&f.author, "author", "", "PDF author")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "also write the intermediate HTML")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "overall timeout (e.g., 30s, 2m; 0 = none)")
	fs.StringVarP(&f.font, "font", "f", "", "embedded font name or TrueType file path")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addDocumentFlags(fs, &f.document)
	addOutputFlags(fs, &f.outputMode)

	fs.SetOutput(stderr)
	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// parseTextFlags parses text command flags and returns positional args.
func parseTextFlags(args []string, stderr io.Writer) (*textFlags, []string, error) {
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	f := &textFlags{}

	fs.IntVar(&f.page, "page", 0, "print only this page (1-based, 0 = all)")

	fs.SetOutput(stderr)
	fs.Usage = func() { printTextUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags and returns positional args.
func parseConfigFlags(args []string, stderr io.Writer) (*configFlags, []string, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	f := &configFlags{}

	addCommonFlags(fs, &f.common)

	fs.SetOutput(stderr)
	fs.Usage = func() { printConfigUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// usageError marks a flag parse failure as a usage error.
// flag.ErrHelp passes through unchanged so -h exits cleanly.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
