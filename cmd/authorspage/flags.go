package main

import (
	"errors"

	flag "github.com/spf13/pflag"

	authorspage "github.com/alnah/go-authorspage"
)

// ErrConflictingFlags indicates mutually exclusive flags were combined.
var ErrConflictingFlags = errors.New("--quiet and --verbose are mutually exclusive")

// cliFlags holds parsed command-line options.
type cliFlags struct {
	authorsFile string
	outputPage  string
	paramsKey   string
	docsDir     string
	htmlPreview bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line arguments into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("authorspage", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVar(&f.authorsFile, "authors-file", authorspage.DefaultAuthorsFile,
		"authors source file, resolved as a sibling of the docs dir's parent")
	fs.StringVar(&f.outputPage, "output", authorspage.DefaultOutputPage,
		"output page path, relative to the docs dir")
	fs.StringVar(&f.paramsKey, "params-key", authorspage.DefaultParamsKey,
		"top-level key holding page parameters")
	fs.StringVar(&f.docsDir, "docs-dir", "docs",
		"documentation content root")
	fs.BoolVar(&f.htmlPreview, "html", false,
		"also write a standalone HTML preview next to the output page")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.quiet && f.verbose {
		return nil, ErrConflictingFlags
	}
	return f, nil
}
