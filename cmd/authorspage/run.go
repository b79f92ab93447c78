package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	authorspage "github.com/alnah/go-authorspage"
)

// Sentinel errors for CLI operations.
var (
	ErrWritePage    = errors.New("failed to write authors page")
	ErrWritePreview = errors.New("failed to write HTML preview")
)

// run generates the authors page and writes it under the docs directory.
// With --html it also writes a standalone preview next to it.
func run(flags *cliFlags, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintln(stderr, "authorspage "+Version)
		return nil
	}

	logger := newLogger(stderr, flags)

	plugin := authorspage.New(
		authorspage.WithAuthorsFile(flags.authorsFile),
		authorspage.WithOutputPage(flags.outputPage),
		authorspage.WithParamsKey(flags.paramsKey),
		authorspage.WithLogger(logger),
	)

	content := plugin.Generate(flags.docsDir)

	outPath := filepath.Join(flags.docsDir, plugin.OutputPage())
	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	if err := atomic.WriteFile(outPath, strings.NewReader(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	logger.Info("authors page generated", "path", outPath)

	if flags.htmlPreview {
		preview := authorspage.NewHTMLPreview()
		htmlDoc, err := preview.ToHTML(context.Background(), content)
		if err != nil {
			return err
		}
		previewPath := htmlPreviewPath(outPath)
		if err := atomic.WriteFile(previewPath, strings.NewReader(htmlDoc)); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePreview, err)
		}
		logger.Info("HTML preview written", "path", previewPath)
	}
	return nil
}

// newLogger builds the CLI logger honoring --quiet and --verbose.
func newLogger(w io.Writer, flags *cliFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case flags.quiet:
		level = slog.LevelError
	case flags.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// htmlPreviewPath swaps the page's extension for .html.
func htmlPreviewPath(pagePath string) string {
	return strings.TrimSuffix(pagePath, filepath.Ext(pagePath)) + ".html"
}
