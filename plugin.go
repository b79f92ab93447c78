package authorspage

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultAuthorsFile = ".authors.yml"
	DefaultOutputPage  = "authors.md"
	DefaultParamsKey   = "page_params"
)

// notFoundMessage replaces the whole page when the authors source file
// does not exist. It bypasses normal rendering and is independent of all
// other configuration.
const notFoundMessage = "Authors file not found. No authors page was generated.\n"

// FileReader is the read capability the host supplies for the authors
// source file. The one-shot read it performs is the only I/O in a build
// pass.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// ReadFileFunc adapts a function to the FileReader interface, so
// os.ReadFile or a test stub can be passed directly.
type ReadFileFunc func(path string) ([]byte, error)

// ReadFile calls f.
func (f ReadFileFunc) ReadFile(path string) ([]byte, error) { return f(path) }

// Plugin generates the authors page for one build pass and exposes the
// two host hooks: idempotent page registration and content provision.
// It is not safe for concurrent use; the host build invokes it
// synchronously, once per pass.
type Plugin struct {
	authorsFile string
	outputPage  string
	paramsKey   string
	logger      *slog.Logger
	reader      FileReader

	content string // rendered text for the current build pass
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithAuthorsFile sets the authors source file name, resolved as a
// sibling of the docs directory's parent.
func WithAuthorsFile(name string) Option {
	return func(p *Plugin) { p.authorsFile = name }
}

// WithOutputPage sets the virtual page path, relative to the docs
// directory.
func WithOutputPage(path string) Option {
	return func(p *Plugin) { p.outputPage = path }
}

// WithParamsKey sets the top-level key holding page parameters.
func WithParamsKey(key string) Option {
	return func(p *Plugin) { p.paramsKey = key }
}

// WithLogger sets the logger used for loader and plugin diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) { p.logger = logger }
}

// WithFileReader replaces the file read capability (os.ReadFile by
// default).
func WithFileReader(r FileReader) Option {
	return func(p *Plugin) { p.reader = r }
}

// New creates a Plugin with default configuration.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		authorsFile: DefaultAuthorsFile,
		outputPage:  DefaultOutputPage,
		paramsKey:   DefaultParamsKey,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		reader:      ReadFileFunc(os.ReadFile),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SourcePath returns the location of the authors source for the given
// docs directory: a sibling of the directory's parent.
func (p *Plugin) SourcePath(docsDir string) string {
	return filepath.Join(docsDir, "..", p.authorsFile)
}

// OutputPage returns the configured virtual page path.
func (p *Plugin) OutputPage() string {
	return p.outputPage
}

// Generate loads the authors source relative to docsDir and renders the
// page text, caching it for Content. It never fails: a missing file
// yields the fixed fallback sentence, and every other problem degrades
// inside the loader to renderable output.
func (p *Plugin) Generate(docsDir string) string {
	path := p.SourcePath(docsDir)

	data, err := p.reader.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("authors file not found", "path", path)
		} else {
			p.logger.Error("reading authors file", "path", path, "err", err)
		}
		p.content = notFoundMessage
		return p.content
	}

	loader := NewLoader(p.paramsKey, p.logger)
	p.content = RenderMarkdown(loader.Load(data))
	return p.content
}

// RegisterPage appends the virtual authors page to the host's manifest
// unless a page with the same path is already present. First wins, so
// repeated registration leaves the manifest unchanged.
func (p *Plugin) RegisterPage(pages []Page) []Page {
	for _, pg := range pages {
		if pg.Path == p.outputPage {
			return pages
		}
	}
	return append(pages, Page{Path: p.outputPage, Virtual: true})
}

// Content returns the rendered page text when path matches the
// configured output page. Any other path is declined so the host's
// normal handling applies. Call Generate first; before generation the
// page is empty.
func (p *Plugin) Content(path string) (string, bool) {
	if path != p.outputPage {
		return "", false
	}
	return p.content, true
}
