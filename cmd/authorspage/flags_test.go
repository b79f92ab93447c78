package main

// Notes:
// - parseFlags: tests defaults, individual overrides, shorthand flags,
//   the quiet/verbose conflict, and unknown flag rejection.

import (
	"errors"
	"testing"

	authorspage "github.com/alnah/go-authorspage"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Defaults and overrides
// ---------------------------------------------------------------------------

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	f, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if f.authorsFile != authorspage.DefaultAuthorsFile {
		t.Errorf("authorsFile = %q, want %q", f.authorsFile, authorspage.DefaultAuthorsFile)
	}
	if f.outputPage != authorspage.DefaultOutputPage {
		t.Errorf("outputPage = %q, want %q", f.outputPage, authorspage.DefaultOutputPage)
	}
	if f.paramsKey != authorspage.DefaultParamsKey {
		t.Errorf("paramsKey = %q, want %q", f.paramsKey, authorspage.DefaultParamsKey)
	}
	if f.docsDir != "docs" {
		t.Errorf("docsDir = %q, want %q", f.docsDir, "docs")
	}
	if f.htmlPreview || f.quiet || f.verbose || f.version {
		t.Errorf("boolean flags should default to false: %+v", f)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(*cliFlags) bool
	}{
		{"authors file", []string{"--authors-file", "people.yml"}, func(f *cliFlags) bool { return f.authorsFile == "people.yml" }},
		{"output page", []string{"--output", "team.md"}, func(f *cliFlags) bool { return f.outputPage == "team.md" }},
		{"params key", []string{"--params-key", "page"}, func(f *cliFlags) bool { return f.paramsKey == "page" }},
		{"docs dir", []string{"--docs-dir", "content"}, func(f *cliFlags) bool { return f.docsDir == "content" }},
		{"html preview", []string{"--html"}, func(f *cliFlags) bool { return f.htmlPreview }},
		{"quiet long", []string{"--quiet"}, func(f *cliFlags) bool { return f.quiet }},
		{"quiet short", []string{"-q"}, func(f *cliFlags) bool { return f.quiet }},
		{"verbose short", []string{"-v"}, func(f *cliFlags) bool { return f.verbose }},
		{"version", []string{"--version"}, func(f *cliFlags) bool { return f.version }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tt.args, err)
			}
			if !tt.check(f) {
				t.Errorf("parseFlags(%v) = %+v", tt.args, f)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseFlagsErrors - Conflicts and unknown flags
// ---------------------------------------------------------------------------

func TestParseFlagsQuietVerboseConflict(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"--quiet", "--verbose"})
	if !errors.Is(err, ErrConflictingFlags) {
		t.Errorf("parseFlags() error = %v, want ErrConflictingFlags", err)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"--no-such-flag"}); err == nil {
		t.Error("parseFlags() expected error for unknown flag")
	}
}
