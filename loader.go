package authorspage

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/alnah/go-authorspage/internal/yamlutil"
)

// authorsKey is the fixed top-level key holding the author entries.
const authorsKey = "authors"

// Loader parses raw authors source text into a validated AuthorsDocument.
// Every failure mode is non-fatal: unparsable or structurally wrong input
// degrades to an empty author list with default page parameters, logged
// through the injected logger, so the result is always renderable.
type Loader struct {
	paramsKey string
	logger    *slog.Logger
}

// NewLoader creates a Loader. paramsKey selects the top-level mapping
// holding page parameters (empty means the default "page_params"). A nil
// logger discards all diagnostics.
func NewLoader(paramsKey string, logger *slog.Logger) *Loader {
	if paramsKey == "" {
		paramsKey = DefaultParamsKey
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{paramsKey: paramsKey, logger: logger}
}

// Load parses data into an AuthorsDocument. It never fails; problems are
// logged and the affected piece degrades to its default.
func (l *Loader) Load(data []byte) *AuthorsDocument {
	doc := &AuthorsDocument{Params: DefaultPageParams()}

	root, err := yamlutil.UnmarshalOrdered(data)
	if err != nil {
		l.logger.Error("parsing authors source", "err", err)
		return doc
	}

	top, ok := root.(yamlutil.Mapping)
	if !ok {
		l.logger.Warn("authors source must be a mapping with an authors key at the top level")
		return doc
	}

	var sawAuthors bool
	for _, item := range top {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}
		switch key {
		case l.paramsKey:
			doc.Params = l.loadParams(item.Value)
		case authorsKey:
			sawAuthors = true
			doc.Authors = l.loadAuthors(item.Value)
		}
	}

	if !sawAuthors {
		l.logger.Warn("authors source has no authors mapping", "key", authorsKey)
	}
	return doc
}

// loadParams extracts page parameters, defaulting each field
// independently when missing. A non-mapping value is rejected whole: no
// partial extraction.
func (l *Loader) loadParams(v any) PageParams {
	params := DefaultPageParams()

	m, ok := v.(yamlutil.Mapping)
	if !ok {
		l.logger.Warn("page parameters must be a mapping; using defaults", "key", l.paramsKey)
		return params
	}

	for _, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}
		switch key {
		case "title":
			if s, ok := scalarString(item.Value); ok && s != "" {
				params.Title = s
			}
		case "description":
			if s, ok := scalarString(item.Value); ok {
				params.Description = s
			}
		case "avatar_size":
			if n, ok := scalarInt(item.Value); ok {
				params.AvatarSize = n
			}
		case "avatar_shape":
			if s, ok := scalarString(item.Value); ok && s != "" {
				params.AvatarShape = s
			}
		case "avatar_align":
			if s, ok := scalarString(item.Value); ok && s != "" {
				params.AvatarAlign = s
			}
		}
	}
	return params
}

// loadAuthors builds the author list in source order. Each entry's
// mapping key becomes the record's id, overriding any id field inside
// the entry.
func (l *Loader) loadAuthors(v any) []Author {
	m, ok := v.(yamlutil.Mapping)
	if !ok {
		l.logger.Warn("authors value must be a mapping of id to author fields", "key", authorsKey)
		return nil
	}

	authors := make([]Author, 0, len(m))
	for _, item := range m {
		id := fmt.Sprint(item.Key)
		entry, ok := item.Value.(yamlutil.Mapping)
		if !ok {
			l.logger.Warn("author entry is not a mapping; rendering id only", "id", id)
			authors = append(authors, Author{ID: id})
			continue
		}
		authors = append(authors, loadAuthor(id, entry))
	}
	return authors
}

func loadAuthor(id string, entry yamlutil.Mapping) Author {
	a := Author{ID: id}
	for _, item := range entry {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}
		value, ok := scalarString(item.Value)
		if !ok {
			continue
		}
		switch key {
		case "name":
			a.Name = value
		case "affiliation":
			a.Affiliation = value
		case "description":
			a.Description = value
		case "avatar":
			a.Avatar = value
		case "email":
			a.Email = value
		case "github":
			a.GitHub = value
		case "linkedin":
			a.LinkedIn = value
		case "twitter":
			a.Twitter = value
		}
	}
	return a
}

// scalarString converts a YAML scalar to its string form. Strings pass
// through verbatim; numbers and booleans are formatted; mappings,
// sequences, and nil are rejected.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), true
	}
	return "", false
}

// scalarInt converts a YAML numeric scalar to int. Floats truncate.
func scalarInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
