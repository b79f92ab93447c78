package authorspage

// Avatar shape constants.
const (
	ShapeSquare = "square"
	ShapeCircle = "circle"
)

// Avatar alignment constants.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

// Defaults for page parameters.
const (
	DefaultTitle      = "Our Amazing Authors"
	DefaultAvatarSize = 100
)

// PageParams holds page-level rendering configuration.
// Unrecognized shape values behave as square and unrecognized alignment
// values as center; AvatarSize is used verbatim, without clamping.
type PageParams struct {
	Title       string // page heading
	Description string // optional paragraph under the heading
	AvatarSize  int    // pixels, width and height
	AvatarShape string // "square", "circle"
	AvatarAlign string // "left", "right", "center"
}

// DefaultPageParams returns page parameters with default values.
func DefaultPageParams() PageParams {
	return PageParams{
		Title:       DefaultTitle,
		AvatarSize:  DefaultAvatarSize,
		AvatarShape: ShapeSquare,
		AvatarAlign: AlignCenter,
	}
}

// Author holds one contributor's presentational data plus the id derived
// from its source mapping key. Optional fields are empty strings when
// absent in the source; values present in the source pass through
// verbatim, without normalization.
type Author struct {
	ID          string
	Name        string
	Affiliation string
	Description string
	Avatar      string
	Email       string
	GitHub      string
	LinkedIn    string
	Twitter     string
}

// DisplayName returns the author's name, or a fixed placeholder when the
// source carried none.
func (a Author) DisplayName() string {
	if a.Name == "" {
		return unknownAuthor
	}
	return a.Name
}

// AuthorsDocument is the validated result of loading an authors source.
// Authors keep the source mapping's iteration order, which is also the
// rendering order. The document is built once per build pass and never
// mutated afterwards.
type AuthorsDocument struct {
	Params  PageParams
	Authors []Author
}

// Page is one entry in the host's page manifest. Virtual pages have
// programmatically supplied content instead of a file on disk.
type Page struct {
	Path    string
	Virtual bool
}
