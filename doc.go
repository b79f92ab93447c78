// Package authorspage generates a contributors page for a documentation
// site from a YAML description of its authors.
//
// # Quick Start
//
// Create a plugin, generate the page, and hand the host the two hooks:
//
//	plugin := authorspage.New()
//	content := plugin.Generate("docs")
//
//	pages = plugin.RegisterPage(pages)
//	if text, ok := plugin.Content("authors.md"); ok {
//	    // serve text as the page body
//	    _ = text
//	}
//
// The authors source is a YAML file (default .authors.yml, resolved as a
// sibling of the docs directory's parent) with an authors mapping and an
// optional page_params mapping:
//
//	page_params:
//	  title: Team
//	  avatar_size: 120
//	  avatar_shape: circle
//	  avatar_align: left
//	authors:
//	  jdoe:
//	    name: Jane Doe
//	    affiliation: Example Labs
//	    avatar: img/jdoe.png
//	    github: jdoe
//
// # Degradation
//
// Loading never aborts the host build. A missing file yields a fixed
// fallback sentence; unparsable or structurally wrong input degrades to
// an empty author list with defaults, logged at warning or error severity
// through the injected slog.Logger.
//
// # Rendering
//
// Output is Markdown with embedded <img>, <p>, and <div> tags. Avatars
// are styled inline from page_params: left/right alignment floats the
// image and closes the float context with a clearing element after the
// author's fields; any other alignment centers it in a wrapped paragraph.
// Rendering is deterministic: the same document always produces
// byte-identical text.
//
// # HTML Preview
//
// HTMLPreview renders the generated Markdown to a standalone HTML5
// document via Goldmark, for inspection outside the host build:
//
//	preview := authorspage.NewHTMLPreview()
//	html, err := preview.ToHTML(ctx, content)
//
// # Configuration
//
// Use functional options to customize the plugin:
//
//	plugin := authorspage.New(
//	    authorspage.WithAuthorsFile("people.yml"),
//	    authorspage.WithOutputPage("team.md"),
//	    authorspage.WithParamsKey("page"),
//	    authorspage.WithLogger(logger),
//	)
package authorspage
