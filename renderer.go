package authorspage

import (
	"fmt"
	"strings"
)

// unknownAuthor substitutes for a missing name field.
const unknownAuthor = "Unknown Author"

// noAuthorsMessage is the fixed sentence emitted when the document lists
// no authors, whatever the reason.
const noAuthorsMessage = "No authors found or an error occurred while loading the authors data.\n"

// clearDiv terminates the float context opened by a left- or
// right-aligned avatar.
const clearDiv = `<div style="clear:both;"></div>`

// RenderMarkdown assembles the authors page from a loaded document.
// Output depends only on the document: rendering the same document twice
// yields byte-identical text. Absent fields are skipped entirely, never
// replaced by placeholders.
func RenderMarkdown(doc *AuthorsDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Params.Title)
	if doc.Params.Description != "" {
		b.WriteString(doc.Params.Description + "\n\n")
	}

	if len(doc.Authors) == 0 {
		b.WriteString(noAuthorsMessage)
		return b.String()
	}

	for _, a := range doc.Authors {
		writeAuthor(&b, a, doc.Params)
	}
	return b.String()
}

// writeAuthor emits one author's section: heading, optional avatar,
// fields, social links, and the separator. A floated avatar is followed
// by a clearing element after the fields; a centered one is wrapped in a
// centered paragraph before them.
func writeAuthor(b *strings.Builder, a Author, p PageParams) {
	fmt.Fprintf(b, "## %s\n", a.DisplayName())

	placement := PlacementCentered
	if a.Avatar != "" {
		var style string
		style, placement = buildAvatarStyle(p.AvatarSize, p.AvatarShape, p.AvatarAlign)
		img := fmt.Sprintf(`<img src="%s" alt="%s Avatar" style="%s">`, a.Avatar, a.DisplayName(), style)
		if placement == PlacementCentered {
			b.WriteString(`<p style="text-align:center;">` + img + "</p>\n")
		} else {
			b.WriteString(img + "\n")
		}
	}

	if a.Affiliation != "" {
		fmt.Fprintf(b, "**Affiliation:** %s\n", a.Affiliation)
	}
	if a.Description != "" {
		fmt.Fprintf(b, "\n%s\n", a.Description)
	}
	if a.Email != "" {
		fmt.Fprintf(b, "**Email:** [%s](mailto:%s)\n", a.Email, a.Email)
	}

	if links := socialLinks(a); len(links) > 0 {
		b.WriteString("\n**Connect:** " + strings.Join(links, " | ") + "\n")
	}

	if a.Avatar != "" && placement == PlacementFloated {
		b.WriteString(clearDiv + "\n")
	}

	b.WriteString("\n---\n\n")
}

// socialLinks collects Markdown links for whichever social handles are
// present, in fixed GitHub, LinkedIn, Twitter order.
func socialLinks(a Author) []string {
	var links []string
	if a.GitHub != "" {
		links = append(links, fmt.Sprintf("[GitHub](https://github.com/%s)", a.GitHub))
	}
	if a.LinkedIn != "" {
		links = append(links, fmt.Sprintf("[LinkedIn](https://www.linkedin.com/in/%s)", a.LinkedIn))
	}
	if a.Twitter != "" {
		links = append(links, fmt.Sprintf("[Twitter](https://twitter.com/%s)", a.Twitter))
	}
	return links
}
