package authorspage

import (
	"fmt"
	"strings"
)

// Avatar margins in pixels.
const (
	floatSideMargin    = 15
	avatarBottomMargin = 10
)

// Placement describes how a styled avatar sits relative to the author's
// other fields.
type Placement int

const (
	// PlacementCentered wraps the image in a centered paragraph block
	// emitted before the author's fields.
	PlacementCentered Placement = iota
	// PlacementFloated emits the bare image inline among the fields and
	// requires a clearing element after them.
	PlacementFloated
)

// buildAvatarStyle maps avatar presentation parameters to an inline CSS
// string and a placement mode. Unrecognized shape values behave as
// square, unrecognized alignment values as center; size is used
// verbatim, even when non-positive.
func buildAvatarStyle(size int, shape, align string) (string, Placement) {
	var b strings.Builder

	fmt.Fprintf(&b, "width:%dpx; height:%dpx; object-fit:cover;", size, size)

	if shape == ShapeCircle {
		b.WriteString(" border-radius:50%;")
	} else {
		b.WriteString(" border-radius:0;")
	}

	switch align {
	case AlignLeft:
		fmt.Fprintf(&b, " float:left; margin-right:%dpx; margin-bottom:%dpx;", floatSideMargin, avatarBottomMargin)
		return b.String(), PlacementFloated
	case AlignRight:
		fmt.Fprintf(&b, " float:right; margin-left:%dpx; margin-bottom:%dpx;", floatSideMargin, avatarBottomMargin)
		return b.String(), PlacementFloated
	default:
		fmt.Fprintf(&b, " display:block; margin:0 auto %dpx auto;", avatarBottomMargin)
		return b.String(), PlacementCentered
	}
}
