package render

import (
	"image"

	"exhud/internal/core"
)

// Place resolves a w×h box at offset (x, y) inside bounds. Left and right
// alignment measure x from the matching edge, top and bottom measure y from
// theirs; an axis without alignment is centred and the offset shifts it.
func Place(flags core.Flags, x, y, w, h int, bounds image.Rectangle) image.Rectangle {
	var px, py int
	switch {
	case flags&core.FlagAlignLeft != 0:
		px = bounds.Min.X + x
	case flags&core.FlagAlignRight != 0:
		px = bounds.Max.X - x - w
	default:
		px = bounds.Min.X + (bounds.Dx()-w)/2 + x
	}
	switch {
	case flags&core.FlagAlignTop != 0:
		py = bounds.Min.Y + y
	case flags&core.FlagAlignBottom != 0:
		py = bounds.Max.Y - y - h
	default:
		py = bounds.Min.Y + (bounds.Dy()-h)/2 + y
	}
	return image.Rect(px, py, px+w, py+h)
}
