package render

import (
	"image"
	"image/color"
	"unicode/utf8"

	"exhud/internal/core"
)

var shadow = color.RGBA{A: 255}

// Viewport adapts a Surface to the widget-facing Canvas. Inset rows at the
// bottom of the surface are reserved for the status bar.
type Viewport struct {
	Surface core.Surface
	Inset   int
}

var _ core.Canvas = Viewport{}

// Metrics forwards the surface text metrics.
func (v Viewport) Metrics() (int, int) { return v.Surface.Metrics() }

// DrawText draws s at the placed position. Extended HUD text gets a drop
// shadow on surfaces with more than one unit per glyph.
func (v Viewport) DrawText(x, y int, flags core.Flags, s string, c color.RGBA) {
	if s == "" {
		return
	}
	cw, lh := v.Surface.Metrics()
	r := Place(flags, x, y, cw*utf8.RuneCountInString(s), lh, v.bounds(flags))
	if flags&core.FlagExText != 0 && cw > 1 {
		v.Surface.Text(r.Min.Add(image.Pt(1, 1)), s, shadow)
	}
	v.Surface.Text(r.Min, s, c)
}

// FillRect fills a placed w×h rectangle.
func (v Viewport) FillRect(x, y, w, h int, flags core.Flags, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	v.Surface.Fill(Place(flags, x, y, w, h, v.bounds(flags)), c)
}

// DrawGrid draws g with one surface unit per cell.
func (v Viewport) DrawGrid(x, y int, flags core.Flags, g *core.ByteGrid, palette []color.RGBA) {
	if g == nil {
		return
	}
	r := Place(flags, x, y, g.W, g.H, v.bounds(flags))
	v.Surface.Grid(r.Min, g, palette)
}

func (v Viewport) bounds(flags core.Flags) image.Rectangle {
	w, h := v.Surface.Size()
	if flags&core.FlagNoOffset == 0 && v.Inset > 0 {
		h -= v.Inset
		if h < 0 {
			h = 0
		}
	}
	return image.Rect(0, 0, w, h)
}
