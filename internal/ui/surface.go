//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"exhud/internal/core"
	"exhud/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	glyphW   = 7
	lineH    = 13
	baseline = 11
)

type gridImage struct {
	img *ebiten.Image
	buf []byte
}

// Surface draws HUD widgets onto an ebiten image.
type Surface struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
	grids map[*core.ByteGrid]*gridImage
}

var _ core.Surface = (*Surface)(nil)

// NewSurface constructs a surface. Call Begin before drawing each frame.
func NewSurface() *Surface {
	s := &Surface{grids: map[*core.ByteGrid]*gridImage{}}
	s.pixel = ebiten.NewImage(1, 1)
	s.pixel.Fill(color.White)
	return s
}

// Begin directs the following draws at dst.
func (s *Surface) Begin(dst *ebiten.Image) { s.dst = dst }

// Size returns the bounds of the current target.
func (s *Surface) Size() (int, int) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Metrics returns the basicfont glyph size.
func (s *Surface) Metrics() (int, int) { return glyphW, lineH }

// Text draws str with its top-left corner at at.
func (s *Surface) Text(at image.Point, str string, c color.RGBA) {
	if s.dst == nil {
		return
	}
	text.Draw(s.dst, str, basicfont.Face7x13, at.X, at.Y+baseline, c)
}

// Fill paints r with c.
func (s *Surface) Fill(r image.Rectangle, c color.RGBA) {
	if s.dst == nil || r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.pixel, op)
}

// Grid blits g at at with one pixel per cell.
func (s *Surface) Grid(at image.Point, g *core.ByteGrid, palette []color.RGBA) {
	if s.dst == nil {
		return
	}
	gi := s.grids[g]
	if gi == nil || gi.img.Bounds().Dx() != g.W || gi.img.Bounds().Dy() != g.H {
		gi = &gridImage{img: ebiten.NewImage(g.W, g.H), buf: make([]byte, g.W*g.H*4)}
		s.grids[g] = gi
	}
	render.FillPalette(gi.buf, g.Cells(), palette)
	gi.img.WritePixels(gi.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.dst.DrawImage(gi.img, op)
}
