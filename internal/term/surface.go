// Package term draws the HUD into a terminal through tcell. The terminal is
// addressed as a virtual pixel screen of CellW×CellH units per cell so that
// layouts written for a 320×200 screen fit an 80×25 terminal.
package term

import (
	"image"
	"image/color"

	"exhud/internal/core"

	"github.com/gdamore/tcell/v2"
)

const (
	CellW = 4
	CellH = 8
)

// Surface is a core.Surface backed by a tcell screen.
type Surface struct {
	screen tcell.Screen
	bg     tcell.Style
}

var _ core.Surface = (*Surface)(nil)

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, bg: tcell.StyleDefault.Background(tcell.ColorBlack)}
}

// Size returns the terminal size in virtual units.
func (s *Surface) Size() (int, int) {
	w, h := s.screen.Size()
	return w * CellW, h * CellH
}

// Metrics reports one glyph per cell.
func (s *Surface) Metrics() (int, int) { return CellW, CellH }

// Clear blanks the screen.
func (s *Surface) Clear() {
	s.screen.Fill(' ', s.bg)
}

// Text writes str starting at the cell containing at.
func (s *Surface) Text(at image.Point, str string, c color.RGBA) {
	if c.A == 0 {
		return
	}
	x, y := cell(at)
	w, h := s.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range str {
		if x >= w {
			return
		}
		if x >= 0 {
			_, _, style, _ := s.screen.GetContent(x, y)
			s.screen.SetContent(x, y, r, nil, style.Foreground(rgb(c)))
		}
		x++
	}
}

// Fill paints the background of every cell whose origin lies in r.
func (s *Surface) Fill(r image.Rectangle, c color.RGBA) {
	if c.A == 0 {
		return
	}
	s.cells(r, func(x, y int, _ image.Point) {
		s.screen.SetContent(x, y, ' ', nil, s.bg.Background(rgb(c)))
	})
}

// Grid draws g with one cell per CellW×CellH block, sampling the grid value
// at each cell origin.
func (s *Surface) Grid(at image.Point, g *core.ByteGrid, palette []color.RGBA) {
	if len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	r := image.Rect(at.X, at.Y, at.X+g.W, at.Y+g.H)
	s.cells(r, func(x, y int, origin image.Point) {
		v := int(g.At(origin.X-at.X, origin.Y-at.Y))
		if v > last {
			v = last
		}
		c := palette[v]
		if c.A == 0 {
			return
		}
		s.screen.SetContent(x, y, '█', nil, s.bg.Foreground(rgb(c)))
	})
}

func (s *Surface) cells(r image.Rectangle, fn func(x, y int, origin image.Point)) {
	w, h := s.screen.Size()
	x0, y0 := ceilDiv(r.Min.X, CellW), ceilDiv(r.Min.Y, CellH)
	for y := max(y0, 0); y < h && y*CellH < r.Max.Y; y++ {
		for x := max(x0, 0); x < w && x*CellW < r.Max.X; x++ {
			fn(x, y, image.Pt(x*CellW, y*CellH))
		}
	}
}

func cell(p image.Point) (int, int) {
	return floorDiv(p.X, CellW), floorDiv(p.Y, CellH)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
