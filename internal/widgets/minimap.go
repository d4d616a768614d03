package widgets

import (
	"image/color"

	"exhud/internal/core"
)

// Automap cell values understood by the minimap.
const (
	CellEmpty uint8 = iota
	CellFloor
	CellWall
	CellPlayer
)

var minimapPalette = []color.RGBA{
	CellEmpty:  {A: 0x80},
	CellFloor:  {R: 0x30, G: 0x30, B: 0x38, A: 0xc0},
	CellWall:   {R: 0xb0, G: 0x90, B: 0x50, A: 0xff},
	CellPlayer: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

type minimap struct {
	p    core.Placement
	view *core.ByteGrid
	step int
	seen bool
}

// NewMinimap samples the automap around the player. p1 and p2 set the
// window size in cells, p3 the number of map cells per sample.
func NewMinimap(p core.Placement) core.Widget {
	w := clampRows(p.Arg(0, 0), 32, 256)
	h := clampRows(p.Arg(1, 0), 24, 256)
	return &minimap{p: p, view: core.NewByteGrid(w, h), step: clampRows(p.Arg(2, 0), 1, 16)}
}

func (m *minimap) Update(s *core.Snapshot) {
	if s.Automap == nil {
		m.seen = false
		return
	}
	m.seen = true
	s.Automap.Sample(m.view, s.AutomapPos[0], s.AutomapPos[1], m.step)
	m.view.Set(m.view.W/2, m.view.H/2, CellPlayer)
}

func (m *minimap) Draw(c core.Canvas, _ *core.Snapshot) {
	if !m.seen {
		return
	}
	c.DrawGrid(m.p.X, m.p.Y, m.p.Flags, m.view, minimapPalette)
}

// AutomapPalette returns the colours used for automap cell values.
func AutomapPalette() []color.RGBA {
	return append([]color.RGBA(nil), minimapPalette...)
}
