package widgets

import (
	"fmt"
	"math"
	"strings"

	"exhud/internal/core"
)

type fps struct{ text }

// NewFPS shows the measured frame rate.
func NewFPS(p core.Placement) core.Widget { return &fps{text{p: p}} }

func (w *fps) Update(s *core.Snapshot) {
	c := colorGood
	if s.FPS < core.TicRate {
		c = colorBad
	}
	w.set(line{labelled("FPS", "%d", s.FPS), c})
}

// RenderStats shows renderer counters for the last frame and the peaks seen
// since Begin.
type RenderStats struct {
	text
	peak core.RenderStats
}

// NewRenderStats constructs the render_stats widget.
func NewRenderStats(p core.Placement) core.Widget { return &RenderStats{text: text{p: p}} }

// Begin resets the recorded peaks.
func (w *RenderStats) Begin() { w.peak = core.RenderStats{} }

// Peak returns the highest counters seen since Begin.
func (w *RenderStats) Peak() core.RenderStats { return w.peak }

func (w *RenderStats) Update(s *core.Snapshot) {
	r := s.Render
	w.peak.Walls = max(w.peak.Walls, r.Walls)
	w.peak.Flats = max(w.peak.Flats, r.Flats)
	w.peak.Sprites = max(w.peak.Sprites, r.Sprites)
	w.peak.Visplanes = max(w.peak.Visplanes, r.Visplanes)
	w.set(
		line{fmt.Sprintf("%s %4d/%4d  %s %4d/%4d", label("Walls"), r.Walls, w.peak.Walls, label("Flats"), r.Flats, w.peak.Flats), colorNormal},
		line{fmt.Sprintf("%s %4d/%4d  %s %4d/%4d", label("Sprites"), r.Sprites, w.peak.Sprites, label("Planes"), r.Visplanes, w.peak.Visplanes), colorNormal},
	)
}

type coordinateDisplay struct{ text }

// NewCoordinateDisplay shows position, angle and velocity.
func NewCoordinateDisplay(p core.Placement) core.Widget { return &coordinateDisplay{text{p: p}} }

func (w *coordinateDisplay) Update(s *core.Snapshot) {
	pl := &s.Player
	angle := math.Mod(pl.Angle, 360)
	if angle < 0 {
		angle += 360
	}
	speed := math.Hypot(pl.MomX, pl.MomY)
	vc := colorNormal
	if speed > 0 {
		vc = colorGood
	}
	w.set(
		line{fmt.Sprintf("X: %.3f", pl.X), colorNormal},
		line{fmt.Sprintf("Y: %.3f", pl.Y), colorNormal},
		line{fmt.Sprintf("Z: %.3f", pl.Z), colorNormal},
		line{fmt.Sprintf("A: %.1f", angle), colorNormal},
		line{fmt.Sprintf("V: %.3f", speed), vc},
	)
}

type lineDisplay struct {
	text
	rows int
}

// NewLineDisplay lists recently activated lines. p1 caps the rows.
func NewLineDisplay(p core.Placement) core.Widget {
	return &lineDisplay{text: text{p: p}, rows: clampRows(p.Arg(0, 0), 4, 16)}
}

func (w *lineDisplay) Update(s *core.Snapshot) {
	lines := make([]line, 0, w.rows)
	for _, l := range tail(s.Lines, w.rows) {
		lines = append(lines, line{fmt.Sprintf("%s %d: %d", label("line"), l.ID, l.Special), colorLabel})
	}
	w.set(lines...)
}

type commandDisplay struct {
	text
	rows int
}

// NewCommandDisplay lists the most recent player commands. p1 caps the rows.
func NewCommandDisplay(p core.Placement) core.Widget {
	return &commandDisplay{text: text{p: p}, rows: clampRows(p.Arg(0, 0), 10, 32)}
}

func (w *commandDisplay) Update(s *core.Snapshot) {
	cmds := tail(s.Commands, w.rows)
	lines := make([]line, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, line{c, colorNormal})
	}
	w.set(lines...)
}

type tracker struct {
	text
	rows int
}

// NewTracker shows the tracked things, lines and sectors. p1 caps the rows.
func NewTracker(p core.Placement) core.Widget {
	return &tracker{text: text{p: p}, rows: clampRows(p.Arg(0, 0), 4, 16)}
}

func (w *tracker) Update(s *core.Snapshot) {
	tracked := s.Tracked
	if len(tracked) > w.rows {
		tracked = tracked[:w.rows]
	}
	lines := make([]line, 0, len(tracked))
	for _, t := range tracked {
		lines = append(lines, line{t, colorWarn})
	}
	w.set(lines...)
}

type statTotals struct {
	text
	vertical   bool
	hideLabels bool
}

// NewStatTotals shows kill, item and secret counts. p1 = 1 stacks them
// vertically, p2 = 1 hides the labels.
func NewStatTotals(p core.Placement) core.Widget {
	return &statTotals{text: text{p: p}, vertical: p.Arg(0, 0) == 1, hideLabels: p.Arg(1, 0) == 1}
}

func (w *statTotals) Update(s *core.Snapshot) {
	lv := &s.Level
	parts := []line{
		w.part("K", lv.Kills, lv.TotalKills),
		w.part("I", lv.Items, lv.TotalItems),
		w.part("S", lv.Secrets, lv.TotalSecrets),
	}
	if w.vertical {
		w.set(parts...)
		return
	}
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.s)
	}
	c := colorNormal
	if lv.Kills >= lv.TotalKills && lv.Items >= lv.TotalItems && lv.Secrets >= lv.TotalSecrets {
		c = colorBlue
	}
	w.set(line{b.String(), c})
}

func (w *statTotals) part(id string, v, total int) line {
	s := fmt.Sprintf("%d/%d", v, total)
	if !w.hideLabels {
		s = label(id) + " " + s
	}
	return line{s, fraction(v, total)}
}

type colorTest struct{ text }

// NewColorTest draws each HUD colour name in its own colour.
func NewColorTest(p core.Placement) core.Widget {
	w := &colorTest{text{p: p}}
	lines := make([]line, 0, len(namedColors))
	for _, nc := range namedColors {
		lines = append(lines, line{nc.name, nc.col})
	}
	w.set(lines...)
	return w
}

func (w *colorTest) Update(*core.Snapshot) {}
