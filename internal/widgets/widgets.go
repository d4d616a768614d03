// Package widgets implements the individual HUD components. Each constructor
// takes the decoded placement of one configuration directive and returns the
// per-instance state driven by the HUD controller.
package widgets

import (
	"fmt"
	"image/color"

	"exhud/internal/core"

	"github.com/leonelquinteros/gotext"
)

var (
	colorNormal = color.RGBA{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff}
	colorLabel  = color.RGBA{R: 0x9c, G: 0x9c, B: 0xa8, A: 0xff}
	colorGood   = color.RGBA{R: 0x40, G: 0xd0, B: 0x40, A: 0xff}
	colorWarn   = color.RGBA{R: 0xf0, G: 0xc0, B: 0x30, A: 0xff}
	colorBad    = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	colorBlue   = color.RGBA{R: 0x50, G: 0x80, B: 0xf0, A: 0xff}
)

// namedColors is the palette shown by the color_test widget.
var namedColors = []struct {
	name string
	col  color.RGBA
}{
	{"normal", colorNormal},
	{"label", colorLabel},
	{"good", colorGood},
	{"warn", colorWarn},
	{"bad", colorBad},
	{"blue", colorBlue},
}

type line struct {
	s string
	c color.RGBA
}

// text is the shared state of widgets that render a few lines of text.
type text struct {
	p     core.Placement
	lines []line
}

func (t *text) set(lines ...line) { t.lines = append(t.lines[:0], lines...) }

func (t *text) Draw(c core.Canvas, _ *core.Snapshot) {
	_, lh := c.Metrics()
	n := len(t.lines)
	for i, l := range t.lines {
		c.DrawText(t.p.X, lineY(t.p.Flags, t.p.Y, i, n, lh), t.p.Flags, l.s, l.c)
	}
}

// lineY returns the offset for line i of n so that the block grows away from
// the anchored edge.
func lineY(flags core.Flags, y, i, n, lh int) int {
	switch {
	case flags&core.FlagAlignTop != 0:
		return y + i*lh
	case flags&core.FlagAlignBottom != 0:
		return y + (n-1-i)*lh
	default:
		return y + i*lh - (n-1)*lh/2
	}
}

// dynamicGet looks up translations for runtime label ids.
var dynamicGet = gotext.Get

func label(id string) string { return dynamicGet(id) }

func labelled(id string, format string, a ...any) string {
	return label(id) + " " + fmt.Sprintf(format, a...)
}

// formatTics renders a tic count as m:ss.cc, or h:mm:ss.cc past an hour.
func formatTics(tics int) string {
	if tics < 0 {
		tics = 0
	}
	secs := tics / core.TicRate
	centis := (tics % core.TicRate) * 100 / core.TicRate
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d.%02d", secs/3600, secs/60%60, secs%60, centis)
	}
	return fmt.Sprintf("%d:%02d.%02d", secs/60, secs%60, centis)
}

func healthColor(v int) color.RGBA {
	switch {
	case v < 25:
		return colorBad
	case v < 50:
		return colorWarn
	case v <= 100:
		return colorGood
	default:
		return colorBlue
	}
}

func armorColor(class int) color.RGBA {
	switch {
	case class <= 0:
		return colorLabel
	case class == 1:
		return colorGood
	default:
		return colorBlue
	}
}

func ammoColor(v, max int) color.RGBA {
	if max <= 0 {
		return colorNormal
	}
	switch {
	case v*4 < max:
		return colorBad
	case v*2 < max:
		return colorWarn
	default:
		return colorGood
	}
}

func fraction(v, total int) color.RGBA {
	if total > 0 && v >= total {
		return colorBlue
	}
	return colorNormal
}

func clampRows(n, def, max int) int {
	if n <= 0 {
		n = def
	}
	if n > max {
		n = max
	}
	return n
}

func tail[T any](s []T, n int) []T {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
