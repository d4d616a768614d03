package core

import (
	"image"
	"image/color"
)

// Mode identifies the game family whose HUD sections are read from the
// configuration text.
type Mode int

const (
	// ModeDoom selects "doom" sections.
	ModeDoom Mode = iota
	// ModeHeretic selects "heretic" sections.
	ModeHeretic
	// ModeHexen selects "hexen" sections.
	ModeHexen
)

var modeNames = [...]string{
	ModeDoom:    "doom",
	ModeHeretic: "heretic",
	ModeHexen:   "hexen",
}

// Modes lists every supported game mode.
func Modes() []Mode {
	return []Mode{ModeDoom, ModeHeretic, ModeHexen}
}

// String returns the keyword used for the mode in configuration headers.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return ""
	}
	return modeNames[m]
}

// ParseMode resolves a configuration keyword to a Mode.
func ParseMode(s string) (Mode, bool) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return ModeDoom, false
}

// Game is the read-only view of the engine consumed by the HUD.
type Game interface {
	Mode() Mode
	Settings() Settings
	// FullView reports whether the engine renders without the status bar.
	FullView() bool
	AutomapActive() bool
	StrictMode() bool
	// InLevel reports whether a level is being played (not a menu, demo
	// screen or intermission).
	InLevel() bool
	Snapshot() *Snapshot
}

// MinimapStarter is implemented by games that must prepare automap state
// before a minimap can be drawn.
type MinimapStarter interface {
	StartMinimap()
}

// Placement carries the decoded position and parameters of one widget.
type Placement struct {
	X, Y  int
	Flags Flags
	Args  []int
}

// Arg returns the i-th optional parameter or def when it was not given.
func (p Placement) Arg(i, def int) int {
	if i < 0 || i >= len(p.Args) {
		return def
	}
	return p.Args[i]
}

// Widget is the per-instance state of one HUD component. Update advances
// the widget from game state; Draw renders it and may read s for widgets
// that are only drawn on screens where Update does not run.
type Widget interface {
	Update(s *Snapshot)
	Draw(c Canvas, s *Snapshot)
}

// Canvas is the widget-facing drawing API. Coordinates are offsets that the
// canvas resolves against the screen using the alignment flags.
type Canvas interface {
	// Metrics returns the width of one glyph and the height of one line.
	Metrics() (charW, lineH int)
	DrawText(x, y int, flags Flags, s string, c color.RGBA)
	FillRect(x, y, w, h int, flags Flags, c color.RGBA)
	DrawGrid(x, y int, flags Flags, g *ByteGrid, palette []color.RGBA)
}

// Surface is a drawing backend addressed in absolute screen coordinates.
type Surface interface {
	Size() (w, h int)
	Metrics() (charW, lineH int)
	Text(at image.Point, s string, c color.RGBA)
	Fill(r image.Rectangle, c color.RGBA)
	Grid(at image.Point, g *ByteGrid, palette []color.RGBA)
}
