//go:build !ebiten

package app

import "errors"

var errNoWindow = errors.New("app: window build needs the ebiten tag")

// Game stands in for the window front end in headless builds.
type Game struct{}

// New panics; use Session directly or build with -tags ebiten.
func New(*Session) *Game { panic(errNoWindow) }

// Update reports errNoWindow.
func (g *Game) Update() error { return errNoWindow }

// Draw does nothing.
func (g *Game) Draw(any) {}

// Layout returns zeros.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
