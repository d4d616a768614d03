//go:build !ebiten

package ui

import (
	"image"
	"image/color"

	"exhud/internal/core"
)

// Surface is a no-op placeholder for headless builds.
type Surface struct{}

var _ core.Surface = (*Surface)(nil)

// NewSurface returns a stub surface in the headless build.
func NewSurface() *Surface { return &Surface{} }

// Begin is a no-op in the headless build.
func (s *Surface) Begin(any) {}

func (s *Surface) Size() (int, int)                               { return 0, 0 }
func (s *Surface) Metrics() (int, int)                            { return 1, 1 }
func (s *Surface) Text(image.Point, string, color.RGBA)           {}
func (s *Surface) Fill(image.Rectangle, color.RGBA)               {}
func (s *Surface) Grid(image.Point, *core.ByteGrid, []color.RGBA) {}
