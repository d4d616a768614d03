//go:build ebiten

package app

import (
	"time"

	"exhud/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Logical screen size of the window build.
const (
	ScreenW = 480
	ScreenH = 300
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeyF1:  ActionExHUD,
	ebiten.KeyF2:  ActionFullView,
	ebiten.KeyF3:  ActionFPS,
	ebiten.KeyF4:  ActionMinimap,
	ebiten.KeyF5:  ActionCoordinates,
	ebiten.KeyF6:  ActionCommands,
	ebiten.KeyF7:  ActionStrict,
	ebiten.KeyF8:  ActionLevelSplits,
	ebiten.KeyTab: ActionAutomap,
	ebiten.KeyI:   ActionIntermission,
	ebiten.KeyR:   ActionRenderStats,
	ebiten.KeyN:   ActionReset,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	surface *ui.Surface
	paused  bool
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	return &Game{session: s, surface: ui.NewSurface()}
}

// Update handles input and advances the world by one tic.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.session.Apply(action); err != nil {
				return err
			}
		}
	}
	if !g.paused {
		g.session.Tick()
	}
	return nil
}

// Draw renders the HUD over the demo view.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	g.session.Render(g.surface, time.Now())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}
