package app

import (
	"image"
	"image/color"
	"time"

	"exhud/internal/core"
	"exhud/internal/demo"
	"exhud/internal/hud"
	"exhud/internal/widgets"
)

// Action is a player input understood by a Session.
type Action int

const (
	ActionNone Action = iota
	ActionExHUD
	ActionFullView
	ActionFPS
	ActionMinimap
	ActionCoordinates
	ActionCommands
	ActionStrict
	ActionLevelSplits
	ActionAutomap
	ActionIntermission
	ActionRenderStats
	ActionReset
)

var (
	backgroundColor = color.RGBA{R: 0x18, G: 0x14, B: 0x14, A: 0xff}
	statusBarColor  = color.RGBA{R: 0x40, G: 0x38, B: 0x30, A: 0xff}
)

// Session runs the demo world and the HUD together.
type Session struct {
	World *demo.World
	HUD   *hud.HUD
	seed  int64
}

// NewSession builds a session from the parsed flags and initializes the HUD.
func NewSession(c *Config) (*Session, error) {
	f, err := c.Load()
	if err != nil {
		return nil, err
	}
	c.ApplyLocale()
	world := c.NewWorld(f)
	s := &Session{World: world, HUD: c.NewHUD(world, f), seed: c.Seed}
	if err := s.HUD.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Tick advances the world one tic and updates the HUD.
func (s *Session) Tick() {
	s.World.Step()
	if s.World.InLevel() {
		s.HUD.Update()
	}
}

// Apply handles one player action.
func (s *Session) Apply(a Action) error {
	w, h := s.World, s.HUD
	switch a {
	case ActionExHUD:
		w.UpdateSettings(func(st *core.Settings) { st.ExHUD = !st.ExHUD })
		return h.Init()
	case ActionFullView:
		w.ToggleFullView()
		return h.Init()
	case ActionFPS:
		w.UpdateSettings(func(st *core.Settings) { st.ShowFPS = !st.ShowFPS })
		h.RefreshFPS()
	case ActionMinimap:
		w.UpdateSettings(func(st *core.Settings) { st.ShowMinimap = !st.ShowMinimap })
		h.RefreshMinimap()
	case ActionCoordinates:
		w.UpdateSettings(func(st *core.Settings) { st.CoordinateDisplay = !st.CoordinateDisplay })
		h.RefreshCoordinateDisplay()
	case ActionCommands:
		w.UpdateSettings(func(st *core.Settings) { st.CommandDisplay = !st.CommandDisplay })
		h.RefreshCommandDisplay()
	case ActionLevelSplits:
		w.UpdateSettings(func(st *core.Settings) { st.ShowLevelSplits = !st.ShowLevelSplits })
		h.RefreshLevelSplits()
	case ActionStrict:
		w.ToggleStrict()
	case ActionAutomap:
		w.ToggleAutomap()
	case ActionIntermission:
		w.SetIntermission(!w.Intermission())
	case ActionRenderStats:
		h.ToggleRenderStats()
	case ActionReset:
		w.Reset(s.seed)
		h.Refresh()
	}
	return nil
}

// Render draws one frame at now onto surf.
func (s *Session) Render(surf core.Surface, now time.Time) {
	s.World.Frame(now)

	sw, sh := surf.Size()
	surf.Fill(image.Rect(0, 0, sw, sh), backgroundColor)
	if off := s.HUD.VerticalOffset(); off > 0 {
		surf.Fill(image.Rect(0, sh-off, sw, sh), statusBarColor)
	}

	if s.World.Intermission() {
		s.HUD.DrawIntermission(surf)
		return
	}
	if s.World.AutomapActive() {
		snap := s.World.Snapshot()
		if g := snap.Automap; g != nil {
			surf.Grid(image.Pt((sw-g.W)/2, (sh-g.H)/2), g, widgets.AutomapPalette())
		}
		return
	}
	s.HUD.Draw(surf)
}
