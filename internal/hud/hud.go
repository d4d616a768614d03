// Package hud drives the extended HUD: it parses the placement
// configuration into containers of components, picks the container that
// matches the current view and dispatches per-frame updates and draws.
package hud

import (
	"io"
	"log"

	"exhud/internal/core"
	"exhud/internal/render"
)

// DefaultStatusBarHeight is the inset reserved by status bar containers.
const DefaultStatusBarHeight = 32

// Option configures a HUD.
type Option func(*HUD)

// WithLogger routes debug messages to l.
func WithLogger(l *log.Logger) Option {
	return func(h *HUD) {
		if l != nil {
			h.log = l
		}
	}
}

// WithStatusBarHeight sets the inset reserved by status bar containers.
func WithStatusBarHeight(px int) Option {
	return func(h *HUD) { h.statusBar = px }
}

// Beginner is implemented by widgets with a one-time side effect when they
// are switched on by the player.
type Beginner interface {
	Begin()
}

// HUD owns the containers and the active container selection.
type HUD struct {
	game      core.Game
	src       Source
	log       *log.Logger
	statusBar int

	table      Table
	containers [variantCount]Container
	active     *Container
	state      State

	configLoaded bool
	loadErr      error

	showRenderStats bool
}

// New creates a HUD for game reading its configuration from src.
func New(game core.Game, src Source, opts ...Option) *HUD {
	h := &HUD{
		game:       game,
		src:        src,
		log:        log.New(io.Discard, "", 0),
		statusBar:  DefaultStatusBarHeight,
		table:      template,
		containers: newContainers(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init runs the startup sequence: hide checks, configuration load,
// container selection and refresh.
func (h *HUD) Init() error {
	h.reset()
	if h.hidden() {
		return nil
	}
	if err := h.Load(); err != nil {
		return err
	}
	h.selectActive()
	h.Refresh()
	return nil
}

func (h *HUD) reset() {
	h.active = nil
	h.state = NoHUD
}

func (h *HUD) hidden() bool {
	s := h.game.Settings()
	return s.NoDraw || (h.game.FullView() && !s.HUDDisplayed)
}

func (h *HUD) selectActive() {
	v := VariantOff
	switch {
	case h.game.FullView():
		v = VariantFull
	case h.game.Settings().ExHUD:
		v = VariantEx
	}
	c := &h.containers[v]
	if !c.Loaded {
		h.log.Printf("hud: container %q not loaded", c.Name)
		h.reset()
		return
	}
	h.active = c
	h.state = v.state()
}

func (h *HUD) isActive() bool { return h.active != nil && h.active.Loaded }

func (h *HUD) suppressed(c *Component) bool {
	return c.Strict && h.game.StrictMode()
}

// Update advances every eligible component of the active container.
func (h *HUD) Update() {
	if !h.isActive() || h.game.AutomapActive() {
		return
	}
	snap := h.game.Snapshot()
	for i := range h.active.Components {
		c := &h.active.Components[i]
		if c.On && !c.NotLevel && !h.suppressed(c) {
			c.Data.Update(snap)
		}
	}
}

// Draw renders every eligible component of the active container onto s.
func (h *HUD) Draw(s core.Surface) {
	if !h.isActive() || h.game.AutomapActive() {
		return
	}
	canvas := render.Viewport{Surface: s, Inset: h.VerticalOffset()}
	snap := h.game.Snapshot()
	for i := range h.active.Components {
		c := &h.active.Components[i]
		if c.On && !c.NotLevel && !h.suppressed(c) {
			c.Data.Draw(canvas, snap)
		}
	}
}

// DrawIntermission renders the intermission components onto s.
func (h *HUD) DrawIntermission(s core.Surface) {
	if !h.isActive() {
		return
	}
	canvas := render.Viewport{Surface: s, Inset: h.VerticalOffset()}
	snap := h.game.Snapshot()
	for i := range h.active.Components {
		c := &h.active.Components[i]
		if c.On && c.Intermission && !h.suppressed(c) {
			c.Data.Draw(canvas, snap)
		}
	}
}

// ToggleRenderStats flips the render statistics display.
func (h *HUD) ToggleRenderStats() {
	h.showRenderStats = !h.showRenderStats
	if !h.isActive() {
		return
	}
	c := &h.active.Components[RenderStats]
	switch {
	case c.On && !h.showRenderStats:
		h.active.turnOff(RenderStats)
	case !c.On && h.showRenderStats:
		if b, ok := c.Data.(Beginner); ok && c.Initialized {
			b.Begin()
		}
		h.active.turnOn(RenderStats)
	}
}

// RenderStatsShown reports the persistent render statistics flag.
func (h *HUD) RenderStatsShown() bool { return h.showRenderStats }

// Refresh reapplies the settings driven toggles and, inside a level,
// updates the components once so the change shows immediately.
func (h *HUD) Refresh() {
	if !h.isActive() {
		return
	}
	h.active.set(RenderStats, h.showRenderStats)
	h.RefreshFPS()
	h.RefreshMinimap()
	h.RefreshLevelSplits()
	h.RefreshCoordinateDisplay()
	h.RefreshCommandDisplay()

	if h.game.InLevel() {
		h.Update()
	}
}

func (h *HUD) RefreshFPS() {
	if !h.isActive() {
		return
	}
	h.active.set(FPS, h.game.Settings().ShowFPS)
}

func (h *HUD) RefreshMinimap() {
	if !h.isActive() {
		return
	}
	if !h.game.Settings().ShowMinimap {
		h.active.turnOff(Minimap)
		return
	}
	h.active.turnOn(Minimap)
	if s, ok := h.game.(core.MinimapStarter); ok && h.game.InLevel() {
		s.StartMinimap()
	}
}

func (h *HUD) RefreshLevelSplits() {
	if !h.isActive() {
		return
	}
	h.active.set(LevelSplits, h.game.Settings().ShowLevelSplits)
}

// RefreshCoordinateDisplay toggles the coordinate and line displays together.
func (h *HUD) RefreshCoordinateDisplay() {
	if !h.isActive() {
		return
	}
	on := h.game.Settings().CoordinateDisplay
	h.active.set(CoordinateDisplay, on)
	h.active.set(LineDisplay, on)
}

func (h *HUD) RefreshCommandDisplay() {
	if !h.isActive() {
		return
	}
	h.active.set(CommandDisplay, h.game.Settings().CommandDisplay)
}

// VerticalOffset is the height other status widgets must keep free.
func (h *HUD) VerticalOffset() int {
	if h.isActive() && h.active.StatusBar {
		return h.statusBar
	}
	return 0
}

// State reports the active container.
func (h *HUD) State() State { return h.state }

// Container returns a copy of container v, or the zero Container when v is
// not a known variant.
func (h *HUD) Container(v Variant) Container {
	if v < 0 || v >= variantCount {
		return Container{}
	}
	return h.containers[v]
}

// Component returns a copy of component id in the active container.
func (h *HUD) Component(id ID) (Component, bool) {
	if !h.isActive() || id < 0 || id >= componentCount {
		return Component{}, false
	}
	return h.active.Components[id], true
}
