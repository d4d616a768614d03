package hud

import (
	"exhud/internal/core"
	"exhud/internal/widgets"
)

// ID identifies a HUD component. Values index the descriptor table.
type ID int

const (
	AmmoText ID = iota
	ArmorText
	BigAmmo
	BigArmor
	BigArmorText
	BigArtifact
	BigHealth
	BigHealthText
	CompositeTime
	HealthText
	Keys
	ReadyAmmoText
	SpeedText
	StatTotals
	Tracker
	WeaponText
	RenderStats
	FPS
	Attempts
	LocalTime
	CoordinateDisplay
	LineDisplay
	CommandDisplay
	EventSplit
	LevelSplits
	Minimap
	ColorTest

	componentCount
)

// maxNameLen bounds component names and configuration tokens.
const maxNameLen = 63

// Descriptor is the immutable template of one component.
type Descriptor struct {
	Name string
	// New initializes the component for one placement.
	New          func(p core.Placement) core.Widget
	DefaultFlags core.Flags
	// Strict components are hidden while strict mode is active.
	Strict       bool
	OffByDefault bool
	// Intermission components are drawn on the intermission screen.
	Intermission bool
	// NotLevel components are skipped by the in-level passes.
	NotLevel bool
}

// Component is a live instance of a descriptor inside one container.
type Component struct {
	Descriptor
	On          bool
	Initialized bool
	Data        core.Widget
}

// Table is the full descriptor table, indexed by ID.
type Table [componentCount]Descriptor

var template = Table{
	AmmoText:      {Name: "ammo_text", New: widgets.NewAmmoText},
	ArmorText:     {Name: "armor_text", New: widgets.NewArmorText},
	BigAmmo:       {Name: "big_ammo", New: widgets.NewBigAmmo},
	BigArmor:      {Name: "big_armor", New: widgets.NewBigArmor, DefaultFlags: core.FlagNoOffset},
	BigArmorText:  {Name: "big_armor_text", New: widgets.NewBigArmorText},
	BigArtifact:   {Name: "big_artifact", New: widgets.NewBigArtifact},
	BigHealth:     {Name: "big_health", New: widgets.NewBigHealth, DefaultFlags: core.FlagNoOffset},
	BigHealthText: {Name: "big_health_text", New: widgets.NewBigHealthText},
	CompositeTime: {Name: "composite_time", New: widgets.NewCompositeTime},
	HealthText:    {Name: "health_text", New: widgets.NewHealthText},
	Keys:          {Name: "keys", New: widgets.NewKeys, DefaultFlags: core.FlagNoOffset},
	ReadyAmmoText: {Name: "ready_ammo_text", New: widgets.NewReadyAmmoText},
	SpeedText:     {Name: "speed_text", New: widgets.NewSpeedText},
	StatTotals:    {Name: "stat_totals", New: widgets.NewStatTotals},
	Tracker:       {Name: "tracker", New: widgets.NewTracker, Strict: true},
	WeaponText:    {Name: "weapon_text", New: widgets.NewWeaponText},
	RenderStats:   {Name: "render_stats", New: widgets.NewRenderStats, Strict: true, OffByDefault: true},
	FPS:           {Name: "fps", New: widgets.NewFPS, OffByDefault: true},
	Attempts:      {Name: "attempts", New: widgets.NewAttempts},
	LocalTime:     {Name: "local_time", New: widgets.NewLocalTime},
	CoordinateDisplay: {
		Name: "coordinate_display", New: widgets.NewCoordinateDisplay,
		Strict: true, OffByDefault: true,
	},
	LineDisplay: {
		Name: "line_display", New: widgets.NewLineDisplay,
		Strict: true, OffByDefault: true,
	},
	CommandDisplay: {
		Name: "command_display", New: widgets.NewCommandDisplay,
		Strict: true, OffByDefault: true, Intermission: true,
	},
	EventSplit:  {Name: "event_split", New: widgets.NewEventSplit},
	LevelSplits: {Name: "level_splits", New: widgets.NewLevelSplits, Intermission: true, NotLevel: true},
	Minimap:     {Name: "minimap", New: widgets.NewMinimap, OffByDefault: true},
	ColorTest:   {Name: "color_test", New: widgets.NewColorTest},
}

// Template returns a copy of the built-in descriptor table.
func Template() Table { return template }

// String returns the configuration name of the component.
func (id ID) String() string {
	if id < 0 || id >= componentCount {
		return "unknown"
	}
	return template[id].Name
}

// IDs lists every component identity in table order.
func IDs() []ID {
	ids := make([]ID, componentCount)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Lookup finds a component by its configuration name.
func (t *Table) Lookup(name string) (ID, bool) {
	if len(name) > maxNameLen {
		return 0, false
	}
	for i := range t {
		if t[i].Name == name {
			return ID(i), true
		}
	}
	return 0, false
}

// Lookup finds a built-in component by its configuration name.
func Lookup(name string) (ID, bool) { return template.Lookup(name) }
