// Package demo provides a scripted game world that feeds the HUD with
// plausible, deterministic signals: a player wandering a small level,
// counters, level splits and intermissions.
package demo

import (
	"fmt"
	"time"

	"exhud/internal/core"
	"exhud/internal/widgets"
	prng "exhud/pkg/core"
)

type weapon struct {
	name string
	ammo int
}

type modeData struct {
	level    string
	weapons  []weapon
	ammoMax  []int
	keys     int
	artifact string
}

var modes = map[core.Mode]modeData{
	core.ModeDoom: {
		level: "MAP%02d",
		weapons: []weapon{
			{"Fist", -1}, {"Pistol", 0}, {"Shotgun", 1}, {"Chaingun", 0},
			{"Rocket Launcher", 2}, {"Plasma Rifle", 3},
		},
		ammoMax: []int{200, 50, 50, 300},
		keys:    6,
	},
	core.ModeHeretic: {
		level: "E1M%d",
		weapons: []weapon{
			{"Staff", -1}, {"Elven Wand", 0}, {"Ethereal Crossbow", 1}, {"Dragon Claw", 2},
			{"Hellstaff", 3}, {"Phoenix Rod", 4}, {"Firemace", 5},
		},
		ammoMax:  []int{100, 50, 200, 200, 20, 150},
		keys:     3,
		artifact: "Quartz Flask",
	},
	core.ModeHexen: {
		level: "MAP%02d",
		weapons: []weapon{
			{"Spiked Gauntlets", -1}, {"Timon's Axe", 0}, {"Hammer of Retribution", 1},
		},
		ammoMax:  []int{200, 200},
		artifact: "Mystic Urn",
	},
}

var dirs = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

const (
	maxCommands = 32
	spawnRadius = 2
)

// World is a scripted core.Game.
type World struct {
	cfg      Config
	mode     core.Mode
	data     modeData
	settings core.Settings

	strict       bool
	fullView     bool
	automap      bool
	intermission bool
	interTics    int

	rng    *prng.RNG
	layout *core.ByteGrid
	mapped *core.ByteGrid
	px, py int
	dir    int
	level  int

	frames core.FrameCounter
	snap   core.Snapshot
}

var (
	_ core.Game           = (*World)(nil)
	_ core.MinimapStarter = (*World)(nil)
)

// New returns a world for mode with the given settings.
func New(mode core.Mode, settings core.Settings, cfg Config) *World {
	data, ok := modes[mode]
	if !ok {
		data = modes[core.ModeDoom]
	}
	if cfg.Width < 8 {
		cfg.Width = 8
	}
	if cfg.Height < 8 {
		cfg.Height = 8
	}
	w := &World{
		cfg:      cfg,
		mode:     mode,
		data:     data,
		settings: settings,
		layout:   core.NewByteGrid(cfg.Width, cfg.Height),
		mapped:   core.NewByteGrid(cfg.Width, cfg.Height),
	}
	w.Reset(cfg.Seed)
	return w
}

// Reset restarts the run from the first level.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = prng.NewRNG(seed)
	w.level = 0
	w.intermission = false
	w.snap = core.Snapshot{Now: w.snap.Now}
	w.nextLevel()
}

func (w *World) Mode() core.Mode         { return w.mode }
func (w *World) Settings() core.Settings { return w.settings }
func (w *World) FullView() bool          { return w.fullView }
func (w *World) AutomapActive() bool     { return w.automap }
func (w *World) StrictMode() bool        { return w.strict }
func (w *World) InLevel() bool           { return !w.intermission }

// Snapshot returns the signals of the current tic.
func (w *World) Snapshot() *core.Snapshot { return &w.snap }

// UpdateSettings applies fn to the settings.
func (w *World) UpdateSettings(fn func(*core.Settings)) { fn(&w.settings) }

func (w *World) ToggleFullView() { w.fullView = !w.fullView }
func (w *World) ToggleAutomap()  { w.automap = !w.automap }
func (w *World) ToggleStrict()   { w.strict = !w.strict }

// SetIntermission enters or leaves the intermission screen.
func (w *World) SetIntermission(on bool) {
	if on == w.intermission {
		return
	}
	if on {
		w.finishLevel()
		return
	}
	w.nextLevel()
}

// Intermission reports whether the intermission screen is showing.
func (w *World) Intermission() bool { return w.intermission }

// StartMinimap reveals the automap around the player.
func (w *World) StartMinimap() {
	w.reveal(w.cfg.Params.RevealRadius * 2)
}

// Frame records a rendered frame at now.
func (w *World) Frame(now time.Time) {
	w.snap.Now = now
	w.snap.FPS = w.frames.Tick(now)
}

// Step advances the world by one tic.
func (w *World) Step() {
	w.snap.TotalTics++
	if w.intermission {
		w.interTics--
		if w.interTics <= 0 {
			w.nextLevel()
		}
		return
	}
	w.snap.LevelTics++

	fwd, side, turn := w.walk()
	w.command(fmt.Sprintf("MF%d SR%d TR%d", fwd, side, turn))
	w.combat()
	w.events()
	w.renderStats()
	w.track()

	if w.snap.Player.Health <= 0 {
		w.restartLevel()
		return
	}
	if w.snap.LevelTics >= w.cfg.Params.LevelTics {
		w.finishLevel()
	}
}

func (w *World) nextLevel() {
	w.level++
	w.intermission = false
	w.snap.LevelTics = 0
	w.snap.Event = nil
	w.snap.Lines = w.snap.Lines[:0]
	w.snap.Level = core.Level{
		Name:         fmt.Sprintf(w.data.level, w.level),
		TotalKills:   w.cfg.Params.Monsters,
		TotalItems:   w.cfg.Params.Items,
		TotalSecrets: w.cfg.Params.Secrets,
		Attempts:     1,
	}
	w.snap.Player = w.spawnPlayer()
	w.generate()
}

func (w *World) restartLevel() {
	attempts := w.snap.Level.Attempts + 1
	w.level--
	w.nextLevel()
	w.snap.Level.Attempts = attempts
}

func (w *World) finishLevel() {
	total := w.snap.LevelTics
	if n := len(w.snap.Splits); n > 0 {
		total += w.snap.Splits[n-1].Total
	}
	w.snap.Splits = append(w.snap.Splits, core.Split{
		Level: w.snap.Level.Name,
		Tics:  w.snap.LevelTics,
		Total: total,
	})
	w.intermission = true
	w.interTics = w.cfg.Params.IntermissionTics
}

func (w *World) spawnPlayer() core.Player {
	p := core.Player{
		Health:   100,
		AmmoType: -1,
		Ammo:     make([]int, len(w.data.ammoMax)),
		MaxAmmo:  append([]int(nil), w.data.ammoMax...),
		Keys:     make([]bool, w.data.keys),
		Artifact: w.data.artifact,
	}
	for i, m := range p.MaxAmmo {
		p.Ammo[i] = m / 4
	}
	w.selectWeapon(&p, 1)
	return p
}

func (w *World) selectWeapon(p *core.Player, i int) {
	if i >= len(w.data.weapons) {
		i = 0
	}
	p.ReadyWeapon = i
	p.WeaponName = w.data.weapons[i].name
	p.AmmoType = w.data.weapons[i].ammo
}

// generate builds a walled cave and places the player at its centre.
func (w *World) generate() {
	cells := w.layout.Cells()
	for i := range cells {
		cells[i] = widgets.CellFloor
		if w.rng.Source().Float64() < w.cfg.Params.WallChance {
			cells[i] = widgets.CellWall
		}
	}
	smooth(w.layout, w.cfg.Params.SmoothPasses)
	for y := 0; y < w.layout.H; y++ {
		for x := 0; x < w.layout.W; x++ {
			if x == 0 || y == 0 || x == w.layout.W-1 || y == w.layout.H-1 {
				w.layout.Set(x, y, widgets.CellWall)
			}
		}
	}
	w.px, w.py = w.layout.W/2, w.layout.H/2
	for y := w.py - spawnRadius; y <= w.py+spawnRadius; y++ {
		for x := w.px - spawnRadius; x <= w.px+spawnRadius; x++ {
			if x > 0 && y > 0 && x < w.layout.W-1 && y < w.layout.H-1 {
				w.layout.Set(x, y, widgets.CellFloor)
			}
		}
	}
	w.mapped.Clear()
	w.dir = w.rng.IntN(len(dirs))
	w.reveal(w.cfg.Params.RevealRadius)
	w.syncPosition(0, 0)
}

// Walkable reports whether the player may stand on (x, y).
func (w *World) Walkable(x, y int) bool {
	return w.layout.In(x, y) && w.layout.At(x, y) != widgets.CellWall
}

// Position returns the player's cell.
func (w *World) Position() (int, int) { return w.px, w.py }

// Revealed counts the automap cells the player has seen.
func (w *World) Revealed() int {
	n := 0
	for _, v := range w.mapped.Cells() {
		if v != widgets.CellEmpty {
			n++
		}
	}
	return n
}

func (w *World) walk() (fwd, side, turn int) {
	if w.snap.LevelTics%4 != 0 {
		return 0, 0, 0
	}
	d := dirs[w.dir]
	nx, ny := w.px+d[0], w.py+d[1]
	if !w.Walkable(nx, ny) || w.rng.Chance(10) {
		w.dir = w.rng.IntN(len(dirs))
		return 0, 0, 64
	}
	w.px, w.py = nx, ny
	w.reveal(w.cfg.Params.RevealRadius)
	w.syncPosition(d[0], d[1])
	return 50, 0, 0
}

func (w *World) syncPosition(dx, dy int) {
	p := &w.snap.Player
	p.X = float64(w.px*64 + 32)
	p.Y = float64(w.py*64 + 32)
	p.MomX = float64(dx * 16)
	p.MomY = float64(dy * 16)
	p.Angle = float64(w.dir * 90)
	w.snap.Automap = w.mapped
	w.snap.AutomapPos = [2]int{w.px, w.py}
}

func (w *World) reveal(r int) {
	for y := w.py - r; y <= w.py+r; y++ {
		for x := w.px - r; x <= w.px+r; x++ {
			if w.layout.In(x, y) {
				w.mapped.Set(x, y, w.layout.At(x, y))
			}
		}
	}
}

func (w *World) command(s string) {
	w.snap.Commands = append(w.snap.Commands, s)
	if n := len(w.snap.Commands); n > maxCommands {
		w.snap.Commands = append(w.snap.Commands[:0], w.snap.Commands[n-maxCommands:]...)
	}
}

func (w *World) combat() {
	p := &w.snap.Player
	lvl := &w.snap.Level
	if w.rng.Chance(w.cfg.Params.FireChance) && p.AmmoType >= 0 && p.Ammo[p.AmmoType] > 0 {
		p.Ammo[p.AmmoType]--
		if lvl.Kills < lvl.TotalKills && w.rng.Chance(6) {
			lvl.Kills++
		}
	}
	if w.rng.Chance(w.cfg.Params.DamageChance) {
		dmg := w.rng.Between(3, 15)
		if p.Armor > 0 {
			absorbed := min(p.Armor, dmg/3)
			p.Armor -= absorbed
			dmg -= absorbed
			if p.Armor == 0 {
				p.ArmorClass = 0
			}
		}
		p.Health -= dmg
	}
}

func (w *World) events() {
	if !w.rng.Chance(w.cfg.Params.EventChance) {
		return
	}
	p := &w.snap.Player
	lvl := &w.snap.Level
	switch w.rng.IntN(5) {
	case 0:
		p.Health = min(p.Health+25, 200)
		if lvl.Items < lvl.TotalItems {
			lvl.Items++
		}
	case 1:
		p.Armor = min(p.Armor+50, 200)
		p.ArmorClass = max(p.ArmorClass, w.rng.Between(1, 2))
		if lvl.Items < lvl.TotalItems {
			lvl.Items++
		}
	case 2:
		for i := range p.Ammo {
			p.Ammo[i] = min(p.Ammo[i]+p.MaxAmmo[i]/5, p.MaxAmmo[i])
		}
		w.selectWeapon(p, p.ReadyWeapon+1)
	case 3:
		if lvl.Secrets < lvl.TotalSecrets {
			lvl.Secrets++
			w.mark("Secret")
		}
	case 4:
		if len(p.Keys) == 0 {
			return
		}
		k := w.rng.IntN(len(p.Keys))
		if !p.Keys[k] {
			p.Keys[k] = true
			w.mark("Key")
		}
		w.snap.Lines = append(w.snap.Lines, core.Line{ID: w.rng.Between(1, 900), Special: w.rng.Between(1, 140)})
	}
}

func (w *World) mark(name string) {
	w.snap.Event = &core.EventSplit{Name: name, Tic: w.snap.LevelTics}
}

func (w *World) renderStats() {
	w.snap.Render = core.RenderStats{
		Walls:     w.rng.Between(180, 640),
		Flats:     w.rng.Between(60, 220),
		Sprites:   w.rng.Between(0, 90),
		Visplanes: w.rng.Between(20, 128),
	}
}

func (w *World) track() {
	lvl := w.snap.Level
	w.snap.Tracked = append(w.snap.Tracked[:0],
		fmt.Sprintf("kills %d/%d", lvl.Kills, lvl.TotalKills),
		fmt.Sprintf("cell %d,%d", w.px, w.py),
	)
}
