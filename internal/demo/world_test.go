package demo

import (
	"testing"
	"time"

	"exhud/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quickConfig() Config {
	cfg := DefaultConfig()
	cfg.Params.LevelTics = 70
	cfg.Params.IntermissionTics = 10
	cfg.Params.DamageChance = 1 << 30
	return cfg
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":             "32",
		"seed":          "9",
		"level_tics":    "100",
		"wall_chance":   "0.5",
		"monsters":      "-3",
		"smooth_passes": "0",
	})
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 100, cfg.Params.LevelTics)
	assert.InDelta(t, 0.5, cfg.Params.WallChance, 1e-9)
	assert.Zero(t, cfg.Params.SmoothPasses)
	assert.Equal(t, DefaultConfig().Params.Monsters, cfg.Params.Monsters)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestWorldIsDeterministic(t *testing.T) {
	a := New(core.ModeDoom, core.DefaultSettings(), DefaultConfig())
	b := New(core.ModeDoom, core.DefaultSettings(), DefaultConfig())
	for i := 0; i < 500; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Snapshot().Player, b.Snapshot().Player)
	assert.Equal(t, a.Snapshot().Level, b.Snapshot().Level)
}

func TestPlayerStaysOnFloor(t *testing.T) {
	w := New(core.ModeHeretic, core.DefaultSettings(), DefaultConfig())
	for i := 0; i < 2000; i++ {
		w.Step()
		x, y := w.Position()
		require.True(t, w.Walkable(x, y), "tic %d at %d,%d", i, x, y)
		assert.Equal(t, [2]int{x, y}, w.Snapshot().AutomapPos)
	}
	assert.NotEmpty(t, w.Snapshot().Commands)
	assert.LessOrEqual(t, len(w.Snapshot().Commands), maxCommands)
}

func TestLevelEndsInIntermission(t *testing.T) {
	w := New(core.ModeDoom, core.DefaultSettings(), quickConfig())
	for i := 0; i < 70; i++ {
		require.True(t, w.InLevel())
		w.Step()
	}
	assert.False(t, w.InLevel())
	require.Len(t, w.Snapshot().Splits, 1)
	assert.Equal(t, core.Split{Level: "MAP01", Tics: 70, Total: 70}, w.Snapshot().Splits[0])

	for i := 0; i < 10; i++ {
		w.Step()
	}
	assert.True(t, w.InLevel())
	assert.Equal(t, "MAP02", w.Snapshot().Level.Name)
	assert.Zero(t, w.Snapshot().LevelTics)
	assert.Equal(t, 80, w.Snapshot().TotalTics)
}

func TestSetIntermission(t *testing.T) {
	w := New(core.ModeHexen, core.DefaultSettings(), DefaultConfig())
	w.Step()
	w.SetIntermission(true)
	w.SetIntermission(true)
	assert.True(t, w.Intermission())
	assert.Len(t, w.Snapshot().Splits, 1)

	w.SetIntermission(false)
	assert.True(t, w.InLevel())
	assert.Equal(t, "MAP02", w.Snapshot().Level.Name)
}

func TestStartMinimapRevealsMore(t *testing.T) {
	w := New(core.ModeDoom, core.DefaultSettings(), DefaultConfig())
	before := w.Revealed()
	w.StartMinimap()
	assert.Greater(t, w.Revealed(), before)
	assert.Same(t, w.Snapshot().Automap, w.mapped)
}

func TestToggles(t *testing.T) {
	w := New(core.ModeDoom, core.DefaultSettings(), DefaultConfig())
	w.ToggleFullView()
	w.ToggleAutomap()
	w.ToggleStrict()
	assert.True(t, w.FullView())
	assert.True(t, w.AutomapActive())
	assert.True(t, w.StrictMode())

	w.UpdateSettings(func(s *core.Settings) { s.ShowFPS = true })
	assert.True(t, w.Settings().ShowFPS)
}

func TestFrameMeasuresFPS(t *testing.T) {
	w := New(core.ModeDoom, core.DefaultSettings(), DefaultConfig())
	start := time.Unix(100, 0)
	for i := 0; i <= 60; i++ {
		w.Frame(start.Add(time.Duration(i) * time.Second / 60))
	}
	assert.Equal(t, 61, w.Snapshot().FPS)
	assert.Equal(t, start.Add(time.Second), w.Snapshot().Now)
}

func TestModeData(t *testing.T) {
	hexen := New(core.ModeHexen, core.DefaultSettings(), DefaultConfig())
	assert.Empty(t, hexen.Snapshot().Player.Keys)
	assert.Equal(t, "Mystic Urn", hexen.Snapshot().Player.Artifact)

	doom := New(core.ModeDoom, core.DefaultSettings(), DefaultConfig())
	p := doom.Snapshot().Player
	assert.Equal(t, "Pistol", p.WeaponName)
	assert.Equal(t, 0, p.AmmoType)
	assert.Equal(t, 50, p.Ammo[0])
}
