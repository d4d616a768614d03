package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exhud/internal/core"
	"exhud/internal/hud"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverlaysDefaults(t *testing.T) {
	f, err := Parse([]byte(`
[game]
mode = heretic
strict = true

[HUD]
show_fps = true
exhud = false
status_bar_height = 40
`))
	require.NoError(t, err)
	assert.Equal(t, core.ModeHeretic, f.Mode)
	assert.True(t, f.Strict)
	assert.True(t, f.HUD.ShowFPS)
	assert.False(t, f.HUD.ExHUD)
	assert.True(t, f.HUD.HUDDisplayed, "unset keys keep their default")
	assert.Equal(t, 40, f.StatusBarHeight)
}

func TestParseRejectsUnknownMode(t *testing.T) {
	_, err := Parse([]byte("[game]\nmode = quake\n"))
	assert.ErrorContains(t, err, `"quake"`)
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFile(), f)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestSaveFileIsReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exhud.ini")
	want := DefaultFile()
	want.Mode = core.ModeHexen
	want.HUD.ShowMinimap = true
	want.HUD.CommandDisplay = true
	want.StatusBarHeight = 20

	require.NoError(t, SaveFile(path, want))
	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSourcePackagedOnly(t *testing.T) {
	text, err := NewSource("").HUDConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultHUD(), text)
}

func TestSourceAppendsPackaged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.cfg")
	require.NoError(t, os.WriteFile(path, []byte("doom off\nfps 0 0 top"), 0o644))

	text, err := Source{UserFile: path, Packaged: "doom ex\n"}.HUDConfig()
	require.NoError(t, err)
	assert.Equal(t, "doom off\nfps 0 0 top\ndoom ex\n", text)

	text, err = Source{UserFile: path}.HUDConfig()
	require.NoError(t, err)
	assert.Equal(t, "doom off\nfps 0 0 top", text)
}

func TestSourceMissingUserFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.cfg")).HUDConfig()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type modeGame struct{ mode core.Mode }

func (g modeGame) Mode() core.Mode          { return g.mode }
func (g modeGame) Settings() core.Settings  { return core.DefaultSettings() }
func (g modeGame) FullView() bool           { return false }
func (g modeGame) AutomapActive() bool      { return false }
func (g modeGame) StrictMode() bool         { return false }
func (g modeGame) InLevel() bool            { return false }
func (g modeGame) Snapshot() *core.Snapshot { return &core.Snapshot{} }

func TestPackagedLayoutsParse(t *testing.T) {
	for _, m := range core.Modes() {
		h := hud.New(modeGame{m}, NewSource(""))
		require.NoError(t, h.Init(), m.String())
		assert.Equal(t, hud.ExHUD, h.State(), m.String())
		assert.True(t, h.Container(hud.VariantFull).Loaded, m.String())
	}
	assert.True(t, strings.HasPrefix(DefaultHUD(), "#"))
}
