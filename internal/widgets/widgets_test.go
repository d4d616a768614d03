package widgets

import (
	"testing"
	"time"

	"exhud/internal/core"
	"exhud/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvas() (*render.Recorder, core.Canvas) {
	rec := render.NewRecorder(320, 200, 1, 10)
	return rec, render.Viewport{Surface: rec}
}

func topLeft(args ...int) core.Placement {
	return core.Placement{X: 2, Y: 2, Flags: core.AlignLeftTop, Args: args}
}

func TestLabelKeepsPercent(t *testing.T) {
	saved := dynamicGet
	t.Cleanup(func() { dynamicGet = saved })
	dynamicGet = func(id string, _ ...interface{}) string { return id + "%" }

	assert.Equal(t, "FPS%", label("FPS"))
	assert.Equal(t, "HEL% 50%", labelled("HEL", "%d%%", 50))
}

func TestLabelUntranslated(t *testing.T) {
	assert.Equal(t, "100%", label("100%"))
}

func TestFormatTics(t *testing.T) {
	assert.Equal(t, "0:00.00", formatTics(0))
	assert.Equal(t, "0:01.00", formatTics(35))
	assert.Equal(t, "1:00.20", formatTics(60*35+7))
	assert.Equal(t, "1:00:00.00", formatTics(3600*35))
	assert.Equal(t, "0:00.00", formatTics(-5))
}

func TestHealthTextColour(t *testing.T) {
	rec, c := canvas()
	w := NewHealthText(topLeft())
	w.Update(&core.Snapshot{Player: core.Player{Health: 20}})
	w.Draw(c, nil)

	require.Len(t, rec.Ops, 1)
	assert.Equal(t, "HEL 20%", rec.Ops[0].Text)
	assert.Equal(t, colorBad, rec.Ops[0].Color)
}

func TestReadyAmmoWithoutWeaponAmmo(t *testing.T) {
	rec, c := canvas()
	w := NewReadyAmmoText(topLeft())
	w.Update(&core.Snapshot{Player: core.Player{AmmoType: -1}})
	w.Draw(c, nil)
	assert.Equal(t, []string{"AMM N/A"}, rec.Texts())
}

func TestStatTotalsLayouts(t *testing.T) {
	snap := &core.Snapshot{Level: core.Level{Kills: 1, TotalKills: 4, Items: 2, TotalItems: 2, Secrets: 0, TotalSecrets: 1}}

	rec, c := canvas()
	w := NewStatTotals(topLeft())
	w.Update(snap)
	w.Draw(c, snap)
	assert.Equal(t, []string{"K 1/4 I 2/2 S 0/1"}, rec.Texts())

	rec, c = canvas()
	w = NewStatTotals(topLeft(1, 1))
	w.Update(snap)
	w.Draw(c, snap)
	assert.Equal(t, []string{"1/4", "2/2", "0/1"}, rec.Texts())
	assert.Equal(t, colorBlue, rec.Ops[1].Color, "completed items are highlighted")
}

func TestBottomAlignedLinesStackUpwards(t *testing.T) {
	rec, c := canvas()
	w := NewCoordinateDisplay(core.Placement{Flags: core.AlignLeftBottom})
	w.Update(&core.Snapshot{})
	w.Draw(c, nil)

	require.Len(t, rec.Ops, 5)
	assert.Equal(t, 200-5*10, rec.Ops[0].Rect.Min.Y, "first line is the highest")
	assert.Equal(t, 200-10, rec.Ops[4].Rect.Min.Y)
}

func TestRenderStatsBeginResetsPeaks(t *testing.T) {
	w := NewRenderStats(topLeft()).(*RenderStats)
	w.Update(&core.Snapshot{Render: core.RenderStats{Walls: 300, Sprites: 12}})
	w.Update(&core.Snapshot{Render: core.RenderStats{Walls: 100}})
	assert.Equal(t, 300, w.Peak().Walls)
	assert.Equal(t, 12, w.Peak().Sprites)

	w.Begin()
	assert.Equal(t, core.RenderStats{}, w.Peak())
}

func TestLevelSplitsDrawWithoutUpdate(t *testing.T) {
	rec, c := canvas()
	w := NewLevelSplits(topLeft(1))
	snap := &core.Snapshot{Splits: []core.Split{
		{Level: "MAP01", Tics: 35, Total: 35},
		{Level: "MAP02", Tics: 70, Total: 105},
	}}
	w.Draw(c, snap)
	assert.Equal(t, []string{"MAP02  0:02.00 (0:03.00)"}, rec.Texts())
}

func TestEventSplitExpires(t *testing.T) {
	w := NewEventSplit(topLeft(10))
	snap := &core.Snapshot{LevelTics: 40, Event: &core.EventSplit{Name: "Blue Key", Tic: 35}}

	rec, c := canvas()
	w.Update(snap)
	w.Draw(c, snap)
	assert.Equal(t, []string{"Blue Key 0:01.00"}, rec.Texts())

	snap.LevelTics = 45
	rec, c = canvas()
	w.Update(snap)
	w.Draw(c, snap)
	assert.Empty(t, rec.Texts())
}

func TestLocalTimeClock(t *testing.T) {
	now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	rec, c := canvas()
	w := NewLocalTime(topLeft(1))
	w.Update(&core.Snapshot{Now: now})
	w.Draw(c, nil)
	assert.Equal(t, []string{"3:04:05 PM"}, rec.Texts())
}

func TestMinimapSamplesAroundPlayer(t *testing.T) {
	rec, c := canvas()
	w := NewMinimap(topLeft(4, 4)).(*minimap)

	w.Draw(c, nil)
	assert.Empty(t, rec.Ops, "nothing to draw before an automap was seen")

	automap := core.NewByteGrid(16, 16)
	automap.Set(9, 8, CellWall)
	w.Update(&core.Snapshot{Automap: automap, AutomapPos: [2]int{8, 8}})
	w.Draw(c, nil)

	require.Len(t, rec.Ops, 1)
	assert.Equal(t, render.OpGrid, rec.Ops[0].Kind)
	assert.Equal(t, CellPlayer, w.view.At(2, 2))
	assert.Equal(t, CellWall, w.view.At(3, 2))
}

func TestKeysListsHeldKeys(t *testing.T) {
	rec, c := canvas()
	w := NewKeys(topLeft())
	w.Update(&core.Snapshot{Player: core.Player{Keys: []bool{true, false, true}}})
	w.Draw(c, nil)
	assert.Equal(t, []string{"B R"}, rec.Texts())
}
