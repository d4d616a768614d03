package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"exhud/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceAlignments(t *testing.T) {
	bounds := image.Rect(0, 0, 320, 200)
	cases := []struct {
		name  string
		flags core.Flags
		want  image.Point
	}{
		{"top_left", core.AlignLeftTop, image.Pt(2, 4)},
		{"top_right", core.AlignRightTop, image.Pt(320 - 2 - 40, 4)},
		{"bottom_left", core.AlignLeftBottom, image.Pt(2, 200 - 4 - 8)},
		{"bottom_right", core.AlignRightBottom, image.Pt(320 - 2 - 40, 200 - 4 - 8)},
		{"top", core.AlignTop, image.Pt((320-40)/2 + 2, 4)},
		{"bottom", core.AlignBottom, image.Pt((320-40)/2 + 2, 200 - 4 - 8)},
		{"left", core.AlignLeft, image.Pt(2, (200-8)/2 + 4)},
		{"right", core.AlignRight, image.Pt(320 - 2 - 40, (200-8)/2 + 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Place(tc.flags, 2, 4, 40, 8, bounds)
			assert.Equal(t, tc.want, got.Min)
			assert.Equal(t, 40, got.Dx())
			assert.Equal(t, 8, got.Dy())
		})
	}
}

func TestViewportReservesInset(t *testing.T) {
	rec := NewRecorder(320, 200, 8, 8)
	vp := Viewport{Surface: rec, Inset: 32}

	vp.DrawText(0, 0, core.AlignLeftBottom, "ab", color.RGBA{A: 255})
	vp.DrawText(0, 0, core.AlignLeftBottom|core.FlagNoOffset, "ab", color.RGBA{A: 255})

	require.Len(t, rec.Ops, 2)
	assert.Equal(t, 200-32-8, rec.Ops[0].Rect.Min.Y)
	assert.Equal(t, 200-8, rec.Ops[1].Rect.Min.Y)
}

func TestViewportShadowsExText(t *testing.T) {
	rec := NewRecorder(320, 200, 8, 8)
	vp := Viewport{Surface: rec}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	vp.DrawText(10, 10, core.AlignLeftTop|core.FlagExText, "hp", white)
	require.Len(t, rec.Ops, 2, "ex text draws a shadow first")
	assert.Equal(t, image.Pt(11, 11), rec.Ops[0].Rect.Min)
	assert.Equal(t, white, rec.Ops[1].Color)

	cells := NewRecorder(80, 25, 1, 1)
	Viewport{Surface: cells}.DrawText(0, 0, core.AlignLeftTop|core.FlagExText, "hp", white)
	assert.Len(t, cells.Ops, 1, "no shadow on cell surfaces")
}

func TestViewportSkipsEmptyDraws(t *testing.T) {
	rec := NewRecorder(10, 10, 1, 1)
	vp := Viewport{Surface: rec}
	vp.DrawText(0, 0, core.AlignLeftTop, "", color.RGBA{})
	vp.FillRect(0, 0, 0, 5, core.AlignLeftTop, color.RGBA{})
	vp.DrawGrid(0, 0, core.AlignLeftTop, nil, nil)
	assert.Empty(t, rec.Ops)
}

func TestFillPalette(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 3*4)
	FillPalette(buf, []uint8{0, 1, 9}, palette)
	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}, buf)

	FillPalette(buf, []uint8{0, 1, 2}, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

func TestRecorderDump(t *testing.T) {
	rec := NewRecorder(10, 10, 1, 1)
	rec.Text(image.Pt(1, 2), "fps", color.RGBA{})
	rec.Fill(image.Rect(0, 0, 2, 2), color.RGBA{})
	var buf bytes.Buffer
	require.NoError(t, rec.Dump(&buf))
	assert.Equal(t, "text (1,2)-(4,3) \"fps\"\nfill (0,0)-(2,2)\n", buf.String())
}
