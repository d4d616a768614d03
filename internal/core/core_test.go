package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeKeywords(t *testing.T) {
	for _, m := range Modes() {
		parsed, ok := ParseMode(m.String())
		require.True(t, ok, "keyword %q not recognised", m.String())
		assert.Equal(t, m, parsed)
	}
	_, ok := ParseMode("strife")
	assert.False(t, ok)
	assert.Equal(t, "", Mode(42).String())
}

func TestByteGridSampleCentresWindow(t *testing.T) {
	g := NewByteGrid(8, 8)
	g.Set(4, 4, 7)
	g.Set(0, 0, 3)

	dst := NewByteGrid(4, 4)
	g.Sample(dst, 4, 4, 1)
	assert.Equal(t, uint8(7), dst.At(2, 2), "centre cell should land in the middle of the window")

	g.Sample(dst, 0, 0, 1)
	assert.Equal(t, uint8(3), dst.At(2, 2))
	assert.Equal(t, uint8(0), dst.At(0, 0), "cells outside the source read as zero")
}

func TestByteGridIgnoresOutOfBounds(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Set(-1, 0, 9)
	g.Set(2, 2, 9)
	for _, c := range g.Cells() {
		assert.Zero(t, c)
	}
	assert.Zero(t, g.At(5, 5))
}

func TestFrameCounter(t *testing.T) {
	var fc FrameCounter
	start := time.Unix(100, 0)
	for i := 0; i < 30; i++ {
		fc.Tick(start.Add(time.Duration(i) * time.Second / 30))
	}
	assert.Zero(t, fc.FPS(), "no full window has elapsed yet")

	got := fc.Tick(start.Add(time.Second))
	assert.Equal(t, 31, got)
}

func TestPlacementArg(t *testing.T) {
	p := Placement{Args: []int{5}}
	assert.Equal(t, 5, p.Arg(0, 1))
	assert.Equal(t, 1, p.Arg(1, 1))
	assert.Equal(t, 1, p.Arg(-1, 1))
}
