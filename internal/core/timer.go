package core

import "time"

// FrameCounter measures rendered frames per second over one-second windows.
type FrameCounter struct {
	frames int
	fps    int
	start  time.Time
}

// Tick records one frame drawn at now and returns the latest rate.
func (f *FrameCounter) Tick(now time.Time) int {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.fps = int(float64(f.frames) / elapsed.Seconds())
		f.frames = 0
		f.start = now
	}
	return f.fps
}

// FPS returns the rate measured over the last complete window.
func (f *FrameCounter) FPS() int { return f.fps }
