package widgets

import (
	"fmt"

	"exhud/internal/core"
)

type compositeTime struct {
	text
	showLabel bool
}

// NewCompositeTime shows total time with the current level time in
// parentheses. p1 = 0 hides the label.
func NewCompositeTime(p core.Placement) core.Widget {
	return &compositeTime{text: text{p: p}, showLabel: p.Arg(0, 1) != 0}
}

func (w *compositeTime) Update(s *core.Snapshot) {
	v := fmt.Sprintf("%s (%s)", formatTics(s.TotalTics), formatTics(s.LevelTics))
	if w.showLabel {
		v = label("time") + " " + v
	}
	w.set(line{v, colorNormal})
}

type localTime struct {
	text
	twelveHour bool
}

// NewLocalTime shows the wall clock. p1 = 1 selects a 12-hour clock.
func NewLocalTime(p core.Placement) core.Widget {
	return &localTime{text: text{p: p}, twelveHour: p.Arg(0, 0) == 1}
}

func (w *localTime) Update(s *core.Snapshot) {
	layout := "15:04:05"
	if w.twelveHour {
		layout = "3:04:05 PM"
	}
	w.set(line{s.Now.Format(layout), colorLabel})
}

type attempts struct{ text }

// NewAttempts shows how many times the current level was started.
func NewAttempts(p core.Placement) core.Widget { return &attempts{text{p: p}} }

func (w *attempts) Update(s *core.Snapshot) {
	if s.Level.Attempts <= 0 {
		w.set()
		return
	}
	w.set(line{labelled("attempts", "%d", s.Level.Attempts), colorLabel})
}

type eventSplit struct {
	text
	duration int
}

// NewEventSplit flashes the time of the latest event split. p1 is the
// display time in tics.
func NewEventSplit(p core.Placement) core.Widget {
	return &eventSplit{text: text{p: p}, duration: p.Arg(0, 3*core.TicRate)}
}

func (w *eventSplit) Update(s *core.Snapshot) {
	ev := s.Event
	if ev == nil || s.LevelTics < ev.Tic || s.LevelTics-ev.Tic >= w.duration {
		w.set()
		return
	}
	w.set(line{fmt.Sprintf("%s %s", ev.Name, formatTics(ev.Tic)), colorWarn})
}

type levelSplits struct {
	text
	rows int
}

// NewLevelSplits lists completed level times on the intermission screen.
// p1 caps the number of rows.
func NewLevelSplits(p core.Placement) core.Widget {
	return &levelSplits{text: text{p: p}, rows: clampRows(p.Arg(0, 0), 8, 32)}
}

func (w *levelSplits) Update(s *core.Snapshot) {
	splits := tail(s.Splits, w.rows)
	lines := make([]line, 0, len(splits))
	for _, sp := range splits {
		lines = append(lines, line{fmt.Sprintf("%-6s %s (%s)", sp.Level, formatTics(sp.Tics), formatTics(sp.Total)), colorNormal})
	}
	w.set(lines...)
}

// Draw formats the splits itself since the widget is only drawn during
// intermission, where no update pass runs.
func (w *levelSplits) Draw(c core.Canvas, s *core.Snapshot) {
	w.Update(s)
	w.text.Draw(c, s)
}
