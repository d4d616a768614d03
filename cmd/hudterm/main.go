// Command hudterm runs the demo world with the extended HUD in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"exhud/internal/app"
	"exhud/internal/term"

	"github.com/gdamore/tcell/v2"
)

var runeActions = map[rune]app.Action{
	'1': app.ActionExHUD,
	'2': app.ActionFullView,
	'3': app.ActionFPS,
	'4': app.ActionMinimap,
	'5': app.ActionCoordinates,
	'6': app.ActionCommands,
	'7': app.ActionStrict,
	'8': app.ActionLevelSplits,
	'i': app.ActionIntermission,
	'r': app.ActionRenderStats,
	'n': app.ActionReset,
}

var keyActions = map[tcell.Key]app.Action{
	tcell.KeyF1:  app.ActionExHUD,
	tcell.KeyF2:  app.ActionFullView,
	tcell.KeyF3:  app.ActionFPS,
	tcell.KeyF4:  app.ActionMinimap,
	tcell.KeyF5:  app.ActionCoordinates,
	tcell.KeyF6:  app.ActionCommands,
	tcell.KeyF7:  app.ActionStrict,
	tcell.KeyF8:  app.ActionLevelSplits,
	tcell.KeyTab: app.ActionAutomap,
}

type input int

const (
	inputNone input = iota
	inputQuit
	inputPause
	inputAction
)

// classify maps a key event to what the run loop should do with it.
func classify(ev *tcell.EventKey) (input, app.Action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return inputQuit, app.ActionNone
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return inputQuit, app.ActionNone
		case ' ':
			return inputPause, app.ActionNone
		default:
			if a, ok := runeActions[r]; ok {
				return inputAction, a
			}
		}
	default:
		if a, ok := keyActions[ev.Key()]; ok {
			return inputAction, a
		}
	}
	return inputNone, app.ActionNone
}

func run(screen tcell.Screen, session *app.Session, tps int) error {
	surface := term.NewSurface(screen)
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				kind, action := classify(ev)
				switch kind {
				case inputQuit:
					return nil
				case inputPause:
					paused = !paused
				case inputAction:
					if err := session.Apply(action); err != nil {
						return err
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if !paused {
				session.Tick()
			}
			surface.Clear()
			session.Render(surface, now)
			screen.Show()
		}
	}
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hudterm: %v\n", err)
		os.Exit(1)
	}
	if cfg.TPS <= 0 {
		fmt.Fprintln(os.Stderr, "hudterm: -tps must be positive")
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	err = run(screen, session, cfg.TPS)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hudterm: %v\n", err)
		os.Exit(1)
	}
}
