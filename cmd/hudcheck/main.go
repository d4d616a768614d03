// Command hudcheck loads a HUD configuration and reports what each container
// places.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"exhud/internal/app"
	"exhud/internal/hud"
	"exhud/internal/render"
	tsurf "exhud/internal/term"

	"golang.org/x/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	asJSON := flag.Bool("json", false, "print the report as JSON")
	frame := flag.Bool("frame", false, "dump the draw calls of one frame")
	flag.Parse()

	os.Exit(check(cfg, os.Stdout, os.Stderr, *asJSON, *frame))
}

func check(cfg *app.Config, stdout, stderr io.Writer, asJSON, frame bool) int {
	session, err := app.NewSession(cfg)
	if err != nil {
		var ce *hud.ConfigError
		if errors.As(err, &ce) {
			fmt.Fprintf(stderr, "hudcheck: %v\n  %d | %s\n", ce.Err, ce.Line, ce.Text)
		} else {
			fmt.Fprintf(stderr, "hudcheck: %v\n", err)
		}
		return 1
	}

	r := NewReport(session.World.Mode().String(), session.HUD)
	if asJSON {
		out, err := r.JSON()
		if err != nil {
			fmt.Fprintf(stderr, "hudcheck: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(out))
	} else if err := r.WriteText(stdout, isTerminal(stdout)); err != nil {
		fmt.Fprintf(stderr, "hudcheck: %v\n", err)
		return 1
	}

	if frame {
		cols, rows := terminalSize(stdout)
		rec := render.NewRecorder(cols*tsurf.CellW, rows*tsurf.CellH, tsurf.CellW, tsurf.CellH)
		session.Render(rec, time.Now())
		if err := rec.Dump(stdout); err != nil {
			fmt.Fprintf(stderr, "hudcheck: %v\n", err)
			return 1
		}
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalSize falls back to 80×25 when w is not a terminal.
func terminalSize(w io.Writer) (int, int) {
	if f, ok := w.(*os.File); ok {
		if cols, rows, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	return 80, 25
}
