//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"exhud/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("exhud: %v", err)
	}
	game := app.New(session)

	ebiten.SetWindowTitle("exhud - " + session.World.Mode().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.ScreenW*cfg.Scale, app.ScreenH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
