//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"galapagos/internal/app"
	"galapagos/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("Galapagos")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Biotope.Width*cfg.Scale+cfg.HUDWidth, cfg.Biotope.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
