//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"applause-ising/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.LatticeSize <= 0 {
		log.Fatalf("invalid lattice size %d", cfg.LatticeSize)
	}

	game := app.New(cfg)

	ebiten.SetWindowTitle("applause-ising")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.LatticeSize*cfg.Scale, cfg.LatticeSize*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
