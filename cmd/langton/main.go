//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"langton/internal/app"
	"langton/internal/core"
	_ "langton/internal/sims/langton"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["langton"]
	if !ok {
		log.Fatal("langton sim not registered")
	}
	sim, err := factory(flags.SimParams())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, flags.GameOptions())

	ebiten.SetWindowTitle("langton: " + sim.Name())
	ebiten.SetTPS(flags.TPS)
	ebiten.SetWindowSize(flags.Width+flags.HUDWidth, flags.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
