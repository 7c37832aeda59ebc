package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"langton/internal/app"
	"langton/internal/core"
	"langton/internal/sims/langton"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	frames := flag.Int("frames", 600, "frames to simulate")
	every := flag.Int("every", 0, "print a progress line every N frames (0 disables)")
	realtime := flag.Bool("realtime", false, "pace frames at -tps instead of running flat out")
	flag.Parse()

	world, err := langton.NewWithConfig(langton.FromMap(flags.SimParams()))
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	step := func() bool {
		world.Step()
		if *every > 0 && world.Tick()%*every == 0 {
			fmt.Printf("tick %6d  speed %7.2f/frame  steps %10d  lit %d\n",
				world.Tick(), world.EffectiveSpeed(), world.SubSteps(), litCells(world))
		}
		return world.Tick() >= *frames
	}

	if *realtime {
		core.NewFixedStep(flags.TPS).Run(step)
	} else {
		for !step() {
		}
	}
	elapsed := time.Since(start)

	size := world.Size()
	fmt.Printf("\nran %d frames (%dx%d cells) in %s\n", world.Tick(), size.W, size.H, elapsed.Round(time.Millisecond))
	fmt.Printf("sub-steps %d, final speed %.2f/frame, lit cells %d\n",
		world.SubSteps(), world.EffectiveSpeed(), litCells(world))
	for i, a := range world.Ants() {
		fmt.Printf("ant %d at (%d,%d) heading %d\n", i, a.X, a.Y, a.Heading)
	}
}

// litCells counts cells whose trail intensity is still above the dark
// threshold, a rough measure of how much of the board is active.
func litCells(world *langton.World) int {
	threshold := float32(world.Config().DarkThreshold)
	count := 0
	for _, v := range world.Grid().Intensities() {
		if v >= threshold {
			count++
		}
	}
	return count
}
