package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "optional INI file overriding the [Field] defaults")
	reduced := flag.Bool("reduced-motion", false, "skip the dust overlay, render the backdrop only")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Reduced motion is the caller's policy: the field is simply never
	// created when it is requested.
	allowMotion := !*reduced && os.Getenv("GOLDDUST_REDUCED_MOTION") == ""

	// Set up Ebitengine game
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Gold Dust - Space: Pause, Esc/Q: Quit")
	ebiten.SetTPS(60) // Target 60 ticks per second

	// Run the game loop
	if err := ebiten.RunGame(NewGame(cfg, allowMotion)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
