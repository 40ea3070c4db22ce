package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"bounce/internal/config"
	"bounce/internal/logging"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	// 1. Configuration
	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if flags.WriteConfig != "" {
		if err := config.Save(flags.WriteConfig, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// 2. Logging
	if f := logging.Setup(flags.Debug, os.Stderr); f != nil {
		defer f.Close()
	}

	// 3. Window Setup
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if tps := cfg.TPS(); tps > 0 {
		ebiten.SetTPS(tps)
	}

	// 4. Initialize Game
	game := NewGame(cfg)

	// 5. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
