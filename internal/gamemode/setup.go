package gamemode

import (
	"log"
	"math/rand"
	"time"

	"bounce/internal/config"
	"bounce/internal/entity"
	"bounce/internal/physics"
)

// OptionsFrom maps a validated config onto session options.
func OptionsFrom(cfg config.Config) Options {
	return Options{
		Bounds:            physics.Bounds{MaxX: float64(cfg.Width), MaxY: float64(cfg.Height)},
		StartingBalls:     cfg.StartingBalls,
		EscalateEvery:     cfg.EscalateEvery,
		EscalateBalls:     cfg.EscalateBalls,
		EndOnPointerLeave: cfg.EndOnPointerLeave,
	}
}

// Start builds a session from cfg. A zero seed is replaced by the clock and
// logged so the game can be replayed.
func Start(cfg config.Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting %q: %dx%d, %d balls, seed %d", cfg.Title, cfg.Width, cfg.Height, cfg.StartingBalls, seed)

	gen := entity.NewGenerator(rand.New(rand.NewSource(seed)), cfg.Ranges())
	return NewSession(gen, OptionsFrom(cfg))
}
