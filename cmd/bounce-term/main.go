package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"bounce/internal/config"
	"bounce/internal/gamemode"
	"bounce/internal/logging"
	"bounce/internal/render"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if flags.WriteConfig != "" {
		if err := config.Save(flags.WriteConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The screen belongs to tcell, logs go to a file or nowhere
	if f := logging.Setup(flags.Debug, io.Discard); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBOUNCE CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	// The terminal size fixes the play area
	surf := render.NewCellSurface(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	w, h := surf.PixelSize()
	cfg.Width, cfg.Height = int(w), int(h)
	if err := cfg.Validate(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := gamemode.Start(cfg)
	hostFor(cfg, screen, surf, session).run(ctx)

	screen.Fini()
	fmt.Printf("score: %d\n", session.Score)
}
