package main

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"bounce/internal/config"
	"bounce/internal/gamemode"
	"bounce/internal/render"
)

// host drives a session on a terminal. Input is read on its own goroutine
// and handed over through a Pointer; everything else runs in run's loop.
type host struct {
	screen   tcell.Screen
	surf     *render.CellSurface
	session  *gamemode.Session
	clock    *gamemode.Clock
	interval time.Duration

	pointer  gamemode.Pointer
	quit     chan struct{}
	quitOnce sync.Once
	over     chan struct{}
}

func newHost(screen tcell.Screen, surf *render.CellSurface, session *gamemode.Session, clock *gamemode.Clock, interval time.Duration) *host {
	return &host{
		screen:   screen,
		surf:     surf,
		session:  session,
		clock:    clock,
		interval: interval,
		quit:     make(chan struct{}),
		over:     make(chan struct{}),
	}
}

// hostFor builds a host whose ticker follows the configured cadence.
func hostFor(cfg config.Config, screen tcell.Screen, surf *render.CellSurface, session *gamemode.Session) *host {
	return newHost(screen, surf, session, gamemode.NewClock(cfg.FixedStep.Duration), cfg.TickCadence())
}

// pollEvents forwards terminal input until the screen is finalized.
func (h *host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventMouse:
			col, row := ev.Position()
			h.pointer.Move(h.surf.CellCenter(col, row))
		case *tcell.EventFocus:
			if !ev.Focused {
				h.pointer.Leave()
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				h.quitOnce.Do(func() { close(h.quit) })
			}
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}
}

// run ticks the session until ctx ends or the player quits. Ticking stops
// at game over; the final frame stays on screen.
func (h *host) run(ctx context.Context) {
	go h.pollEvents()

	h.draw()
	h.clock.Start()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	tick := ticker.C

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.quit:
			return
		case <-tick:
			if h.step() {
				ticker.Stop()
				tick = nil
				close(h.over)
			}
			h.draw()
		}
	}
}

// step applies the latest pointer state and advances one tick.
func (h *host) step() bool {
	cur, left := h.pointer.Snapshot()
	h.session.SetCursor(cur)
	if left {
		h.session.PointerLeft()
	}
	return h.session.Tick(h.clock.Elapsed())
}

func (h *host) draw() {
	h.session.Draw(h.surf)
	h.screen.Show()
}
