package gamemode

type PointerEvent int

const (
	PointerNone  PointerEvent = iota // Nothing to report
	PointerMove                      // Inside the surface
	PointerLeave                     // Outside the surface
)

// Tracker turns polled pointer positions into events for a W x H surface.
// The first observed position is where the pointer happened to be at
// startup, so the pointer stays unknown until it moves away from it.
type Tracker struct {
	W, H int

	started bool
	moved   bool
	startX  int
	startY  int
}

func (t *Tracker) Observe(x, y int) PointerEvent {
	if !t.started {
		t.started = true
		t.startX, t.startY = x, y
		return PointerNone
	}
	if !t.moved {
		if x == t.startX && y == t.startY {
			return PointerNone
		}
		t.moved = true
	}

	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return PointerLeave
	}
	return PointerMove
}
