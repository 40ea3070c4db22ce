package gamemode

import "sync"

// Pointer holds the latest pointer state for hosts whose input arrives on a
// different goroutine than the tick.
type Pointer struct {
	mu     sync.Mutex
	cursor Cursor
	left   bool
}

func (p *Pointer) Move(x, y float64) {
	p.mu.Lock()
	p.cursor = Cursor{X: x, Y: y, Valid: true}
	p.left = false
	p.mu.Unlock()
}

// Leave marks the pointer as outside the play surface. It stays marked
// until the next Move.
func (p *Pointer) Leave() {
	p.mu.Lock()
	p.left = true
	p.mu.Unlock()
}

// Snapshot returns a consistent copy of the position and the left flag.
func (p *Pointer) Snapshot() (Cursor, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor, p.left
}
