package physics

import (
	"math"

	"bounce/internal/entity"
)

// Bounds is the play area, spanning from (0, 0) to (MaxX, MaxY).
type Bounds struct {
	MaxX, MaxY float64
}

// Touches reports whether the point (px, py) lies strictly inside the ball.
func Touches(b *entity.Ball, px, py float64) bool {
	return math.Hypot(px-b.X, py-b.Y) < b.R()
}

// Advance moves the ball dt seconds forward under its own gravity.
//
// Wall and floor bounces use the reflection dx' = 2dx ∓ r rather than exact
// elastic geometry. There is no ceiling.
func Advance(b *entity.Ball, dt float64, bounds Bounds) {
	r := b.R()

	// 1. Displacement under constant acceleration
	dx := b.HSpeed * dt
	dy := b.VSpeed*dt + b.Gravity*dt*dt/2

	// 2. Side walls
	if b.X+dx > bounds.MaxX-r {
		dx = dx*2 - r
		b.HSpeed = -b.HSpeed
	} else if b.X+dx < r {
		dx = dx*2 + r
		b.HSpeed = -b.HSpeed
	}

	// 3. Floor only
	if b.Y+dy > bounds.MaxY-r {
		dy = dy*2 - r
		b.VSpeed = -b.VSpeed
	}

	b.X += dx
	b.Y += dy

	// 4. Gravity always integrates, bounce or not
	b.VSpeed = b.Gravity*dt + b.VSpeed
}
