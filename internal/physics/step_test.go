package physics

import (
	"math"
	"testing"

	"bounce/internal/entity"
)

var bounds = Bounds{MaxX: 800, MaxY: 600}

func TestAdvanceFreeFall(t *testing.T) {
	b := entity.Ball{X: 400, Y: 100, Radius: 30, HSpeed: 100, Gravity: 100}

	Advance(&b, 0.5, bounds)

	if b.X != 450 {
		t.Fatalf("x = %f, want 450", b.X)
	}
	// dy = 0*0.5 + 100*0.25/2
	if b.Y != 112.5 {
		t.Fatalf("y = %f, want 112.5", b.Y)
	}
	if b.VSpeed != 50 {
		t.Fatalf("vspeed = %f, want 50", b.VSpeed)
	}
	if b.HSpeed != 100 {
		t.Fatalf("hspeed = %f, want unchanged 100", b.HSpeed)
	}
}

func TestAdvanceRightWall(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		speed  float64
		radius int
	}{
		{"Just inside", 765, 200, 30},
		{"Touching", 770, 250, 30},
		{"Large ball", 725, 150, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := entity.Ball{X: tt.x, Y: 100, Radius: tt.radius, HSpeed: tt.speed, Gravity: 60}
			Advance(&b, 0.1, bounds)
			if b.HSpeed != -tt.speed {
				t.Fatalf("hspeed = %f, want %f", b.HSpeed, -tt.speed)
			}
			if b.X > bounds.MaxX {
				t.Fatalf("x = %f tunneled past %f", b.X, bounds.MaxX)
			}
			want := tt.x + (tt.speed*0.1)*2 - float64(tt.radius)
			if math.Abs(b.X-want) > 1e-9 {
				t.Fatalf("x = %f, want %f", b.X, want)
			}
		})
	}
}

func TestAdvanceLeftWall(t *testing.T) {
	b := entity.Ball{X: 35, Y: 100, Radius: 30, HSpeed: -100, Gravity: 60}

	Advance(&b, 0.1, bounds)

	if b.HSpeed != 100 {
		t.Fatalf("hspeed = %f, want 100", b.HSpeed)
	}
	// dx = -10 -> 2*(-10) + 30 = 10
	if math.Abs(b.X-45) > 1e-9 {
		t.Fatalf("x = %f, want 45", b.X)
	}
}

func TestAdvanceFloor(t *testing.T) {
	b := entity.Ball{X: 400, Y: 565, Radius: 30, HSpeed: 0, VSpeed: 200, Gravity: 100}

	Advance(&b, 0.1, bounds)

	// dy = 20 + 0.5 = 20.5 -> 2*20.5 - 30 = 11
	if math.Abs(b.Y-576) > 1e-9 {
		t.Fatalf("y = %f, want 576", b.Y)
	}
	// negated first, then gravity integrates: -200 + 10
	if math.Abs(b.VSpeed-(-190)) > 1e-9 {
		t.Fatalf("vspeed = %f, want -190", b.VSpeed)
	}
}

func TestAdvanceNoCeiling(t *testing.T) {
	b := entity.Ball{X: 400, Y: 10, Radius: 30, VSpeed: -500, Gravity: 60}

	Advance(&b, 0.1, bounds)

	if b.Y >= 0 {
		t.Fatalf("y = %f, expected the ball to rise past the top", b.Y)
	}
	if b.VSpeed >= 0 {
		t.Fatalf("vspeed = %f, expected still rising", b.VSpeed)
	}
}

func TestTouches(t *testing.T) {
	b := entity.Ball{X: 100, Y: 100, Radius: 50}
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"Center", 100, 100, true},
		{"Inside", 130, 130, true},
		{"On edge", 150, 100, false},
		{"Outside", 200, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Touches(&b, tt.px, tt.py); got != tt.want {
				t.Errorf("Touches(%f, %f) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
