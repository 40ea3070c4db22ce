package entity

import (
	"image/color"
	"math/rand"
)

// Color is one of the fixed ball paints.
type Color int

const (
	Blue Color = iota
	Red
	Yellow
	Orange
	Pink
	Green
	Black
)

// Colors lists every paint a generated ball can take.
var Colors = []Color{Blue, Red, Yellow, Orange, Pink, Green, Black}

var colorNames = [...]string{"blue", "red", "yellow", "orange", "pink", "green", "black"}

// Same values a browser uses for the named colors.
var colorRGBA = [...]color.RGBA{
	{0x00, 0x00, 0xff, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0xff, 0xa5, 0x00, 0xff},
	{0xff, 0xc0, 0xcb, 0xff},
	{0x00, 0x80, 0x00, 0xff},
	{0x00, 0x00, 0x00, 0xff},
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// RGBA returns the paint as a drawable color. Unknown values paint black.
func (c Color) RGBA() color.RGBA {
	if c < 0 || int(c) >= len(colorRGBA) {
		return colorRGBA[Black]
	}
	return colorRGBA[c]
}

// Ball is a single bouncing ball. Position is its center in pixels,
// speeds are pixels per second and gravity is pixels per second squared.
type Ball struct {
	X, Y    float64
	Radius  int
	HSpeed  float64
	VSpeed  float64
	Gravity float64
	Color   Color
}

// R returns the radius as a float for geometry.
func (b *Ball) R() float64 {
	return float64(b.Radius)
}

// Ranges bounds the random attributes of generated balls. All bounds are inclusive.
type Ranges struct {
	RadiusMin, RadiusMax   int
	SpeedMin, SpeedMax     int
	GravityMin, GravityMax int
}

// DefaultRanges are the classic spawn ranges.
var DefaultRanges = Ranges{
	RadiusMin: 30, RadiusMax: 70,
	SpeedMin: 100, SpeedMax: 300,
	GravityMin: 60, GravityMax: 120,
}

// Generator produces balls with randomized attributes.
type Generator struct {
	rng    *rand.Rand
	ranges Ranges
}

func NewGenerator(rng *rand.Rand, ranges Ranges) *Generator {
	return &Generator{rng: rng, ranges: ranges}
}

// Generate returns a new ball somewhere in the upper half of a w x h viewport,
// so that it has room to fall before its first bounce.
func (g *Generator) Generate(w, h float64) Ball {
	// 1. Radius first, the position depends on it
	r := g.intIn(g.ranges.RadiusMin, g.ranges.RadiusMax)

	// 2. Position: anywhere horizontally, never below the middle
	x := g.intIn(r, int(w)-r)
	y := g.intIn(r, int(h/2)-r)

	// 3. Motion
	speed := g.intIn(g.ranges.SpeedMin, g.ranges.SpeedMax)
	gravity := g.intIn(g.ranges.GravityMin, g.ranges.GravityMax)

	return Ball{
		X:       float64(x),
		Y:       float64(y),
		Radius:  r,
		HSpeed:  float64(speed),
		VSpeed:  0,
		Gravity: float64(gravity),
		Color:   Colors[g.rng.Intn(len(Colors))],
	}
}

// Pick returns a uniformly chosen index in [0, n).
func (g *Generator) Pick(n int) int {
	return g.rng.Intn(n)
}

// intIn draws uniformly from [lo, hi]. A collapsed range yields lo.
func (g *Generator) intIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
