package assets

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the built-in monospace face scaled up to a pixel size.
type Face struct {
	src    text.Face
	scale  float64
	ascent float64
}

var (
	mu    sync.Mutex
	faces = map[float64]*Face{}
)

// LoadFace returns the monospace face for size pixels, building it on first use.
func LoadFace(size float64) *Face {
	if size <= 0 {
		log.Fatalf("Invalid font size %v", size)
	}

	mu.Lock()
	defer mu.Unlock()

	if f, ok := faces[size]; ok {
		return f
	}

	src := text.NewGoXFace(basicfont.Face7x13)
	scale := size / float64(basicfont.Face7x13.Height)
	f := &Face{
		src:    src,
		scale:  scale,
		ascent: src.Metrics().HAscent * scale,
	}
	faces[size] = f
	return f
}

// Width is the advance of s in pixels.
func (f *Face) Width(s string) float64 {
	return text.Advance(s, f.src) * f.scale
}

// Draw renders s with its left edge at x and its baseline at y.
func (f *Face) Draw(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(f.scale, f.scale)
	op.GeoM.Translate(x, y-f.ascent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, f.src, op)
}
