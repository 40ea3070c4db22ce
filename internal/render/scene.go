package render

import (
	"fmt"
	"image/color"
	"strconv"

	"bounce/internal/entity"
)

// Align anchors text horizontally at its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font sizes in pixels, monospace.
const (
	HUDSize    = 20
	BannerSize = 30
)

// HUD placement.
const (
	HUDMargin   = 10
	HUDBaseline = 30
)

var (
	ColHUD     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColOverlay = color.NRGBA{0xff, 0x00, 0x00, 0x80}
	ColBox     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColFrame   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColBanner  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// Surface is the drawing primitive set a host provides. Coordinates are
// pixels with the origin at the top left; text y is the baseline.
type Surface interface {
	Clear()
	FillCircle(cx, cy, r float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	Text(s string, x, y, size float64, align Align, c color.Color)
	MeasureText(s string, size float64) float64
}

// Scene is everything DrawScene reads.
type Scene struct {
	Width, Height float64
	Score         int
	Balls         []entity.Ball
}

// DrawScene clears the surface and draws every ball plus the HUD.
func DrawScene(s Surface, sc Scene) {
	s.Clear()

	for i := range sc.Balls {
		b := &sc.Balls[i]
		s.FillCircle(b.X, b.Y, b.R(), b.Color.RGBA())
	}

	// Score on the left, ball count on the right
	s.Text(strconv.Itoa(sc.Score), HUDMargin, HUDBaseline, HUDSize, AlignLeft, ColHUD)
	s.Text(fmt.Sprintf("BALLS: %d", len(sc.Balls)), sc.Width-HUDMargin, HUDBaseline, HUDSize, AlignRight, ColHUD)
}

// DrawGameOver tints the whole surface red and boxes the farewell message
// in the middle.
func DrawGameOver(s Surface, w, h float64, msg string) {
	s.FillRect(0, 0, w, h, ColOverlay)

	tw := s.MeasureText(msg, BannerSize)
	bx, by := w/2-tw/2-20, h/2-30
	bw, bh := tw+40, 60.0

	s.FillRect(bx, by, bw, bh, ColBox)
	s.StrokeRect(bx, by, bw, bh, 4, ColFrame)
	s.Text(msg, w/2, h/2+10, BannerSize, AlignCenter, ColBanner)
}

// AlignX returns the left edge of text of width w anchored at x.
func AlignX(x, w float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return x - w/2
	case AlignRight:
		return x - w
	}
	return x
}
