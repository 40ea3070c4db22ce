package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bounce/internal/assets"
	"bounce/internal/render"
)

// ColBg shows through wherever nothing is drawn.
var ColBg = color.RGBA{0xff, 0xff, 0xff, 0xff}

// EbitenSurface draws onto an ebiten image.
type EbitenSurface struct {
	dst *ebiten.Image
}

func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

func (s *EbitenSurface) Clear() {
	s.dst.Fill(ColBg)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, true)
}

func (s *EbitenSurface) Text(str string, x, y, size float64, align render.Align, c color.Color) {
	face := assets.LoadFace(size)
	face.Draw(s.dst, str, render.AlignX(x, face.Width(str), align), y, c)
}

func (s *EbitenSurface) MeasureText(str string, size float64) float64 {
	return assets.LoadFace(size).Width(str)
}
