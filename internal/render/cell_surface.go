package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// ColCellBg fills every cell on Clear.
var ColCellBg = color.RGBA{0xff, 0xff, 0xff, 0xff}

// CellSurface rasterizes onto a terminal, one cell covering CellW x CellH
// pixels. Shapes paint cell backgrounds; text keeps the background under it.
type CellSurface struct {
	screen       tcell.Screen
	CellW, CellH float64
}

func NewCellSurface(screen tcell.Screen, cellW, cellH int) *CellSurface {
	return &CellSurface{screen: screen, CellW: float64(cellW), CellH: float64(cellH)}
}

// PixelSize is the pixel area covered by the whole screen.
func (s *CellSurface) PixelSize() (w, h float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.CellW, float64(rows) * s.CellH
}

// CellCenter maps a cell to the pixel at its center.
func (s *CellSurface) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.CellW, (float64(row) + 0.5) * s.CellH
}

func (s *CellSurface) Clear() {
	cols, rows := s.screen.Size()
	bg := tcell.StyleDefault.Background(tcell.FromImageColor(ColCellBg))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
}

func (s *CellSurface) FillCircle(cx, cy, r float64, c color.Color) {
	c0, r0, c1, r1 := s.cellRange(cx-r, cy-r, cx+r, cy+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px, py := s.CellCenter(col, row)
			if math.Hypot(px-cx, py-cy) <= r {
				s.paint(col, row, c)
			}
		}
	}
}

func (s *CellSurface) FillRect(x, y, w, h float64, c color.Color) {
	c0, r0, c1, r1 := s.cellRange(x, y, x+w, y+h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.paint(col, row, c)
		}
	}
}

// StrokeRect draws a one-cell border whatever the requested width.
func (s *CellSurface) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	c0, r0 := s.cellAt(x, y)
	c1, r1 := int(math.Ceil((x+w)/s.CellW))-1, int(math.Ceil((y+h)/s.CellH))-1
	for col := c0; col <= c1; col++ {
		s.paint(col, r0, c)
		s.paint(col, r1, c)
	}
	for row := r0; row <= r1; row++ {
		s.paint(c0, row, c)
		s.paint(c1, row, c)
	}
}

func (s *CellSurface) Text(str string, x, y, size float64, align Align, c color.Color) {
	runes := []rune(str)
	left := AlignX(x, float64(len(runes))*s.CellW, align)
	col := int(math.Round(left / s.CellW))
	// the text sits on the row holding its vertical middle
	row := int(math.Floor((y - size/2) / s.CellH))

	fg := tcell.FromImageColor(c)
	cols, rows := s.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for i, ch := range runes {
		cx := col + i
		if cx < 0 || cx >= cols {
			continue
		}
		_, _, style, _ := s.screen.GetContent(cx, row)
		s.screen.SetContent(cx, row, ch, nil, style.Foreground(fg))
	}
}

// MeasureText counts one cell per rune.
func (s *CellSurface) MeasureText(str string, _ float64) float64 {
	return float64(len([]rune(str))) * s.CellW
}

// cellAt maps a pixel to the cell containing it. The result may lie off screen.
func (s *CellSurface) cellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / s.CellW)), int(math.Floor(y / s.CellH))
}

// cellRange returns the inclusive cell span of a pixel box, clipped to the
// screen. The span is empty (c0 > c1 or r0 > r1) when the box is off screen.
func (s *CellSurface) cellRange(x0, y0, x1, y1 float64) (c0, r0, c1, r1 int) {
	cols, rows := s.screen.Size()
	c0, r0 = s.cellAt(x0, y0)
	c1 = int(math.Ceil(x1/s.CellW)) - 1
	r1 = int(math.Ceil(y1/s.CellH)) - 1
	return max(c0, 0), max(r0, 0), min(c1, cols-1), min(r1, rows-1)
}

// paint sets a cell background, blending translucent colors over what is there.
func (s *CellSurface) paint(col, row int, c color.Color) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	mainc, comb, style, _ := s.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	style = style.Background(blend(bg, c))
	s.screen.SetContent(col, row, mainc, comb, style)
}

func blend(under tcell.Color, over color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(over).(color.NRGBA)
	if n.A == 0xff {
		return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
	}

	ur, ug, ub := under.RGB()
	if ur < 0 {
		ur, ug, ub = int32(ColCellBg.R), int32(ColCellBg.G), int32(ColCellBg.B)
	}
	a := int32(n.A)
	mix := func(o uint8, u int32) int32 {
		return (int32(o)*a + u*(0xff-a)) / 0xff
	}
	return tcell.NewRGBColor(mix(n.R, ur), mix(n.G, ug), mix(n.B, ub))
}
