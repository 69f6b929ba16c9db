package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// CellScreen is the part of tcell.Screen the terminal surface draws with.
type CellScreen interface {
	Clear()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// TerminalSurface rasterises shapes onto terminal cells. Each cell covers
// CellWidth x CellHeight world units and is painted by its background
// colour when its center falls inside a shape.
type TerminalSurface struct {
	screen     CellScreen
	CellWidth  float64
	CellHeight float64
}

func NewTerminalSurface(screen CellScreen, cellWidth, cellHeight float64) *TerminalSurface {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return &TerminalSurface{screen: screen, CellWidth: cellWidth, CellHeight: cellHeight}
}

// Viewport is the screen size in world units.
func (s *TerminalSurface) Viewport() (width, height float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.CellWidth, float64(rows) * s.CellHeight
}

func (s *TerminalSurface) Clear() {
	s.screen.Clear()
}

func (s *TerminalSurface) FillRect(x, y, width, height float64, clr color.Color) {
	style := cellStyle(clr)
	c0, c1 := s.span(x, x+width, s.CellWidth)
	r0, r1 := s.span(y, y+height, s.CellHeight)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.set(col, row, style)
		}
	}
}

func (s *TerminalSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	style := cellStyle(clr)
	c0, c1 := s.span(cx-radius, cx+radius, s.CellWidth)
	r0, r1 := s.span(cy-radius, cy+radius, s.CellHeight)
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * s.CellWidth
			py := (float64(row) + 0.5) * s.CellHeight
			if math.Hypot(px-cx, py-cy) <= radius {
				s.set(col, row, style)
				painted = true
			}
		}
	}
	// Shapes smaller than a cell still show up in the cell holding their center.
	if !painted {
		s.set(int(math.Floor(cx/s.CellWidth)), int(math.Floor(cy/s.CellHeight)), style)
	}
}

// span returns the first and last cell index whose center lies in [lo, hi].
func (s *TerminalSurface) span(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Floor(hi/size - 0.5))
	return first, last
}

func (s *TerminalSurface) set(col, row int, style tcell.Style) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.screen.SetContent(col, row, ' ', nil, style)
}

func cellStyle(clr color.Color) tcell.Style {
	return tcell.StyleDefault.Background(TerminalColor(clr))
}

// TerminalColor converts an image colour to a 24-bit terminal colour.
func TerminalColor(clr color.Color) tcell.Color {
	if clr == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
