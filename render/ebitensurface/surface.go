// Package ebitensurface draws the scene onto ebiten images. It lives apart
// from render so terminal builds do not link ebiten.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image. World units map 1:1 to pixels.
type EbitenSurface struct {
	dst *ebiten.Image
	// Antialias smooths circle edges. Rectangles are axis-aligned and never
	// need it.
	Antialias bool
}

func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, Antialias: true}
}

// Target switches the image drawn to, so one surface can serve every frame.
func (s *EbitenSurface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Clear()
}

func (s *EbitenSurface) FillRect(x, y, width, height float64, clr color.Color) {
	if s.dst == nil || clr == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	if s.dst == nil || clr == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), clr, s.Antialias)
}
