package obj

import "github.com/jakecoffman/cp"

// Platform is an axis-aligned rectangle in screen space (y grows downward).
type Platform struct {
	X, Y          float64
	Width, Height float64
}

func (p Platform) Left() float64   { return p.X }
func (p Platform) Right() float64  { return p.X + p.Width }
func (p Platform) Top() float64    { return p.Y }
func (p Platform) Bottom() float64 { return p.Y + p.Height }

// Bounds returns the platform as a chipmunk BB. cp's B/T are the min/max y, so
// in screen space B is the platform's top edge.
func (p Platform) Bounds() cp.BB {
	return cp.BB{L: p.Left(), B: p.Top(), R: p.Right(), T: p.Bottom()}
}

// Contains reports whether point lies inside the platform, edges included.
func (p Platform) Contains(point cp.Vector) bool {
	return p.Bounds().ContainsVect(point)
}

// Geometry is the static part of a scene: a ground strip along the bottom of
// the viewport and an ordered list of platforms.
type Geometry struct {
	GroundHeight float64
	Platforms    []Platform
}

// GroundTop is the y of the ground surface for a viewport of the given height.
func (g *Geometry) GroundTop(viewportHeight float64) float64 {
	return viewportHeight - g.GroundHeight
}
