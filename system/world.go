package system

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bridgefall/obj"
	"github.com/milk9111/bridgefall/prefabs"
)

// Viewport is the size of the drawing surface in world units (pixels).
type Viewport struct {
	Width, Height float64
}

type Palette struct {
	Ground   color.Color
	Platform color.Color
	Bridge   color.Color
	Body     color.Color
	Eye      color.Color
	Pupil    color.Color
	Leg      color.Color
}

// World is the simulation context handed to every system and to the
// renderer. Input belongs to the host; the world only reads it.
type World struct {
	Body     *obj.Body
	Geometry *obj.Geometry
	Bridge   *obj.Bridge
	Input    *obj.InputState

	Viewport Viewport
	Palette  Palette

	// TriggerDistance is how close (horizontally) the body must be to the
	// bridge for the activate action to drop it.
	TriggerDistance float64

	// Ticks counts completed simulation steps.
	Ticks uint64
}

// NewWorld builds a session from spec. Positions given relative to the
// bottom of the viewport are resolved against vp once, here.
func NewWorld(spec *prefabs.SceneSpec, input *obj.InputState, vp Viewport) *World {
	if input == nil {
		input = obj.NewInputState()
	}

	bs := spec.Body
	body := &obj.Body{
		Pos:          cp.Vector{X: bs.X, Y: vp.Height - bs.YFromBottom},
		Radius:       bs.Radius,
		LegRadius:    bs.LegRadius,
		Speed:        bs.Speed,
		Gravity:      bs.Gravity,
		Friction:     bs.Friction,
		JumpForce:    bs.JumpForce,
		LegSwing:     bs.LegSwing,
		LegPhaseStep: bs.LegPhaseStep,
		EyeRadius:    bs.EyeRadius,
		EyeOffsetX:   bs.EyeOffsetX,
		EyeOffsetY:   bs.EyeOffsetY,
		// Spawned in the air; the first tick settles it.
		Jumping: true,
	}

	geometry := &obj.Geometry{GroundHeight: spec.Ground.Height}
	for _, p := range spec.Platforms {
		geometry.Platforms = append(geometry.Platforms, obj.Platform{
			X:      p.X,
			Y:      vp.Height - p.YFromBottom,
			Width:  p.Width,
			Height: p.Height,
		})
	}

	anchor := geometry.Platforms[spec.Bridge.AnchorPlatform]
	target := geometry.Platforms[spec.Bridge.TargetPlatform]
	bridge := &obj.Bridge{
		Platform: obj.Platform{
			X:      anchor.Right(),
			Y:      anchor.Top() - spec.Bridge.Height,
			Width:  spec.Bridge.Width,
			Height: spec.Bridge.Height,
		},
		TargetY:     target.Top(),
		DescentRate: spec.Bridge.DescentRate,
	}

	c := spec.Colors
	return &World{
		Body:            body,
		Geometry:        geometry,
		Bridge:          bridge,
		Input:           input,
		Viewport:        vp,
		TriggerDistance: spec.Bridge.TriggerDistance,
		Palette: Palette{
			Ground:   c.Ground.Color,
			Platform: c.Platform.Color,
			Bridge:   c.Bridge.Color,
			Body:     c.Body.Color,
			Eye:      c.Eye.Color,
			Pupil:    c.Pupil.Color,
			Leg:      c.Leg.Color,
		},
	}
}

// SetViewport updates the surface size. The scene is anchored to the bottom
// edge, so a height change shifts the body, platforms and bridge with the
// ground. The screen edges follow the new width on the next tick.
func (w *World) SetViewport(width, height float64) {
	if w == nil {
		return
	}
	if dy := height - w.Viewport.Height; dy != 0 && w.Viewport.Height > 0 {
		w.Body.Pos.Y += dy
		for i := range w.Geometry.Platforms {
			w.Geometry.Platforms[i].Y += dy
		}
		w.Bridge.Y += dy
		w.Bridge.TargetY += dy
	}
	w.Viewport = Viewport{Width: width, Height: height}
}

// GroundTop is the y of the ground surface for the current viewport.
func (w *World) GroundTop() float64 {
	return w.Geometry.GroundTop(w.Viewport.Height)
}
