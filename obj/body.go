package obj

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body is the player: a circle with two swinging legs and a pair of eyes.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector

	Radius    float64
	LegRadius float64

	// Speed is the horizontal velocity set while a move key is held.
	Speed float64
	// Gravity is added to Vel.Y every tick.
	Gravity float64
	// Friction scales Vel.X every tick without horizontal input. In (0,1).
	Friction  float64
	JumpForce float64

	// LegSwing is the amplitude of the sinusoidal leg displacement.
	LegSwing float64
	// LegPhaseStep is added to LegPhase on every tick with horizontal input.
	LegPhaseStep float64
	LegPhase     float64

	// Jumping is true while the body is not resting on the ground or a platform.
	Jumping bool

	EyeRadius  float64
	EyeOffsetX float64
	EyeOffsetY float64
}

// LegSwingOffset is the horizontal displacement added to the left leg and
// subtracted from the right leg.
func (b *Body) LegSwingOffset() float64 {
	return math.Sin(b.LegPhase) * b.LegSwing
}

// Legs returns the centers of the left and right legs. Rendering and
// platform collision both sample legs through this method.
func (b *Body) Legs() (left, right cp.Vector) {
	swing := b.LegSwingOffset()
	y := b.LegY()
	left = cp.Vector{X: b.Pos.X - b.Radius + swing, Y: y}
	right = cp.Vector{X: b.Pos.X + b.Radius - swing, Y: y}
	return left, right
}

// LegY is the shared vertical position of both legs.
func (b *Body) LegY() float64 {
	return b.Pos.Y + b.Radius + b.LegRadius
}

// Bottom is the lowest point of the body circle.
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.Radius
}

// Eyes returns the centers of the left and right eyes.
func (b *Body) Eyes() (left, right cp.Vector) {
	y := b.Pos.Y + b.EyeOffsetY
	return cp.Vector{X: b.Pos.X - b.EyeOffsetX, Y: y}, cp.Vector{X: b.Pos.X + b.EyeOffsetX, Y: y}
}

// PupilRadius is half the eye radius.
func (b *Body) PupilRadius() float64 {
	return b.EyeRadius / 2
}

// Land rests the body with its legs on a surface at y = top.
func (b *Body) Land(top float64) {
	b.Pos.Y = top - b.Radius - b.LegRadius
	b.Vel.Y = 0
	b.Jumping = false
}

// Grounded reports whether the body is resting.
func (b *Body) Grounded() bool {
	return !b.Jumping && b.Vel.Y == 0
}
