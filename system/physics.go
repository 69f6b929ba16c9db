package system

import (
	"github.com/milk9111/bridgefall/common"
	"github.com/milk9111/bridgefall/obj"
)

// PhysicsSystem moves the body one tick. Its constants assume roughly one
// tick per frame at 60Hz; there is no fixed timestep.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *World) {
	if w == nil || w.Body == nil || w.Geometry == nil {
		return
	}
	Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
}

// Advance runs one physics step: horizontal control, leg animation, jump,
// gravity, Euler integration, ground clamp, leg/platform collision and the
// horizontal screen clamp, in that order.
func Advance(body *obj.Body, geometry *obj.Geometry, bridge *obj.Bridge, input *obj.InputState, vp Viewport) {
	switch {
	case input.Pressed(obj.ActionMoveRight):
		body.Vel.X = body.Speed
		body.LegPhase += body.LegPhaseStep
	case input.Pressed(obj.ActionMoveLeft):
		body.Vel.X = -body.Speed
		body.LegPhase += body.LegPhaseStep
	default:
		body.Vel.X *= body.Friction
	}
	body.LegPhase = common.WrapPhase(body.LegPhase)

	if input.AnyPressed(obj.JumpActions...) && !body.Jumping {
		body.Vel.Y = -body.JumpForce
		body.Jumping = true
	}

	body.Vel.Y += body.Gravity
	body.Pos = body.Pos.Add(body.Vel)

	// Airborne until a ground or platform contact below says otherwise.
	body.Jumping = true

	groundTop := geometry.GroundTop(vp.Height)
	if body.Bottom() > groundTop {
		body.Pos.Y = groundTop - body.Radius
		body.Vel.Y = 0
		body.Jumping = false
	}

	landOnPlatforms(body, geometry, bridge, groundTop)

	body.Pos.X = common.Clamp(body.Pos.X, body.Radius, vp.Width-body.Radius)
}

// landOnPlatforms samples both legs once, before any snap, and tests each
// against every platform. When the legs touch two platforms in one tick the
// one evaluated last wins. A settled bridge is evaluated after the static
// platforms. Only the part of a platform above groundTop is solid, so a
// body walking on the ground passes under the bridge instead of stepping
// onto its top.
func landOnPlatforms(body *obj.Body, geometry *obj.Geometry, bridge *obj.Bridge, groundTop float64) {
	left, right := body.Legs()
	land := func(p obj.Platform) {
		p, ok := aboveGround(p, groundTop)
		if !ok {
			return
		}
		if p.Contains(left) {
			body.Land(p.Top())
		}
		if p.Contains(right) {
			body.Land(p.Top())
		}
	}
	for _, p := range geometry.Platforms {
		land(p)
	}
	if bridge != nil && bridge.Settled() {
		land(bridge.Platform)
	}
}

// aboveGround clips p so its bottom is no lower than groundTop. ok is false
// when nothing of p is left.
func aboveGround(p obj.Platform, groundTop float64) (obj.Platform, bool) {
	if p.Bottom() > groundTop {
		p.Height = groundTop - p.Y
	}
	return p, p.Height > 0
}
