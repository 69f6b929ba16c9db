package system

import (
	"log"
	"math"

	"github.com/milk9111/bridgefall/obj"
)

// BridgeSystem drops the bridge when the body stands near it with activate
// held. The check runs every tick; Trigger ignores it once the bridge has
// left the upright state.
type BridgeSystem struct{}

func NewBridgeSystem() *BridgeSystem {
	return &BridgeSystem{}
}

func (s *BridgeSystem) Update(w *World) {
	if w == nil || w.Bridge == nil || w.Body == nil {
		return
	}
	bridge := w.Bridge

	near := math.Abs(w.Body.Pos.X-bridge.X) < w.TriggerDistance
	if near && w.Input.Pressed(obj.ActionActivate) {
		if bridge.Trigger() {
			log.Printf("bridge: falling from y=%.1f to y=%.1f", bridge.Y, bridge.TargetY)
		}
	}

	bridge.Step()
}
