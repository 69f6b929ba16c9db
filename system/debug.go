package system

import "fmt"

// DebugText summarises the body and bridge for an on-screen overlay.
func DebugText(w *World) string {
	if w == nil || w.Body == nil {
		return ""
	}
	b := w.Body
	text := fmt.Sprintf("Tick: %d\nBody: x=%.1f y=%.1f dx=%.2f dy=%.2f\nJumping: %v  Leg phase: %.2f",
		w.Ticks, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Jumping, b.LegPhase)
	if w.Bridge != nil {
		text += fmt.Sprintf("\nBridge: %s y=%.1f/%.1f", w.Bridge.State(), w.Bridge.Y, w.Bridge.TargetY)
	}
	return text
}
