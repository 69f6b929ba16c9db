package obj

import "math"

// BridgeState is derived from the bridge's stored fields; only Falling is
// stored. Settled is simply Falling with y at the target.
type BridgeState int

const (
	BridgeUpright BridgeState = iota
	BridgeFalling
	BridgeSettled
)

func (s BridgeState) String() string {
	switch s {
	case BridgeUpright:
		return "upright"
	case BridgeFalling:
		return "falling"
	case BridgeSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Bridge is a platform that starts upright and drops to TargetY once
// triggered. The drop cannot be undone within a session.
type Bridge struct {
	Platform

	IsFalling   bool
	TargetY     float64
	DescentRate float64
}

func (b *Bridge) State() BridgeState {
	switch {
	case !b.IsFalling:
		return BridgeUpright
	case b.Y >= b.TargetY:
		return BridgeSettled
	default:
		return BridgeFalling
	}
}

// Trigger moves an upright bridge to Falling and reports whether it did.
// Calling it in any other state is a no-op.
func (b *Bridge) Trigger() bool {
	if b.State() != BridgeUpright {
		return false
	}
	b.IsFalling = true
	return true
}

// Step advances a falling bridge by one tick. The last step lands exactly
// on TargetY.
func (b *Bridge) Step() {
	if b.State() != BridgeFalling {
		return
	}
	b.Y = math.Min(b.Y+b.DescentRate, b.TargetY)
}

// Settled reports whether the bridge has finished falling.
func (b *Bridge) Settled() bool {
	return b.State() == BridgeSettled
}
