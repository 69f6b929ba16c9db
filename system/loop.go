package system

// Loop is one tick of the game: clear, draw, then update. The frame shown
// therefore reflects the previous tick's physics. The host calls Tick once
// per display refresh and never re-enters it.
type Loop struct {
	World     *World
	Renderer  *RenderSystem
	Scheduler *Scheduler
}

// NewLoop wires the default pipeline: physics, then the bridge.
func NewLoop(w *World) *Loop {
	return &Loop{
		World:     w,
		Renderer:  NewRenderSystem(),
		Scheduler: NewScheduler(NewPhysicsSystem(), NewBridgeSystem()),
	}
}

func (l *Loop) Tick(s Surface) {
	if l == nil || l.World == nil {
		return
	}
	if s != nil {
		s.Clear()
		l.Renderer.Draw(l.World, s)
	}
	l.Scheduler.Update(l.World)
	l.World.Ticks++
}

// Reset swaps in a fresh world, keeping the pipeline.
func (l *Loop) Reset(w *World) {
	if l == nil {
		return
	}
	l.World = w
}
