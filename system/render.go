package system

// RenderSystem draws the world back to front: ground, platforms, bridge,
// then the body with its eyes and legs. It reads the world and never
// changes it.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *World, s Surface) {
	if w == nil || s == nil {
		return
	}
	pal := w.Palette

	groundTop := w.GroundTop()
	s.FillRect(0, groundTop, w.Viewport.Width, w.Geometry.GroundHeight, pal.Ground)

	for _, p := range w.Geometry.Platforms {
		s.FillRect(p.X, p.Y, p.Width, p.Height, pal.Platform)
	}

	if b := w.Bridge; b != nil {
		s.FillRect(b.X, b.Y, b.Width, b.Height, pal.Bridge)
	}

	if w.Body != nil {
		r.drawBody(w, s)
	}
}

func (r *RenderSystem) drawBody(w *World, s Surface) {
	body := w.Body
	pal := w.Palette

	s.FillCircle(body.Pos.X, body.Pos.Y, body.Radius, pal.Body)

	leftEye, rightEye := body.Eyes()
	s.FillCircle(leftEye.X, leftEye.Y, body.EyeRadius, pal.Eye)
	s.FillCircle(rightEye.X, rightEye.Y, body.EyeRadius, pal.Eye)
	s.FillCircle(leftEye.X, leftEye.Y, body.PupilRadius(), pal.Pupil)
	s.FillCircle(rightEye.X, rightEye.Y, body.PupilRadius(), pal.Pupil)

	// Same sample points the platform collision uses.
	leftLeg, rightLeg := body.Legs()
	s.FillCircle(leftLeg.X, leftLeg.Y, body.LegRadius, pal.Leg)
	s.FillCircle(rightLeg.X, rightLeg.Y, body.LegRadius, pal.Leg)
}
