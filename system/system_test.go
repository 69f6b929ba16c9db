package system

import (
	"image/color"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bridgefall/obj"
	"github.com/milk9111/bridgefall/prefabs"
)

const (
	testWidth  = 1280
	testHeight = 720
)

type recordedRect struct {
	X, Y, W, H float64
	C          color.Color
}

type recordedCircle struct {
	X, Y, R float64
	C       color.Color
}

type recordingSurface struct {
	ops     []string
	rects   []recordedRect
	circles []recordedCircle
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, "clear")
	s.rects = nil
	s.circles = nil
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.ops = append(s.ops, "rect")
	s.rects = append(s.rects, recordedRect{x, y, w, h, c})
}

func (s *recordingSurface) FillCircle(x, y, r float64, c color.Color) {
	s.ops = append(s.ops, "circle")
	s.circles = append(s.circles, recordedCircle{x, y, r, c})
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec("")
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	return NewWorld(spec, obj.NewInputState(), Viewport{Width: testWidth, Height: testHeight})
}

func settle(t *testing.T, w *World) {
	t.Helper()
	for i := 0; i < 500; i++ {
		Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
		if w.Body.Grounded() {
			return
		}
	}
	t.Fatalf("body never came to rest")
}

func TestNewWorldLayout(t *testing.T) {
	w := newTestWorld(t)
	if w.Body.Pos != (cp.Vector{X: 100, Y: 570}) {
		t.Fatalf("unexpected spawn %v", w.Body.Pos)
	}
	if got := w.GroundTop(); got != 670 {
		t.Fatalf("ground top = %v, want 670", got)
	}
	want := []obj.Platform{
		{X: 300, Y: 570, Width: 300, Height: 20},
		{X: 800, Y: 570, Width: 150, Height: 20},
	}
	for i, p := range want {
		if w.Geometry.Platforms[i] != p {
			t.Fatalf("platform %d = %+v, want %+v", i, w.Geometry.Platforms[i], p)
		}
	}
	b := w.Bridge
	if b.X != 600 || b.Y != 420 || b.Width != 20 || b.Height != 150 || b.TargetY != 570 {
		t.Fatalf("unexpected bridge %+v", b)
	}
	if b.State() != obj.BridgeUpright {
		t.Fatalf("bridge should start upright, got %v", b.State())
	}
}

func TestGroundAndBoundsInvariant(t *testing.T) {
	w := newTestWorld(t)
	rng := rand.New(rand.NewSource(7))
	actions := []obj.Action{
		obj.ActionMoveLeft, obj.ActionMoveRight, obj.ActionJumpUp,
		obj.ActionJumpSpace, obj.ActionJumpW, obj.ActionActivate,
	}
	loop := NewLoop(w)
	for tick := 0; tick < 5000; tick++ {
		for _, a := range actions {
			w.Input.Set(a, rng.Intn(3) == 0)
		}
		loop.Tick(nil)
		b := w.Body
		if b.Pos.Y+b.Radius > w.GroundTop() {
			t.Fatalf("tick %d: body below ground: y=%v", tick, b.Pos.Y)
		}
		if b.Pos.X < b.Radius || b.Pos.X > w.Viewport.Width-b.Radius {
			t.Fatalf("tick %d: body outside screen: x=%v", tick, b.Pos.X)
		}
	}
}

func TestScreenClampExtremeVelocity(t *testing.T) {
	w := newTestWorld(t)
	w.Body.Vel.X = -1e6
	Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
	if w.Body.Pos.X != w.Body.Radius {
		t.Fatalf("expected clamp to left edge, got %v", w.Body.Pos.X)
	}
	w.Body.Vel.X = 1e6
	Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
	if w.Body.Pos.X != testWidth-w.Body.Radius {
		t.Fatalf("expected clamp to right edge, got %v", w.Body.Pos.X)
	}
}

func TestJumpIdempotence(t *testing.T) {
	w := newTestWorld(t)
	settle(t, w)

	w.Input.Press(obj.ActionJumpSpace)
	Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
	if !w.Body.Jumping {
		t.Fatalf("expected jumping after jump press")
	}
	want := -w.Body.JumpForce + w.Body.Gravity
	if w.Body.Vel.Y != want {
		t.Fatalf("dy = %v, want %v", w.Body.Vel.Y, want)
	}

	w.Input.Press(obj.ActionJumpUp)
	w.Input.Press(obj.ActionJumpW)
	for i := 0; i < 5; i++ {
		before := w.Body.Vel.Y
		Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
		if d := w.Body.Vel.Y - before; math.Abs(d-w.Body.Gravity) > 1e-12 {
			t.Fatalf("tick %d: dy changed by %v while airborne, want gravity %v", i, d, w.Body.Gravity)
		}
	}
}

func TestJumpEachSynonym(t *testing.T) {
	for _, a := range obj.JumpActions {
		t.Run(a.String(), func(t *testing.T) {
			w := newTestWorld(t)
			settle(t, w)
			w.Input.Press(a)
			Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
			if w.Body.Vel.Y >= 0 || !w.Body.Jumping {
				t.Fatalf("%v did not start a jump: %+v", a, w.Body)
			}
		})
	}
}

func TestFrictionDecay(t *testing.T) {
	w := newTestWorld(t)
	settle(t, w)
	w.Body.Pos.X = 640
	dx0 := 5.0
	w.Body.Vel.X = dx0

	for n := 1; n <= 60; n++ {
		Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
		want := dx0 * math.Pow(w.Body.Friction, float64(n))
		if math.Abs(w.Body.Vel.X-want) > 1e-9 {
			t.Fatalf("tick %d: dx = %v, want %v", n, w.Body.Vel.X, want)
		}
		if w.Body.Vel.X == 0 {
			t.Fatalf("tick %d: dx reached exactly zero", n)
		}
	}
}

func TestHorizontalControl(t *testing.T) {
	cases := []struct {
		name      string
		press     []obj.Action
		wantDX    float64
		wantPhase float64
	}{
		{"right", []obj.Action{obj.ActionMoveRight}, 5, 0.4},
		{"left", []obj.Action{obj.ActionMoveLeft}, -5, 0.4},
		{"right_wins_over_left", []obj.Action{obj.ActionMoveLeft, obj.ActionMoveRight}, 5, 0.4},
		{"none", nil, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Body.Pos.X = 640
			for _, a := range c.press {
				w.Input.Press(a)
			}
			Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
			if w.Body.Vel.X != c.wantDX {
				t.Fatalf("dx = %v, want %v", w.Body.Vel.X, c.wantDX)
			}
			if math.Abs(w.Body.LegPhase-c.wantPhase) > 1e-12 {
				t.Fatalf("leg phase = %v, want %v", w.Body.LegPhase, c.wantPhase)
			}
		})
	}
}

func TestLegPhaseWraps(t *testing.T) {
	w := newTestWorld(t)
	w.Body.Pos.X = 640
	w.Input.Press(obj.ActionMoveRight)
	for i := 0; i < 1000; i++ {
		Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
		if w.Body.Pos.X >= testWidth-w.Body.Radius {
			w.Body.Pos.X = 640
		}
		if w.Body.LegPhase > 2*math.Pi || w.Body.LegPhase < 0 {
			t.Fatalf("tick %d: leg phase out of range: %v", i, w.Body.LegPhase)
		}
	}
}

func TestPlatformLanding(t *testing.T) {
	w := newTestWorld(t)
	p := w.Geometry.Platforms[0]
	b := w.Body
	b.Pos = cp.Vector{X: 450, Y: 535}
	b.Vel = cp.Vector{Y: 5}
	b.Jumping = true

	Advance(b, w.Geometry, w.Bridge, w.Input, w.Viewport)

	if want := p.Y - b.Radius - b.LegRadius; b.Pos.Y != want {
		t.Fatalf("y = %v, want %v", b.Pos.Y, want)
	}
	if b.Vel.Y != 0 || b.Jumping {
		t.Fatalf("expected grounded on platform, got dy=%v jumping=%v", b.Vel.Y, b.Jumping)
	}

	// Resting on the platform is stable.
	for i := 0; i < 10; i++ {
		Advance(b, w.Geometry, w.Bridge, w.Input, w.Viewport)
		if b.Pos.Y != p.Y-b.Radius-b.LegRadius || b.Jumping {
			t.Fatalf("tick %d: body left the platform: y=%v", i, b.Pos.Y)
		}
	}
}

func TestWalkOffPlatformIsAirborne(t *testing.T) {
	w := newTestWorld(t)
	p := w.Geometry.Platforms[0]
	b := w.Body
	b.Pos = cp.Vector{X: p.Right() + 40, Y: p.Y - b.Radius - b.LegRadius}
	Advance(b, w.Geometry, w.Bridge, w.Input, w.Viewport)
	if !b.Jumping {
		t.Fatalf("body off every surface must count as airborne")
	}
}

func TestLastPlatformWins(t *testing.T) {
	geometry := &obj.Geometry{
		GroundHeight: 50,
		Platforms: []obj.Platform{
			{X: 0, Y: 500, Width: 100, Height: 20},
			{X: 100, Y: 505, Width: 100, Height: 20},
		},
	}
	b := &obj.Body{
		Pos:       cp.Vector{X: 100, Y: 479.2},
		Radius:    20,
		LegRadius: 10,
		Gravity:   0.8,
		Friction:  0.9,
		LegSwing:  15,
	}
	Advance(b, geometry, nil, obj.NewInputState(), Viewport{Width: 1000, Height: 1000})
	if b.Pos.Y != 505-30 {
		t.Fatalf("y = %v, want the later platform's rest height %v", b.Pos.Y, 505-30)
	}
}

func TestSettledBridgeCollides(t *testing.T) {
	newBridge := func(falling bool) *obj.Bridge {
		return &obj.Bridge{
			Platform:    obj.Platform{X: 600, Y: 570, Width: 20, Height: 150},
			IsFalling:   falling,
			TargetY:     570,
			DescentRate: 5,
		}
	}
	cases := []struct {
		name     string
		falling  bool
		wantLand bool
	}{
		{"upright_is_not_solid", false, false},
		{"settled_is_solid", true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &obj.Body{
				Pos:       cp.Vector{X: 610, Y: 540},
				Radius:    20,
				LegRadius: 10,
				Gravity:   0.8,
				Friction:  0.9,
				LegSwing:  15,
				LegPhase:  math.Pi / 2,
			}
			geometry := &obj.Geometry{GroundHeight: 50}
			Advance(b, geometry, newBridge(c.falling), obj.NewInputState(), Viewport{Width: 1280, Height: 720})
			landed := b.Pos.Y == 540 && !b.Jumping
			if landed != c.wantLand {
				t.Fatalf("landed = %v, want %v (y=%v)", landed, c.wantLand, b.Pos.Y)
			}
		})
	}
}

func TestWalkUnderSettledBridgeStaysOnGround(t *testing.T) {
	w := newTestWorld(t)
	settle(t, w)
	w.Bridge.Trigger()
	for !w.Bridge.Settled() {
		w.Bridge.Step()
	}
	if w.Bridge.Bottom() <= w.GroundTop() {
		t.Fatalf("bridge bottom %v should reach below the ground top %v", w.Bridge.Bottom(), w.GroundTop())
	}

	groundY := w.GroundTop() - w.Body.Radius
	w.Body.Pos.X = 560
	w.Input.Press(obj.ActionMoveRight)
	for i := 0; i < 30; i++ {
		Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
		if w.Body.Pos.Y != groundY || w.Body.Jumping {
			t.Fatalf("tick %d: x=%.1f y=%v jumping=%v, want y=%v on the ground",
				i, w.Body.Pos.X, w.Body.Pos.Y, w.Body.Jumping, groundY)
		}
	}
	if w.Body.Pos.X <= w.Bridge.Right() {
		t.Fatalf("body stopped at x=%v, want past the bridge at %v", w.Body.Pos.X, w.Bridge.Right())
	}
}

func TestAboveGroundClip(t *testing.T) {
	cases := []struct {
		name       string
		p          obj.Platform
		wantHeight float64
		wantOK     bool
	}{
		{"above", obj.Platform{Y: 500, Height: 20}, 20, true},
		{"straddles", obj.Platform{Y: 570, Height: 150}, 100, true},
		{"bottom_on_ground", obj.Platform{Y: 650, Height: 20}, 20, true},
		{"below", obj.Platform{Y: 670, Height: 20}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := aboveGround(c.p, 670)
			if ok != c.wantOK || (ok && got.Height != c.wantHeight) {
				t.Fatalf("aboveGround = (%v, %v), want height %v ok %v", got.Height, ok, c.wantHeight, c.wantOK)
			}
		})
	}
}

func TestBridgeDescentScenario(t *testing.T) {
	w := newTestWorld(t)
	loop := NewLoop(w)
	bridge := w.Bridge
	y0 := bridge.Y
	w.Body.Pos.X = bridge.X + 10
	w.Input.Press(obj.ActionActivate)

	loop.Tick(nil)
	if !bridge.IsFalling || bridge.Y != y0+5 {
		t.Fatalf("after one tick: falling=%v y=%v, want true %v", bridge.IsFalling, bridge.Y, y0+5)
	}

	ticks := int(math.Ceil((bridge.TargetY - y0) / 5))
	for i := 1; i < ticks; i++ {
		loop.Tick(nil)
	}
	if bridge.Y != bridge.TargetY || bridge.State() != obj.BridgeSettled {
		t.Fatalf("after %d ticks: y=%v state=%v, want %v settled", ticks, bridge.Y, bridge.State(), bridge.TargetY)
	}

	for i := 0; i < 50; i++ {
		w.Input.Set(obj.ActionActivate, i%2 == 0)
		loop.Tick(nil)
		if bridge.Y != bridge.TargetY || !bridge.IsFalling {
			t.Fatalf("tick %d after settle: y=%v falling=%v", i, bridge.Y, bridge.IsFalling)
		}
	}
}

func TestBridgeTriggerConditions(t *testing.T) {
	cases := []struct {
		name     string
		offset   float64
		activate bool
		want     obj.BridgeState
	}{
		{"near_with_activate", 49, true, obj.BridgeFalling},
		{"near_without_activate", 10, false, obj.BridgeUpright},
		{"at_distance_limit", 50, true, obj.BridgeUpright},
		{"far_with_activate", 200, true, obj.BridgeUpright},
		{"left_side", -30, true, obj.BridgeFalling},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Body.Pos.X = w.Bridge.X + c.offset
			w.Input.Set(obj.ActionActivate, c.activate)
			NewBridgeSystem().Update(w)
			if got := w.Bridge.State(); got != c.want {
				t.Fatalf("state = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRenderOrderAndColors(t *testing.T) {
	w := newTestWorld(t)
	s := &recordingSurface{}
	NewRenderSystem().Draw(w, s)

	if len(s.rects) != 4 {
		t.Fatalf("expected ground, 2 platforms and bridge, got %d rects", len(s.rects))
	}
	ground := s.rects[0]
	if ground != (recordedRect{0, 670, testWidth, 50, w.Palette.Ground}) {
		t.Fatalf("unexpected ground %+v", ground)
	}
	for i, p := range w.Geometry.Platforms {
		r := s.rects[1+i]
		if r.X != p.X || r.Y != p.Y || r.C != w.Palette.Platform {
			t.Fatalf("platform %d drawn as %+v", i, r)
		}
	}
	if br := s.rects[3]; br.X != w.Bridge.X || br.Y != w.Bridge.Y || br.C != w.Palette.Bridge {
		t.Fatalf("bridge drawn as %+v", br)
	}

	if len(s.circles) != 7 {
		t.Fatalf("expected body, 2 eyes, 2 pupils, 2 legs; got %d circles", len(s.circles))
	}
	body := s.circles[0]
	if body.X != w.Body.Pos.X || body.Y != w.Body.Pos.Y || body.R != w.Body.Radius || body.C != w.Palette.Body {
		t.Fatalf("body drawn as %+v", body)
	}
	for i := 1; i <= 2; i++ {
		if s.circles[i].R != w.Body.EyeRadius || s.circles[i].C != w.Palette.Eye {
			t.Fatalf("eye %d drawn as %+v", i, s.circles[i])
		}
	}
	for i := 3; i <= 4; i++ {
		if s.circles[i].R != w.Body.EyeRadius/2 || s.circles[i].C != w.Palette.Pupil {
			t.Fatalf("pupil %d drawn as %+v", i, s.circles[i])
		}
	}
	if s.circles[1].X != w.Body.Pos.X-7 || s.circles[2].X != w.Body.Pos.X+7 || s.circles[1].Y != w.Body.Pos.Y-5 {
		t.Fatalf("eyes misplaced: %+v %+v", s.circles[1], s.circles[2])
	}

	last := -1
	for i, op := range s.ops {
		if op == "rect" && last >= 0 {
			t.Fatalf("rect drawn at op %d after a circle at op %d", i, last)
		}
		if op == "circle" {
			last = i
		}
	}
}

func TestRenderedLegsMatchCollisionLegs(t *testing.T) {
	for _, phase := range []float64{0, 0.4, 1, math.Pi / 2, 3, 5.9} {
		w := newTestWorld(t)
		w.Body.LegPhase = phase
		w.Body.Pos.X = 333.3
		s := &recordingSurface{}
		NewRenderSystem().Draw(w, s)

		left, right := w.Body.Legs()
		gotLeft, gotRight := s.circles[5], s.circles[6]
		if gotLeft.X != left.X || gotLeft.Y != left.Y || gotRight.X != right.X || gotRight.Y != right.Y {
			t.Fatalf("phase %v: rendered legs (%v,%v) (%v,%v) != collision legs %v %v",
				phase, gotLeft.X, gotLeft.Y, gotRight.X, gotRight.Y, left, right)
		}
		if gotLeft.R != w.Body.LegRadius || gotLeft.C != w.Palette.Leg {
			t.Fatalf("leg drawn as %+v", gotLeft)
		}
	}
}

func TestLoopRendersBeforeUpdate(t *testing.T) {
	w := newTestWorld(t)
	loop := NewLoop(w)
	s := &recordingSurface{}
	before := w.Body.Pos

	loop.Tick(s)

	if s.ops[0] != "clear" {
		t.Fatalf("first op = %q, want clear", s.ops[0])
	}
	if drawn := s.circles[0]; drawn.X != before.X || drawn.Y != before.Y {
		t.Fatalf("frame shows %v,%v, want the pre-tick position %v", drawn.X, drawn.Y, before)
	}
	if w.Body.Pos == before {
		t.Fatalf("physics did not run after drawing")
	}
	if w.Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", w.Ticks)
	}
}

type orderRecorder struct {
	name string
	log  *[]string
}

func (p orderRecorder) Update(*World) { *p.log = append(*p.log, p.name) }

func TestSchedulerOrder(t *testing.T) {
	var got []string
	s := NewScheduler(orderRecorder{"a", &got}, nil, orderRecorder{"b", &got})
	s.Add(nil)
	s.Add(orderRecorder{"c", &got})
	s.Update(&World{})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestSetViewportKeepsSceneOnGround(t *testing.T) {
	w := newTestWorld(t)
	settle(t, w)
	restGap := w.GroundTop() - w.Body.Bottom()
	p0 := w.Geometry.Platforms[0].Y
	bridgeGap := w.Bridge.TargetY - w.Bridge.Y

	w.SetViewport(800, 500)

	if got := w.GroundTop() - w.Body.Bottom(); got != restGap {
		t.Fatalf("body drifted from ground: gap %v, want %v", got, restGap)
	}
	if got := w.Geometry.Platforms[0].Y; got != p0-220 {
		t.Fatalf("platform y = %v, want %v", got, p0-220)
	}
	if got := w.Bridge.TargetY - w.Bridge.Y; got != bridgeGap {
		t.Fatalf("bridge travel changed: %v, want %v", got, bridgeGap)
	}

	w.Body.Pos.X = 1200
	Advance(w.Body, w.Geometry, w.Bridge, w.Input, w.Viewport)
	if w.Body.Pos.X != 800-w.Body.Radius {
		t.Fatalf("body not clamped to new width: %v", w.Body.Pos.X)
	}
}

func TestDebugText(t *testing.T) {
	if DebugText(nil) != "" {
		t.Fatalf("nil world should produce no text")
	}
	w := newTestWorld(t)
	text := DebugText(w)
	for _, want := range []string{"Tick: 0", "x=100.0 y=570.0", "Jumping: true", "Bridge: upright y=420.0/570.0"} {
		if !strings.Contains(text, want) {
			t.Fatalf("debug text %q missing %q", text, want)
		}
	}
}
