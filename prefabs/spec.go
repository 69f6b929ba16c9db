package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidBody     = errors.New("prefabs: invalid body")
	ErrInvalidPlatform = errors.New("prefabs: invalid platform")
	ErrInvalidBridge   = errors.New("prefabs: invalid bridge")
	ErrInvalidGround   = errors.New("prefabs: invalid ground")
)

// SceneSpec describes one session: the player's tuning, the ground strip,
// the static platforms and the falling bridge. Vertical positions are
// measured up from the bottom of the viewport.
type SceneSpec struct {
	Name      string         `yaml:"name"`
	Body      BodySpec       `yaml:"body"`
	Ground    GroundSpec     `yaml:"ground"`
	Platforms []PlatformSpec `yaml:"platforms"`
	Bridge    BridgeSpec     `yaml:"bridge"`
	Colors    PaletteSpec    `yaml:"colors"`
}

type BodySpec struct {
	X            float64 `yaml:"x"`
	YFromBottom  float64 `yaml:"y_from_bottom"`
	Radius       float64 `yaml:"radius"`
	LegRadius    float64 `yaml:"leg_radius"`
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	Friction     float64 `yaml:"friction"`
	JumpForce    float64 `yaml:"jump_force"`
	LegSwing     float64 `yaml:"leg_swing"`
	LegPhaseStep float64 `yaml:"leg_phase_step"`
	EyeRadius    float64 `yaml:"eye_radius"`
	EyeOffsetX   float64 `yaml:"eye_offset_x"`
	EyeOffsetY   float64 `yaml:"eye_offset_y"`
}

type GroundSpec struct {
	Height float64 `yaml:"height"`
}

type PlatformSpec struct {
	X           float64 `yaml:"x"`
	YFromBottom float64 `yaml:"y_from_bottom"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// BridgeSpec places the bridge upright on the right edge of AnchorPlatform
// and drops it to the top of TargetPlatform.
type BridgeSpec struct {
	AnchorPlatform  int     `yaml:"anchor_platform"`
	TargetPlatform  int     `yaml:"target_platform"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	DescentRate     float64 `yaml:"descent_rate"`
	TriggerDistance float64 `yaml:"trigger_distance"`
}

type PaletteSpec struct {
	Ground   YAMLColor `yaml:"ground"`
	Platform YAMLColor `yaml:"platform"`
	Bridge   YAMLColor `yaml:"bridge"`
	Body     YAMLColor `yaml:"body"`
	Eye      YAMLColor `yaml:"eye"`
	Pupil    YAMLColor `yaml:"pupil"`
	Leg      YAMLColor `yaml:"leg"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := LoadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSceneSpec loads, defaults and validates a scene. An empty name loads
// DefaultScene.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	if filename == "" {
		filename = DefaultScene
	}
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.Colors.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate checks the invariants the simulation relies on.
func (s *SceneSpec) Validate() error {
	b := s.Body
	if b.Radius <= 0 {
		return fmt.Errorf("%w: radius must be > 0, got %g", ErrInvalidBody, b.Radius)
	}
	if b.LegRadius <= 0 {
		return fmt.Errorf("%w: leg_radius must be > 0, got %g", ErrInvalidBody, b.LegRadius)
	}
	if b.Friction <= 0 || b.Friction >= 1 {
		return fmt.Errorf("%w: friction must be in (0,1), got %g", ErrInvalidBody, b.Friction)
	}
	if s.Ground.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0, got %g", ErrInvalidGround, s.Ground.Height)
	}
	for i, p := range s.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: platform %d has size %gx%g", ErrInvalidPlatform, i, p.Width, p.Height)
		}
		if p.YFromBottom < s.Ground.Height {
			return fmt.Errorf("%w: platform %d sits below the ground", ErrInvalidPlatform, i)
		}
	}
	br := s.Bridge
	if br.AnchorPlatform < 0 || br.AnchorPlatform >= len(s.Platforms) {
		return fmt.Errorf("%w: anchor_platform %d out of range", ErrInvalidBridge, br.AnchorPlatform)
	}
	if br.TargetPlatform < 0 || br.TargetPlatform >= len(s.Platforms) {
		return fmt.Errorf("%w: target_platform %d out of range", ErrInvalidBridge, br.TargetPlatform)
	}
	if br.Width <= 0 || br.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalidBridge, br.Width, br.Height)
	}
	if br.DescentRate <= 0 {
		return fmt.Errorf("%w: descent_rate must be > 0, got %g", ErrInvalidBridge, br.DescentRate)
	}
	return nil
}

func (p *PaletteSpec) applyDefaults() {
	p.Ground.orDefault(colornames.Green)
	p.Platform.orDefault(colornames.Brown)
	p.Bridge.orDefault(colornames.Gray)
	p.Body.orDefault(colornames.Red)
	p.Eye.orDefault(colornames.White)
	p.Pupil.orDefault(colornames.Black)
	p.Leg.orDefault(colornames.Black)
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) orDefault(def color.Color) {
	if c.Color == nil {
		c.Color = def
	}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
