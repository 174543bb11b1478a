package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	CharacterFile = "character.yaml"
	CameraFile    = "camera.yaml"
	InputFile     = "input.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CharacterSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`

	MoveSpeed             float64  `yaml:"move_speed"`
	RunSpeed              float64  `yaml:"run_speed"`
	JumpForce             float64  `yaml:"jump_force"`
	MaximumGroundedHeight float64  `yaml:"maximum_grounded_height"`
	CollisionMask         []string `yaml:"collision_mask"`

	StopSlideWhenIdle bool `yaml:"stop_slide_when_idle"`
	// EnableSlideDownRamps is the inverse of StopSlideWhenIdle and wins
	// when present.
	EnableSlideDownRamps *bool `yaml:"enable_slide_down_ramps"`

	CanControlMovementInAir bool `yaml:"can_control_movement_in_air"`
	CanRunWhenNotGrounded   bool `yaml:"can_run_when_not_grounded"`
	CanJumpWhenNotGrounded  bool `yaml:"can_jump_when_not_grounded"`

	SmoothMovementChange bool    `yaml:"smooth_movement_change"`
	MovementChangeSpeed  float64 `yaml:"movement_change_speed"`

	CoyoteTicks     int `yaml:"coyote_ticks"`
	JumpBufferTicks int `yaml:"jump_buffer_ticks"`
}

// StopSlide resolves the idle-slide policy from either spelling.
func (s CharacterSpec) StopSlide() bool {
	if s.EnableSlideDownRamps != nil {
		return !*s.EnableSlideDownRamps
	}
	return s.StopSlideWhenIdle
}

func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](CharacterFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name         string     `yaml:"name"`
	Target       string     `yaml:"target"`
	Offset       VectorSpec `yaml:"offset"`
	Depth        float64    `yaml:"depth"`
	LerpToObject bool       `yaml:"lerp_to_object"`
	LerpSpeed    float64    `yaml:"lerp_speed"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// InputSpec maps logical actions to key names as printed by ebiten.Key.
type InputSpec struct {
	Deadzone float64             `yaml:"deadzone"`
	Bindings map[string][]string `yaml:"bindings"`
}

func LoadInputSpec() (*InputSpec, error) {
	spec, err := LoadSpec[InputSpec](InputFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
