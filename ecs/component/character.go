package component

// MovementMode is the derived locomotion mode of a character.
type MovementMode int

const (
	ModeIdle MovementMode = iota
	ModeWalk
	ModeRun
)

func (m MovementMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeWalk:
		return "walk"
	case ModeRun:
		return "run"
	default:
		return "unknown"
	}
}

// CharacterConfig holds the static tunables of a character.
type CharacterConfig struct {
	MoveSpeed         float64
	RunSpeed          float64
	JumpForce         float64
	StopSlideWhenIdle bool

	CanControlMovementInAir bool
	CanRunWhenNotGrounded   bool
	CanJumpWhenNotGrounded  bool

	SmoothMovementChange bool
	MovementChangeSpeed  float64

	// CoyoteTicks lets a jump through for this many ticks after leaving the
	// ground. JumpBufferTicks retries an airborne jump on landing within
	// this many ticks. Zero disables either.
	CoyoteTicks     int
	JumpBufferTicks int
}

// HeldDirection is one entry of the held-direction stack.
type HeldDirection struct {
	Direction int
	Intensity float64
}

// CharacterState is mutated once per tick by the character controller;
// Grounded is written by the ground sensor.
type CharacterState struct {
	Direction     int
	Mode          MovementMode
	Intensity     float64
	SmoothedSpeed float64
	Grounded      bool

	// Held is ordered oldest first; the active direction is the last entry.
	Held    []HeldDirection
	RunHeld bool

	AirborneTicks   int
	JumpBufferTicks int
}

// Character bundles the config and the live state of a controlled entity.
type Character struct {
	Config CharacterConfig
	State  CharacterState
}

var CharacterComponent = NewComponent[Character]()
