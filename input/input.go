package input

// Action is a logical input binding.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionRun
	ActionJump
	ActionCount
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "move_left"
	case ActionRight:
		return "move_right"
	case ActionRun:
		return "run"
	case ActionJump:
		return "jump"
	default:
		return "unknown"
	}
}

// ParseAction maps a binding name from input.yaml to an Action.
func ParseAction(name string) (Action, bool) {
	for a := Action(0); a < ActionCount; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// KeySource reports the current level of each logical action.
type KeySource interface {
	Pressed(a Action) bool
}

// AxisSource is implemented by sources with an analog horizontal axis.
// Axis returns a signed value in [-1, 1] with the deadzone already applied,
// or 0 when the axis is at rest.
type AxisSource interface {
	Axis() float64
}

// Poller is implemented by sources that sample every action at once. It is
// called once per tick before any Pressed query.
type Poller interface {
	Poll(tick uint64) error
}

// StaticKeys is a map-backed KeySource.
type StaticKeys struct {
	Levels map[Action]bool
	Analog float64
}

func NewStaticKeys() *StaticKeys {
	return &StaticKeys{Levels: make(map[Action]bool)}
}

func (k *StaticKeys) Pressed(a Action) bool {
	return k.Levels[a]
}

func (k *StaticKeys) Axis() float64 {
	return k.Analog
}

func (k *StaticKeys) Set(a Action, pressed bool) {
	if k.Levels == nil {
		k.Levels = make(map[Action]bool)
	}
	k.Levels[a] = pressed
}
