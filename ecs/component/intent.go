package component

// Intent is a discrete movement action.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentRun
	IntentJump
)

func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentRun:
		return "run"
	case IntentJump:
		return "jump"
	default:
		return "unknown"
	}
}

// IntentEvent is a start or stop signal for an intent. Intensity only
// matters for direction starts; zero means full strength.
type IntentEvent struct {
	Intent    Intent
	Started   bool
	Intensity float64
}

// IntentBuffer is a one-tick queue of intent events. Producers append;
// the character controller drains it every tick.
type IntentBuffer struct {
	Events []IntentEvent
}

// Push appends an event.
func (b *IntentBuffer) Push(evt IntentEvent) {
	b.Events = append(b.Events, evt)
}

// Drain returns the buffered events and empties the buffer.
func (b *IntentBuffer) Drain() []IntentEvent {
	out := b.Events
	b.Events = nil
	return out
}

var IntentBufferComponent = NewComponent[IntentBuffer]()
