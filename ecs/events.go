package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// GroundEventKind identifies ground contact transitions.
type GroundEventKind string

const (
	GroundEventLanded GroundEventKind = "landed"
	GroundEventLeft   GroundEventKind = "left_ground"
)

// EventTypeGround is the Event.Type used for GroundEvent payloads.
const EventTypeGround = "ground"

// GroundEvent is emitted when an entity's grounded state changes.
type GroundEvent struct {
	Entity Entity
	Kind   GroundEventKind
}

// EventQueue is a simple FIFO queue that lives for one tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the queued events of one type without consuming them, so
// several present-phase systems can observe the same event.
func (q *EventQueue) Peek(eventType string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
