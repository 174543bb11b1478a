package system

import (
	"log"
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

var actionIntents = [input.ActionCount]component.Intent{
	input.ActionLeft:  component.IntentMoveLeft,
	input.ActionRight: component.IntentMoveRight,
	input.ActionRun:   component.IntentRun,
	input.ActionJump:  component.IntentJump,
}

// InputSystem polls a KeySource and turns level changes into intent events
// for every player entity.
type InputSystem struct {
	source input.KeySource

	prev          [input.ActionCount]bool
	prevIntensity float64
	lastErr       string
}

func NewInputSystem(source input.KeySource) *InputSystem {
	return &InputSystem{source: source, prevIntensity: 1}
}

// SetSource swaps the key source. Level differences between the old and new
// source come out as ordinary edges on the next tick.
func (i *InputSystem) SetSource(source input.KeySource) {
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	if p, ok := i.source.(input.Poller); ok {
		if err := p.Poll(w.Tick()); err != nil {
			if msg := err.Error(); msg != i.lastErr {
				log.Printf("input: %v", err)
				i.lastErr = msg
			}
		}
	}

	var cur [input.ActionCount]bool
	for a := input.Action(0); a < input.ActionCount; a++ {
		cur[a] = i.source.Pressed(a)
	}

	intensity := 1.0
	if ax, ok := i.source.(input.AxisSource); ok {
		if v := math.Abs(ax.Axis()); v > 0 {
			intensity = common.Clamp(v, 0, 1)
		}
	}

	events := i.edges(cur, intensity)
	i.prev = cur
	i.prevIntensity = intensity
	if len(events) == 0 {
		return
	}

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.IntentBufferComponent.Kind()) {
		buf, ok := ecs.Get(w, e, component.IntentBufferComponent)
		if !ok {
			continue
		}
		for _, evt := range events {
			buf.Push(evt)
		}
	}
}

// edges emits releases before presses. A change of analog intensity while
// exactly one direction stays held re-sends that direction's start.
func (i *InputSystem) edges(cur [input.ActionCount]bool, intensity float64) []component.IntentEvent {
	var events []component.IntentEvent
	for a := input.Action(0); a < input.ActionCount; a++ {
		if i.prev[a] && !cur[a] {
			events = append(events, component.IntentEvent{Intent: actionIntents[a], Started: false})
		}
	}
	for a := input.Action(0); a < input.ActionCount; a++ {
		if !i.prev[a] && cur[a] {
			events = append(events, component.IntentEvent{Intent: actionIntents[a], Started: true, Intensity: intensity})
		}
	}

	if intensity == i.prevIntensity {
		return events
	}
	left := cur[input.ActionLeft] && i.prev[input.ActionLeft]
	right := cur[input.ActionRight] && i.prev[input.ActionRight]
	switch {
	case left && !cur[input.ActionRight]:
		events = append(events, component.IntentEvent{Intent: component.IntentMoveLeft, Started: true, Intensity: intensity})
	case right && !cur[input.ActionLeft]:
		events = append(events, component.IntentEvent{Intent: component.IntentMoveRight, Started: true, Intensity: intensity})
	}
	return events
}
