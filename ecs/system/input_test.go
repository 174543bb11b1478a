package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

func TestInputSystemEdges(t *testing.T) {
	w := ecs.NewWorld()
	c := newTestCharacter(t, w, baseConfig(), true)
	keys := input.NewStaticKeys()
	sys := NewInputSystem(keys)

	steps := []struct {
		name  string
		press map[input.Action]bool
		want  []component.IntentEvent
	}{
		{"nothing", nil, nil},
		{"press_left", map[input.Action]bool{input.ActionLeft: true}, []component.IntentEvent{
			{Intent: component.IntentMoveLeft, Started: true, Intensity: 1},
		}},
		{"hold_left", map[input.Action]bool{input.ActionLeft: true}, nil},
		{"swap_to_right", map[input.Action]bool{input.ActionRight: true}, []component.IntentEvent{
			{Intent: component.IntentMoveLeft},
			{Intent: component.IntentMoveRight, Started: true, Intensity: 1},
		}},
		{"jump", map[input.Action]bool{input.ActionRight: true, input.ActionJump: true}, []component.IntentEvent{
			{Intent: component.IntentJump, Started: true, Intensity: 1},
		}},
		{"release_all", nil, []component.IntentEvent{
			{Intent: component.IntentMoveRight},
			{Intent: component.IntentJump},
		}},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			keys.Levels = map[input.Action]bool{}
			for a, v := range step.press {
				keys.Set(a, v)
			}
			sys.Update(w)
			got := c.buf.Drain()
			if len(got) != len(step.want) {
				t.Fatalf("expected %v, got %v", step.want, got)
			}
			for i := range got {
				if got[i] != step.want[i] {
					t.Fatalf("event %d: expected %+v, got %+v", i, step.want[i], got[i])
				}
			}
		})
	}
}

func TestInputSystemAnalogIntensity(t *testing.T) {
	w := ecs.NewWorld()
	c := newTestCharacter(t, w, baseConfig(), true)
	keys := input.NewStaticKeys()
	sys := NewInputSystem(keys)

	keys.Set(input.ActionRight, true)
	keys.Analog = 0.5
	sys.Update(w)
	got := c.buf.Drain()
	if len(got) != 1 || got[0].Intensity != 0.5 {
		t.Fatalf("expected a half intensity start, got %v", got)
	}

	keys.Analog = 0.8
	sys.Update(w)
	got = c.buf.Drain()
	if len(got) != 1 || got[0].Intent != component.IntentMoveRight || !got[0].Started || got[0].Intensity != 0.8 {
		t.Fatalf("expected a re-sent start at 0.8, got %v", got)
	}

	sys.Update(w)
	if got = c.buf.Drain(); len(got) != 0 {
		t.Fatalf("steady input should be silent, got %v", got)
	}
}

func TestInputFeedsController(t *testing.T) {
	w := ecs.NewWorld()
	c := newTestCharacter(t, w, baseConfig(), true)
	keys := input.NewStaticKeys()
	in := NewInputSystem(keys)
	ctrl := NewCharacterControllerSystem()
	w.AddSystem(ecs.PhaseInput, in)
	w.AddSystem(ecs.PhaseDecide, ctrl.Decider())
	w.AddSystem(ecs.PhaseApply, ctrl.Applier())

	keys.Set(input.ActionLeft, true)
	w.Update()
	keys.Set(input.ActionRight, true)
	w.Update()
	if c.ch.State.Direction != 1 {
		t.Fatalf("expected right after overlapping press, got %d", c.ch.State.Direction)
	}
	keys.Set(input.ActionRight, false)
	w.Update()
	if c.ch.State.Direction != -1 || c.body.vel.X != -1 {
		t.Fatalf("expected fallback to held left, got dir %d vx %v", c.ch.State.Direction, c.body.vel.X)
	}
}
