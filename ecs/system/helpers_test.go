package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

type fakeBody struct {
	pos      cp.Vector
	vel      cp.Vector
	impulses []cp.Vector
}

func (b *fakeBody) Position() cp.Vector { return b.pos }
func (b *fakeBody) Velocity() cp.Vector { return b.vel }

func (b *fakeBody) SetVelocityVector(v cp.Vector) { b.vel = v }

func (b *fakeBody) ApplyImpulseAtLocalPoint(impulse, _ cp.Vector) {
	b.impulses = append(b.impulses, impulse)
	b.vel = b.vel.Add(impulse)
}

type fakeCaster struct {
	result physics.CastResult
	calls  int
}

func (c *fakeCaster) Cast(_, _ cp.Vector, _ float64, _ uint) physics.CastResult {
	c.calls++
	return c.result
}

type testCharacter struct {
	e    ecs.Entity
	ch   *component.Character
	body *fakeBody
	anim *component.AnimatorParams
	buf  *component.IntentBuffer
}

func baseConfig() component.CharacterConfig {
	return component.CharacterConfig{
		MoveSpeed:               1,
		RunSpeed:                2,
		JumpForce:               10,
		StopSlideWhenIdle:       true,
		CanControlMovementInAir: true,
	}
}

func newTestCharacter(t *testing.T, w *ecs.World, cfg component.CharacterConfig, grounded bool) testCharacter {
	t.Helper()
	e := ecs.CreateEntity(w)
	tc := testCharacter{
		e:    e,
		ch:   &component.Character{Config: cfg, State: component.CharacterState{Grounded: grounded}},
		body: &fakeBody{},
		anim: component.NewAnimatorParams(),
		buf:  &component.IntentBuffer{},
	}
	must(t, ecs.Add(w, e, component.CharacterComponent, tc.ch))
	must(t, ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: tc.body, Width: 1, Height: 2}))
	must(t, ecs.Add(w, e, component.AnimatorComponent, &component.AnimatorRef{Animator: tc.anim}))
	must(t, ecs.Add(w, e, component.IntentBufferComponent, tc.buf))
	must(t, ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}))
	must(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{}))
	return tc
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func start(i component.Intent) component.IntentEvent {
	return component.IntentEvent{Intent: i, Started: true}
}

func stop(i component.Intent) component.IntentEvent {
	return component.IntentEvent{Intent: i}
}
