package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationParamSystem pushes speed, direction and vertical velocity to each
// character's animator, and fires the land trigger on touchdown.
type AnimationParamSystem struct{}

func NewAnimationParamSystem() *AnimationParamSystem {
	return &AnimationParamSystem{}
}

func (a *AnimationParamSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.AnimatorComponent.Kind(), func(e ecs.Entity, ch *component.Character, ref *component.AnimatorRef) {
		if ref.Animator == nil {
			return
		}
		st := ch.State

		dir := directionParam(st)
		ref.Animator.SetFloat(component.AnimParamDirection, dir)
		ref.Animator.SetFloat(component.AnimParamSpeed, math.Abs(dir))

		vy := 0.0
		if !st.Grounded {
			if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && pb.Body != nil {
				vy = pb.Body.Velocity().Y
			}
		}
		ref.Animator.SetFloat(component.AnimParamVerticalVelocity, vy)
	})

	for _, evt := range w.Events().Peek(ecs.EventTypeGround) {
		ge, ok := evt.Data.(ecs.GroundEvent)
		if !ok || ge.Kind != ecs.GroundEventLanded {
			continue
		}
		if ref, ok := ecs.Get(w, ge.Entity, component.AnimatorComponent); ok && ref.Animator != nil {
			ref.Animator.SetTrigger(component.AnimTriggerLand)
		}
	}
}
