package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// PhysicsSystem steps the space by the world time step and copies body
// positions back into transforms.
type PhysicsSystem struct {
	space *physics.Space
}

func NewPhysicsSystem(space *physics.Space) *PhysicsSystem {
	return &PhysicsSystem{space: space}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || p.space == nil {
		return
	}

	p.space.Step(w.TimeStep())

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}
