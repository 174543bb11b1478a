package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// Probe casts straight down from position. A hit at distance exactly zero
// means the cast started inside a collider and does not count.
func Probe(caster physics.Caster, position cp.Vector, maxDistance float64, mask uint) component.GroundProbeResult {
	if caster == nil || maxDistance <= 0 {
		return component.GroundProbeResult{}
	}
	res := caster.Cast(position, physics.Down, maxDistance, mask)
	if !res.Hit || res.Distance <= 0 {
		return component.GroundProbeResult{}
	}
	return component.GroundProbeResult{Hit: true, Distance: res.Distance}
}

// GroundSensorSystem probes under every character and publishes landed/left
// events on transitions.
type GroundSensorSystem struct {
	caster physics.Caster
}

func NewGroundSensorSystem(caster physics.Caster) *GroundSensorSystem {
	return &GroundSensorSystem{caster: caster}
}

// SetCaster swaps the probe backend.
func (g *GroundSensorSystem) SetCaster(caster physics.Caster) {
	g.caster = caster
}

func (g *GroundSensorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.GroundSensorComponent.Kind(),
		component.CharacterComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, gs *component.GroundSensor, ch *component.Character) {
			gs.Last = Probe(g.caster, cp.Vector{X: t.X, Y: t.Y}, gs.MaxDistance, gs.Mask)

			was := ch.State.Grounded
			ch.State.Grounded = gs.Last.Hit
			if was == ch.State.Grounded {
				return
			}

			kind := ecs.GroundEventLeft
			if ch.State.Grounded {
				kind = ecs.GroundEventLanded
			}
			w.Events().Push(ecs.Event{
				Type: ecs.EventTypeGround,
				Data: ecs.GroundEvent{Entity: e, Kind: kind},
			})
		})
}
