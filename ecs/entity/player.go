package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

const defaultGroundedHeight = 4.0

// CharacterConfig converts a yaml spec into controller tunables.
func CharacterConfig(spec *prefabs.CharacterSpec) component.CharacterConfig {
	return component.CharacterConfig{
		MoveSpeed:               spec.MoveSpeed,
		RunSpeed:                spec.RunSpeed,
		JumpForce:               spec.JumpForce,
		StopSlideWhenIdle:       spec.StopSlide(),
		CanControlMovementInAir: spec.CanControlMovementInAir,
		CanRunWhenNotGrounded:   spec.CanRunWhenNotGrounded,
		CanJumpWhenNotGrounded:  spec.CanJumpWhenNotGrounded,
		SmoothMovementChange:    spec.SmoothMovementChange,
		MovementChangeSpeed:     spec.MovementChangeSpeed,
		CoyoteTicks:             spec.CoyoteTicks,
		JumpBufferTicks:         spec.JumpBufferTicks,
	}
}

// GroundSensor builds the probe config: it reaches from the collider centre
// to maximum_grounded_height below the feet.
func GroundSensor(spec *prefabs.CharacterSpec) (component.GroundSensor, error) {
	mask, err := physics.ParseMask(spec.CollisionMask)
	if err != nil {
		return component.GroundSensor{}, err
	}
	reach := spec.MaximumGroundedHeight
	if reach <= 0 {
		reach = defaultGroundedHeight
	}
	return component.GroundSensor{MaxDistance: spec.Height/2 + reach, Mask: mask}, nil
}

// NewPlayerAt spawns a controllable character whose feet rest at (x, y).
func NewPlayerAt(w *ecs.World, space *physics.Space, spec *prefabs.CharacterSpec, x, y float64, animator component.Animator) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("player: invalid collider %vx%v", spec.Width, spec.Height)
	}
	sensor, err := GroundSensor(spec)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	cx, cy := x, y-spec.Height/2
	body, shape := space.AddCharacter(cx, cy, spec.Width, spec.Height, spec.Mass)
	if body == nil {
		return 0, fmt.Errorf("player: no physics space")
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent, &component.Transform{X: cx, Y: cy}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent, &component.PhysicsBody{
		Body:   body,
		Shape:  shape,
		Width:  spec.Width,
		Height: spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, player, component.GroundSensorComponent, &sensor); err != nil {
		return 0, fmt.Errorf("player: add ground sensor: %w", err)
	}
	if err := ecs.Add(w, player, component.CharacterComponent, &component.Character{Config: CharacterConfig(spec)}); err != nil {
		return 0, fmt.Errorf("player: add character: %w", err)
	}
	if err := ecs.Add(w, player, component.IntentBufferComponent, &component.IntentBuffer{}); err != nil {
		return 0, fmt.Errorf("player: add intent buffer: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimatorComponent, &component.AnimatorRef{Animator: animator}); err != nil {
		return 0, fmt.Errorf("player: add animator: %w", err)
	}

	return player, nil
}

// ApplyCharacterSpec swaps the tunables of a live character, keeping its
// state. Collider size changes need a respawn and are ignored.
func ApplyCharacterSpec(w *ecs.World, e ecs.Entity, spec *prefabs.CharacterSpec) error {
	ch, ok := ecs.Get(w, e, component.CharacterComponent)
	if !ok {
		return fmt.Errorf("player: entity %s has no character", e)
	}
	gs, ok := ecs.Get(w, e, component.GroundSensorComponent)
	if !ok {
		return fmt.Errorf("player: entity %s has no ground sensor", e)
	}
	sensor, err := GroundSensor(spec)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		sensor.MaxDistance += pb.Height/2 - spec.Height/2
	}

	ch.Config = CharacterConfig(spec)
	gs.MaxDistance = sensor.MaxDistance
	gs.Mask = sensor.Mask
	return nil
}
