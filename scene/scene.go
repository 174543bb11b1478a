package scene

import (
	"fmt"
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/level"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

const (
	CasterChipmunk = "cp"
	CasterResolv   = "resolv"
)

// Options selects what a scene is built from.
type Options struct {
	Level  string
	Caster string
	Keys   input.KeySource
	// Gravity defaults to physics.DefaultGravity.
	Gravity float64
}

// Scene owns level loading, the physics space, spawn logic and the ordered
// systems of one playable level.
type Scene struct {
	World    *ecs.World
	Level    *level.Level
	Space    *physics.Space
	Player   ecs.Entity
	Camera   ecs.Entity
	Animator *component.AnimatorParams

	Input      *system.InputSystem
	Ground     *system.GroundSensorSystem
	Controller *system.CharacterControllerSystem
	Follower   *system.CameraSystem

	casterName string
}

// New loads the level and prefab specs, spawns the player and camera and
// registers every system in phase order.
func New(opts Options) (*Scene, error) {
	lvl, err := level.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	return NewFromLevel(lvl, opts)
}

func NewFromLevel(lvl *level.Level, opts Options) (*Scene, error) {
	charSpec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		return nil, err
	}
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}

	gravity := opts.Gravity
	if gravity == 0 {
		gravity = physics.DefaultGravity
	}

	s := &Scene{
		World:    ecs.NewWorld(),
		Level:    lvl,
		Space:    physics.NewSpace(lvl, gravity),
		Animator: component.NewAnimatorParams(),
	}

	caster, err := s.newCaster(opts.Caster)
	if err != nil {
		return nil, err
	}

	s.Player, err = entity.NewPlayerAt(s.World, s.Space, charSpec, lvl.SpawnX, lvl.SpawnY, s.Animator)
	if err != nil {
		return nil, err
	}
	if err := system.ValidateCharacter(s.World, s.Player); err != nil {
		return nil, err
	}

	s.Camera, err = entity.NewCamera(s.World, camSpec)
	if err != nil {
		return nil, err
	}

	s.Input = system.NewInputSystem(opts.Keys)
	s.Ground = system.NewGroundSensorSystem(caster)
	s.Controller = system.NewCharacterControllerSystem()
	s.Follower = system.NewCameraSystem()

	w := s.World
	w.AddSystem(ecs.PhaseInput, s.Input)
	w.AddSystem(ecs.PhaseSense, s.Ground)
	w.AddSystem(ecs.PhaseDecide, s.Controller.Decider())
	w.AddSystem(ecs.PhaseApply, s.Controller.Applier())
	w.AddSystem(ecs.PhaseSimulate, system.NewPhysicsSystem(s.Space))
	w.AddSystem(ecs.PhasePresent, system.NewAnimationParamSystem())
	w.AddSystem(ecs.PhasePresent, s.Follower)

	if target, ok := entity.FindTarget(w, camSpec.Target); ok {
		s.Follower.Follow(w, target)
	} else {
		log.Printf("scene: camera target %q not found", camSpec.Target)
	}

	log.Printf("scene: level %s ready, player at (%.0f, %.0f), caster %s", lvl.Name, lvl.SpawnX, lvl.SpawnY, s.casterName)
	return s, nil
}

func (s *Scene) newCaster(name string) (physics.Caster, error) {
	switch name {
	case "", CasterChipmunk:
		s.casterName = CasterChipmunk
		return physics.NewSpaceCaster(s.Space), nil
	case CasterResolv:
		s.casterName = CasterResolv
		return physics.NewResolvCaster(s.Level), nil
	default:
		return nil, fmt.Errorf("scene: unknown caster %q", name)
	}
}

// SetCaster swaps the ground probe backend at runtime.
func (s *Scene) SetCaster(name string) error {
	caster, err := s.newCaster(name)
	if err != nil {
		return err
	}
	s.Ground.SetCaster(caster)
	log.Printf("scene: ground caster %s", s.casterName)
	return nil
}

// ToggleCaster switches between the chipmunk and resolv casters and returns
// the name now in use.
func (s *Scene) ToggleCaster() (string, error) {
	next := CasterResolv
	if s.casterName == CasterResolv {
		next = CasterChipmunk
	}
	if err := s.SetCaster(next); err != nil {
		return s.casterName, err
	}
	return next, nil
}

func (s *Scene) CasterName() string {
	return s.casterName
}

// Step advances the scene by one fixed tick.
func (s *Scene) Step() {
	s.World.Update()
}

// Character returns the player's controller state.
func (s *Scene) Character() *component.Character {
	ch, _ := ecs.Get(s.World, s.Player, component.CharacterComponent)
	return ch
}

// CameraState returns the camera component.
func (s *Scene) CameraState() *component.Camera {
	cam, _ := ecs.Get(s.World, s.Camera, component.CameraComponent)
	return cam
}

// Transform returns the player's transform.
func (s *Scene) Transform() *component.Transform {
	tr, _ := ecs.Get(s.World, s.Player, component.TransformComponent)
	return tr
}

// Reload re-reads a changed prefab by base name. Unknown names are ignored.
func (s *Scene) Reload(name string) error {
	switch name {
	case prefabs.CharacterFile:
		spec, err := prefabs.LoadCharacterSpec()
		if err != nil {
			return err
		}
		if err := entity.ApplyCharacterSpec(s.World, s.Player, spec); err != nil {
			return err
		}
	case prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			return err
		}
		cam := s.CameraState()
		if cam == nil {
			return fmt.Errorf("scene: no camera")
		}
		entity.ApplyCameraSpec(cam, spec)
	default:
		return nil
	}
	log.Printf("scene: reloaded %s", name)
	return nil
}
