package system

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

var (
	ErrMissingCharacter = errors.New("system: entity has no character component")
	ErrMissingBody      = errors.New("system: character has no physics body")
	ErrMissingAnimator  = errors.New("system: character has no animator")
)

// ValidateCharacter checks that e carries every collaborator the controller
// needs. Hosts call it once at startup.
func ValidateCharacter(w *ecs.World, e ecs.Entity) error {
	if _, ok := ecs.Get(w, e, component.CharacterComponent); !ok {
		return fmt.Errorf("%w (entity %s)", ErrMissingCharacter, e)
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok || body.Body == nil {
		return fmt.Errorf("%w (entity %s)", ErrMissingBody, e)
	}
	anim, ok := ecs.Get(w, e, component.AnimatorComponent)
	if !ok || anim.Animator == nil {
		return fmt.Errorf("%w (entity %s)", ErrMissingAnimator, e)
	}
	return nil
}

// CharacterControllerSystem turns intents into movement state and body
// velocity. It runs twice per tick: Decider in PhaseDecide and Applier in
// PhaseApply.
type CharacterControllerSystem struct {
	pendingJump map[ecs.Entity]bool
}

func NewCharacterControllerSystem() *CharacterControllerSystem {
	return &CharacterControllerSystem{pendingJump: make(map[ecs.Entity]bool)}
}

type decidePhase struct{ c *CharacterControllerSystem }

func (d decidePhase) Update(w *ecs.World) { d.c.decide(w) }

type applyPhase struct{ c *CharacterControllerSystem }

func (a applyPhase) Update(w *ecs.World) { a.c.apply(w) }

func (c *CharacterControllerSystem) Decider() ecs.System { return decidePhase{c} }
func (c *CharacterControllerSystem) Applier() ecs.System { return applyPhase{c} }

// Update runs both halves back to back, for hosts without a scheduler.
func (c *CharacterControllerSystem) Update(w *ecs.World) {
	c.decide(w)
	c.apply(w)
}

func (c *CharacterControllerSystem) decide(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.TimeStep()

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		st := &ch.State
		cfg := ch.Config

		if st.Grounded {
			st.AirborneTicks = 0
		} else {
			st.AirborneTicks++
		}

		if st.JumpBufferTicks > 0 && !c.pendingJump[e] {
			if canJump(cfg, *st) {
				c.pendingJump[e] = true
				st.JumpBufferTicks = 0
			} else {
				st.JumpBufferTicks--
			}
		}

		if buf, ok := ecs.Get(w, e, component.IntentBufferComponent); ok {
			for _, evt := range buf.Drain() {
				if evt.Intent == component.IntentJump {
					if evt.Started {
						c.queueJump(e, ch)
					}
					continue
				}
				applyIntent(st, evt)
			}
		}

		switch horizontalPolicy(cfg, *st) {
		case velocityDrive:
			st.SmoothedSpeed = nextSpeed(cfg, st.SmoothedSpeed, targetSpeed(cfg, *st), dt)
		case velocityStop:
			st.SmoothedSpeed = nextSpeed(cfg, st.SmoothedSpeed, 0, dt)
		}
	})
}

func (c *CharacterControllerSystem) queueJump(e ecs.Entity, ch *component.Character) {
	if canJump(ch.Config, ch.State) {
		c.pendingJump[e] = true
		return
	}
	if ch.Config.JumpBufferTicks > 0 {
		ch.State.JumpBufferTicks = ch.Config.JumpBufferTicks
	}
}

func (c *CharacterControllerSystem) apply(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, ch *component.Character, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		st := &ch.State

		vel := pb.Body.Velocity()
		switch horizontalPolicy(ch.Config, *st) {
		case velocityFree:
			st.SmoothedSpeed = vel.X
		default:
			vel.X = st.SmoothedSpeed
			pb.Body.SetVelocityVector(vel)
		}

		if c.pendingJump[e] {
			delete(c.pendingJump, e)
			c.RequestJump(w, e)
		}
	})

	// drop requests for entities that lost their body
	for e := range c.pendingJump {
		delete(c.pendingJump, e)
	}
}

// RequestJump applies one upward impulse of the character's jump force if
// the jump policy allows it, and fires the jump trigger. Disallowed requests
// are silently ignored.
func (c *CharacterControllerSystem) RequestJump(w *ecs.World, e ecs.Entity) bool {
	ch, ok := ecs.Get(w, e, component.CharacterComponent)
	if !ok || !canJump(ch.Config, ch.State) {
		return false
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok || pb.Body == nil {
		return false
	}

	pb.Body.ApplyImpulseAtLocalPoint(physics.Up.Mult(ch.Config.JumpForce), cp.Vector{})
	// spend the coyote window so it cannot double up with this jump
	ch.State.AirborneTicks = ch.Config.CoyoteTicks + 1
	ch.State.JumpBufferTicks = 0

	if anim, ok := ecs.Get(w, e, component.AnimatorComponent); ok && anim.Animator != nil {
		anim.Animator.SetTrigger(component.AnimTriggerJump)
	}
	return true
}

func canJump(cfg component.CharacterConfig, s component.CharacterState) bool {
	if s.Grounded || cfg.CanJumpWhenNotGrounded {
		return true
	}
	return cfg.CoyoteTicks > 0 && s.AirborneTicks <= cfg.CoyoteTicks
}
