package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/component"
)

// Animation weights for the direction parameter.
const (
	walkWeight = 1.0
	runWeight  = 2.0
)

// startDirection makes dir the active direction. A repeated start for a held
// direction refreshes its intensity and moves it to the top.
func startDirection(s *component.CharacterState, dir int, intensity float64) {
	if dir == 0 {
		return
	}
	if intensity <= 0 {
		intensity = 1
	}
	s.Held = removeHeld(s.Held, dir)
	s.Held = append(s.Held, component.HeldDirection{
		Direction: dir,
		Intensity: common.Clamp(intensity, 0, 1),
	})
	syncDirection(s)
}

// stopDirection releases dir. Releasing a direction that is not held is a
// no-op.
func stopDirection(s *component.CharacterState, dir int) {
	held := false
	for _, h := range s.Held {
		if h.Direction == dir {
			held = true
			break
		}
	}
	if !held {
		return
	}
	s.Held = removeHeld(s.Held, dir)
	syncDirection(s)
}

func setRun(s *component.CharacterState, held bool) {
	s.RunHeld = held
	s.Mode = deriveMode(s)
}

func removeHeld(held []component.HeldDirection, dir int) []component.HeldDirection {
	out := held[:0]
	for _, h := range held {
		if h.Direction != dir {
			out = append(out, h)
		}
	}
	return out
}

func syncDirection(s *component.CharacterState) {
	if n := len(s.Held); n > 0 {
		top := s.Held[n-1]
		s.Direction = top.Direction
		s.Intensity = top.Intensity
	} else {
		s.Direction = 0
		s.Intensity = 0
	}
	s.Mode = deriveMode(s)
}

func deriveMode(s *component.CharacterState) component.MovementMode {
	switch {
	case s.Direction == 0:
		return component.ModeIdle
	case s.RunHeld:
		return component.ModeRun
	default:
		return component.ModeWalk
	}
}

// applyIntent feeds one direction or run event into the state. Jump events
// are not mode transitions and are ignored here.
func applyIntent(s *component.CharacterState, evt component.IntentEvent) {
	switch evt.Intent {
	case component.IntentMoveLeft:
		if evt.Started {
			startDirection(s, -1, evt.Intensity)
		} else {
			stopDirection(s, -1)
		}
	case component.IntentMoveRight:
		if evt.Started {
			startDirection(s, 1, evt.Intensity)
		} else {
			stopDirection(s, 1)
		}
	case component.IntentRun:
		setRun(s, evt.Started)
	}
}

// targetSpeed is the signed horizontal speed the state asks for. Run speed
// is only honoured on the ground unless the config allows running in air.
func targetSpeed(cfg component.CharacterConfig, s component.CharacterState) float64 {
	dir := float64(s.Direction)
	switch s.Mode {
	case component.ModeWalk:
		return cfg.MoveSpeed * dir * s.Intensity
	case component.ModeRun:
		if s.Grounded || cfg.CanRunWhenNotGrounded {
			return cfg.RunSpeed * dir * s.Intensity
		}
		return cfg.MoveSpeed * dir * s.Intensity
	default:
		return 0
	}
}

func nextSpeed(cfg component.CharacterConfig, current, target, dt float64) float64 {
	if !cfg.SmoothMovementChange {
		return target
	}
	return common.ExpSmooth(current, target, cfg.MovementChangeSpeed, dt)
}

// directionParam is the signed animation direction: walk weighs 1, run 2.
func directionParam(s component.CharacterState) float64 {
	weight := 0.0
	switch s.Mode {
	case component.ModeWalk:
		weight = walkWeight
	case component.ModeRun:
		weight = runWeight
	}
	return float64(s.Direction) * weight * s.Intensity
}

type velocityPolicy int

const (
	// drive the body toward the target speed
	velocityDrive velocityPolicy = iota
	// airborne without air control: keep the previous applied speed
	velocityHold
	// idle with slide allowed: leave the body alone
	velocityFree
	// idle with slide disabled: decay the applied speed toward zero
	velocityStop
)

// horizontalPolicy picks how the controller treats horizontal velocity.
// An idle character that may slide is never written to, airborne or not.
func horizontalPolicy(cfg component.CharacterConfig, s component.CharacterState) velocityPolicy {
	switch {
	case s.Direction == 0 && !cfg.StopSlideWhenIdle:
		return velocityFree
	case !s.Grounded && !cfg.CanControlMovementInAir:
		return velocityHold
	case s.Direction != 0:
		return velocityDrive
	default:
		return velocityStop
	}
}
