package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/prefabs"
)

const defaultDeadzone = 0.2

// keyboardKeys samples bound keys and the first standard gamepad once per
// tick.
type keyboardKeys struct {
	bindings [input.ActionCount][]ebiten.Key
	deadzone float64

	levels [input.ActionCount]bool
	axis   float64
}

func newKeyboardKeys(spec *prefabs.InputSpec) (*keyboardKeys, error) {
	k := &keyboardKeys{deadzone: spec.Deadzone}
	if k.deadzone <= 0 || k.deadzone >= 1 {
		k.deadzone = defaultDeadzone
	}
	for name, keys := range spec.Bindings {
		a, ok := input.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("input: unknown action %q", name)
		}
		for _, keyName := range keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("input: binding %s: %w", name, err)
			}
			k.bindings[a] = append(k.bindings[a], key)
		}
	}
	return k, nil
}

func (k *keyboardKeys) Poll(uint64) error {
	for a := input.Action(0); a < input.ActionCount; a++ {
		k.levels[a] = false
		for _, key := range k.bindings[a] {
			if ebiten.IsKeyPressed(key) {
				k.levels[a] = true
				break
			}
		}
	}

	k.axis = 0
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 || !ebiten.IsStandardGamepadLayoutAvailable(ids[0]) {
		return nil
	}
	id := ids[0]

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if mag := math.Abs(x); mag > k.deadzone {
		k.axis = math.Copysign((mag-k.deadzone)/(1-k.deadzone), x)
		if x < 0 {
			k.levels[input.ActionLeft] = true
		} else {
			k.levels[input.ActionRight] = true
		}
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
		k.levels[input.ActionLeft] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
		k.levels[input.ActionRight] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
		k.levels[input.ActionJump] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft) {
		k.levels[input.ActionRun] = true
	}
	return nil
}

func (k *keyboardKeys) Pressed(a input.Action) bool {
	if a < 0 || a >= input.ActionCount {
		return false
	}
	return k.levels[a]
}

func (k *keyboardKeys) Axis() float64 {
	return k.axis
}
