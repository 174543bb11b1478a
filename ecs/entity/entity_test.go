package entity

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/level"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

func TestNewPlayerFromEmbeddedSpec(t *testing.T) {
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}

	w := ecs.NewWorld()
	space := physics.NewSpace(&level.Level{Width: 640, Height: 480}, physics.DefaultGravity)
	player, err := NewPlayerAt(w, space, spec, 100, 400, component.NewAnimatorParams())
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if err := system.ValidateCharacter(w, player); err != nil {
		t.Fatalf("validate: %v", err)
	}

	tr, _ := ecs.Get(w, player, component.TransformComponent)
	if tr.Y != 400-spec.Height/2 {
		t.Fatalf("expected feet at spawn point, centre y %v", tr.Y)
	}
	gs, _ := ecs.Get(w, player, component.GroundSensorComponent)
	if gs.MaxDistance != spec.Height/2+spec.MaximumGroundedHeight {
		t.Fatalf("unexpected probe length %v", gs.MaxDistance)
	}
	if gs.Mask&physics.CategoryCharacter != 0 {
		t.Fatal("probe mask must not include characters")
	}
}

func TestNewPlayerWithoutAnimatorFailsValidation(t *testing.T) {
	spec := &prefabs.CharacterSpec{Width: 10, Height: 20}
	w := ecs.NewWorld()
	space := physics.NewSpace(nil, physics.DefaultGravity)

	player, err := NewPlayerAt(w, space, spec, 0, 0, nil)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if err := system.ValidateCharacter(w, player); err == nil {
		t.Fatal("expected missing animator error")
	}
}

func TestNewPlayerRejectsBadSpec(t *testing.T) {
	w := ecs.NewWorld()
	space := physics.NewSpace(nil, physics.DefaultGravity)

	tests := []struct {
		name string
		spec *prefabs.CharacterSpec
	}{
		{"nil", nil},
		{"zero_size", &prefabs.CharacterSpec{}},
		{"bad_mask", &prefabs.CharacterSpec{Width: 1, Height: 1, CollisionMask: []string{"water"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPlayerAt(w, space, tc.spec, 0, 0, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestApplyCharacterSpecKeepsState(t *testing.T) {
	w := ecs.NewWorld()
	space := physics.NewSpace(nil, physics.DefaultGravity)
	spec := &prefabs.CharacterSpec{Width: 10, Height: 20, MoveSpeed: 100}
	player, err := NewPlayerAt(w, space, spec, 0, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	ch, _ := ecs.Get(w, player, component.CharacterComponent)
	ch.State.Direction = 1
	ch.State.Mode = component.ModeWalk

	slide := true
	updated := &prefabs.CharacterSpec{Width: 10, Height: 40, MoveSpeed: 300, MaximumGroundedHeight: 6, EnableSlideDownRamps: &slide}
	if err := ApplyCharacterSpec(w, player, updated); err != nil {
		t.Fatal(err)
	}
	if ch.Config.MoveSpeed != 300 || ch.Config.StopSlideWhenIdle {
		t.Fatalf("config not applied: %+v", ch.Config)
	}
	if ch.State.Direction != 1 || ch.State.Mode != component.ModeWalk {
		t.Fatal("state was reset")
	}
	gs, _ := ecs.Get(w, player, component.GroundSensorComponent)
	if gs.MaxDistance != 10+6 {
		t.Fatalf("probe must follow the live collider, got %v", gs.MaxDistance)
	}
}

func TestNewCameraAndTarget(t *testing.T) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	w := ecs.NewWorld()
	camera, err := NewCamera(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent)
	if !ok || cam.Depth != spec.Depth || cam.OffsetY != spec.Offset.Y || cam.LerpToObject != spec.LerpToObject {
		t.Fatalf("camera not built from spec: %+v", cam)
	}

	if _, ok := FindTarget(w, spec.Target); ok {
		t.Fatal("no player yet")
	}
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		t.Fatal(err)
	}
	if got, ok := FindTarget(w, "player"); !ok || got != player {
		t.Fatalf("expected player target, got %v", got)
	}
	if _, ok := FindTarget(w, "boss"); ok {
		t.Fatal("unknown targets must not resolve")
	}
}
