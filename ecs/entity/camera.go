package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	cam := &component.Camera{}
	ApplyCameraSpec(cam, spec)
	cam.Z = spec.Depth
	if err := ecs.Add(w, camera, component.CameraComponent, cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

// ApplyCameraSpec copies the tunables of spec onto cam. Position and target
// are left alone.
func ApplyCameraSpec(cam *component.Camera, spec *prefabs.CameraSpec) {
	cam.OffsetX = spec.Offset.X
	cam.OffsetY = spec.Offset.Y
	cam.Depth = spec.Depth
	cam.LerpToObject = spec.LerpToObject
	cam.LerpSpeed = spec.LerpSpeed
}

// FindTarget resolves a camera target name. Only "player" is known.
func FindTarget(w *ecs.World, name string) (ecs.Entity, bool) {
	if name == "player" || name == "" {
		return w.First(component.PlayerTagComponent.Kind())
	}
	return 0, false
}
