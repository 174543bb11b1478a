package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem moves the camera entity toward its follow target each tick.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Follow makes target the camera's follow target.
func (cs *CameraSystem) Follow(w *ecs.World, target ecs.Entity) {
	cam := cs.camera(w)
	if cam == nil || !ecs.IsAlive(w, target) {
		return
	}
	cam.Target = uint64(target)
}

// StopFollowing clears the target only if target is the current one.
func (cs *CameraSystem) StopFollowing(w *ecs.World, target ecs.Entity) {
	cam := cs.camera(w)
	if cur, ok := following(cam); !ok || cur != target {
		return
	}
	cam.Target = 0
}

func (cs *CameraSystem) SetOffset(w *ecs.World, offset cp.Vector) {
	cam := cs.camera(w)
	if cam == nil {
		return
	}
	cam.OffsetX = offset.X
	cam.OffsetY = offset.Y
}

// Target returns the entity being followed.
func (cs *CameraSystem) Target(w *ecs.World) (ecs.Entity, bool) {
	return following(cs.camera(w))
}

func following(cam *component.Camera) (ecs.Entity, bool) {
	if cam == nil {
		return 0, false
	}
	target := ecs.Entity(cam.Target)
	return target, target.Valid()
}

func (cs *CameraSystem) Update(w *ecs.World) {
	cam := cs.camera(w)
	target, ok := following(cam)
	if !ok {
		return
	}

	t, ok := ecs.Get(w, target, component.TransformComponent)
	if !ok {
		// target was destroyed
		cam.Target = 0
		return
	}

	desiredX := t.X + cam.OffsetX
	desiredY := t.Y + cam.OffsetY
	cam.Z = cam.Depth

	if !cam.LerpToObject {
		cam.X = desiredX
		cam.Y = desiredY
		return
	}

	f := common.ExpFactor(cam.LerpSpeed, w.TimeStep())
	cam.X = common.Lerp(cam.X, desiredX, f)
	cam.Y = common.Lerp(cam.Y, desiredY, f)
}

func (cs *CameraSystem) camera(w *ecs.World) *component.Camera {
	if w == nil {
		return nil
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		e, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return nil
		}
		cs.camEntity = e
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return nil
	}
	return cam
}
