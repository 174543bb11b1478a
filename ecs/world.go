package ecs

import "github.com/milk9111/platformer/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// DefaultTimeStep is used when the host never sets one.
const DefaultTimeStep = 1.0 / 60.0

// World owns entities, components, the per-tick event queue and the
// scheduler that orders systems.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler *Scheduler
	events    EventQueue

	timeStep float64
	tick     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		scheduler: NewScheduler(),
		timeStep:  DefaultTimeStep,
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// AddSystem registers a system in the given phase.
func (w *World) AddSystem(phase Phase, s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.Add(phase, s)
}

// Scheduler returns the world's scheduler.
func (w *World) Scheduler() *Scheduler {
	if w == nil {
		return nil
	}
	return w.scheduler
}

// Update runs all systems once, in phase order, then drops undrained events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.events.flush()
	w.tick++
}

// Tick returns the number of completed updates.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// SetTimeStep sets the elapsed seconds per tick. Non-positive values are
// ignored.
func (w *World) SetTimeStep(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.timeStep = dt
}

// TimeStep returns the elapsed seconds per tick.
func (w *World) TimeStep() float64 {
	if w == nil || w.timeStep <= 0 {
		return DefaultTimeStep
	}
	return w.timeStep
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s := w.stores[id]
	if s == nil {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
