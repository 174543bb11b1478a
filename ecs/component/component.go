package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// Kind is the untyped view of a component kind, used for multi-kind queries.
type Kind interface {
	ID() ComponentID
}

// ComponentKind identifies a component type for storage and queries.
// The zero kind is invalid; kinds are only minted by NewComponentKind.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the typed key used by ecs.Add, ecs.Get, ecs.Has and
// ecs.Remove. Each component package declares one handle per type:
//
//	var CameraComponent = NewComponent[Camera]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

// ComponentID is process-wide and allocated in declaration order.
type ComponentID uint32

var nextComponentID atomic.Uint32
