package component

import (
	"errors"
	"sync/atomic"
)

var ErrEntityNotAlive = errors.New("ecs: entity not alive")

// ComponentID uniquely identifies a component type at runtime.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentHandle ties a Go type to a ComponentID. One handle is declared
// per component type, at package level, next to the type itself.
type ComponentHandle[T any] struct {
	id ComponentID
}

// NewComponent allocates a handle for T.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

// ID returns the runtime component id.
func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

// Valid reports whether the handle was created through NewComponent.
func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}
