package ecs

import "github.com/milk9111/bingle/ecs/component"

// Add attaches or overwrites a component on a live entity.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !w.Alive(e) {
		return component.ErrEntityNotAlive
	}
	t := w.table(handle.ID())
	if box, ok := t.get(e).(*T); ok {
		*box = value
		return nil
	}
	t.set(e, &value)
	return nil
}

// Get returns a copy of the entity's component. Mutations must be written
// back with Add, or done in place through ForEach.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	if !w.Alive(e) {
		return zero, false
	}
	box, ok := w.table(handle.ID()).get(e).(*T)
	if !ok {
		return zero, false
	}
	return *box, true
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.Alive(e) && w.table(handle.ID()).has(e)
}

// Remove detaches the component if present.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.Alive(e) {
		return false
	}
	return w.table(handle.ID()).remove(e)
}

// ForEach visits every entity holding the component with a mutable pointer.
// The entity list is snapshotted up front, so callbacks may add or remove
// components and destroy entities mid-iteration.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	t := w.table(handle.ID())
	snapshot := append([]Entity(nil), t.entities()...)
	for _, e := range snapshot {
		if box, ok := t.get(e).(*T); ok {
			fn(e, box)
		}
	}
}
