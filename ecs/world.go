package ecs

import "github.com/milk9111/bingle/ecs/component"

// World owns entities, component tables, and the event queue. All mutable
// simulation state hangs off one World and is only touched from the tick
// pipeline; nothing in here is safe for concurrent use.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*sparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{tables: make(map[component.ComponentID]*sparseSet)}
}

// Create allocates a new entity.
func (w *World) Create() Entity {
	return w.entities.create()
}

// Destroy removes an entity and all of its components. Destroying a dead or
// invalid handle is a no-op returning false; the merge pass relies on that
// when a contact references a ball despawned earlier in the same pass.
func (w *World) Destroy(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, t := range w.tables {
		t.remove(e)
	}
	return true
}

// Alive reports whether the handle still refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.entities.alive(e)
}

func (w *World) table(id component.ComponentID) *sparseSet {
	t, ok := w.tables[id]
	if !ok {
		t = &sparseSet{}
		w.tables[id] = t
	}
	return t
}

// Query returns the entities that have every listed component, iterating
// the smallest table.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	smallest := w.table(ids[0])
	for _, id := range ids[1:] {
		if t := w.table(id); len(t.dense) < len(smallest.dense) {
			smallest = t
		}
	}
	out := make([]Entity, 0, len(smallest.dense))
outer:
	for _, e := range smallest.entities() {
		for _, id := range ids {
			if !w.table(id).has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns an arbitrary entity holding the component, for singletons.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	t := w.table(id)
	if len(t.dense) == 0 {
		return 0, false
	}
	return t.dense[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}
