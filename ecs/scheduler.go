package ecs

// System is one stage of the fixed-order tick pipeline.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order, once per tick. The order is
// load-bearing: each stage reads state the previous stage finished writing.
type Scheduler struct {
	systems []System
}

// NewScheduler creates a scheduler over the given systems.
func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

// Add appends a system to the update order.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once against the world.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}
