package ecs

// sparseSet is cache-friendly component storage keyed by entity id.
// Values are boxed as `any`; the typed accessors in generics.go do the
// casting so systems never see the untyped layer.
type sparseSet struct {
	dense  []Entity
	values []any
	sparse []int // indexed by id-1, -1 = absent
}

func (s *sparseSet) has(e Entity) bool {
	id := int(e.id())
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx].id() == e.id()
}

func (s *sparseSet) get(e Entity) any {
	if !s.has(e) {
		return nil
	}
	return s.values[s.sparse[e.id()-1]]
}

func (s *sparseSet) set(e Entity, v any) {
	id := int(e.id())
	if id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(e) {
		idx := s.sparse[id-1]
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

func (s *sparseSet) remove(e Entity) bool {
	if !s.has(e) {
		return false
	}
	idx := s.sparse[e.id()-1]
	last := len(s.dense) - 1
	lastEnt := s.dense[last]

	s.dense[idx] = lastEnt
	s.values[idx] = s.values[last]
	s.sparse[lastEnt.id()-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()-1] = -1
	return true
}

// entities returns the dense entity list. Callers that mutate the set while
// iterating must copy it first.
func (s *sparseSet) entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}
