package system

import "github.com/milk9111/bingle/ecs"

// pairKey is a normalized unordered entity pair.
type pairKey [2]ecs.Entity

func makePairKey(a, b ecs.Entity) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Contacts is the persistent set of currently-touching entity pairs. The
// physics handlers insert on contact-begin and remove on contact-end; the
// merge resolver re-scans the whole set every tick, because a ball's
// effective rank can change while the physical contact persists.
type Contacts struct {
	active map[pairKey]struct{}
}

// NewContacts creates an empty contact set.
func NewContacts() *Contacts {
	return &Contacts{active: make(map[pairKey]struct{})}
}

// Begin records that a and b started touching. Re-beginning an active pair
// is a no-op.
func (c *Contacts) Begin(a, b ecs.Entity) {
	c.active[makePairKey(a, b)] = struct{}{}
}

// End removes the pair. Ending an absent pair is a silent no-op, tolerating
// out-of-order delivery from the physics engine.
func (c *Contacts) End(a, b ecs.Entity) {
	delete(c.active, makePairKey(a, b))
}

// Has reports whether the pair is currently active.
func (c *Contacts) Has(a, b ecs.Entity) bool {
	_, ok := c.active[makePairKey(a, b)]
	return ok
}

// Len returns the number of active pairs.
func (c *Contacts) Len() int {
	return len(c.active)
}

// Pairs returns a snapshot of the active pairs for iteration; mutating the
// set during the scan does not affect the snapshot.
func (c *Contacts) Pairs() []pairKey {
	out := make([]pairKey, 0, len(c.active))
	for k := range c.active {
		out = append(out, k)
	}
	return out
}

// DropEntity removes every pair that references e, used when an entity's
// body leaves the space.
func (c *Contacts) DropEntity(e ecs.Entity) {
	for k := range c.active {
		if k[0] == e || k[1] == e {
			delete(c.active, k)
		}
	}
}

// Clear empties the set, used on restart.
func (c *Contacts) Clear() {
	clear(c.active)
}
