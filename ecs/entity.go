package ecs

import "strconv"

// Entity is a stable handle: a 32-bit id packed with a 32-bit generation.
// Destroying an entity bumps the generation, so a stale handle to a reused
// id never validates again.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether e was ever issued by a world.
func (e Entity) Valid() bool {
	return e.id() != 0
}
