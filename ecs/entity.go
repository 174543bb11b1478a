package ecs

import "strconv"

// Entity is a handle into a World: the low 32 bits hold the slot id and the
// high 32 bits the generation of that slot. Slot ids start at 1.
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

// Valid reports whether e names a slot at all. The zero Entity never does.
// Use IsAlive to check a handle against a world.
func (e Entity) Valid() bool {
	return e.id() > 0
}
