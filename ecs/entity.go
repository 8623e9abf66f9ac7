package ecs

// Kind identifies which pool an entity lives in. Zero is reserved so that
// a zero EntityId never refers to a live entity.
type Kind uint16

// EntityId encodes the kind (upper 16 bits), the slot generation (next 16 bits)
// and the slot index (lower 32 bits)
type EntityId uint64

// NewEntityId creates an EntityId from a kind, slot generation and slot index
func NewEntityId(kind Kind, generation uint16, index uint32) EntityId {
	return EntityId(uint64(kind)<<48 | uint64(generation)<<32 | uint64(index))
}

// Kind extracts the kind from the entity ID
func (e EntityId) Kind() Kind {
	return Kind(e >> 48)
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint16 {
	return uint16(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
