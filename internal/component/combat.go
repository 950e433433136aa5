package component

// Health is the remaining hit points of an entity.
type Health struct {
	Value float64
}

// Harmful marks an entity that deals contact damage to the player.
type Harmful struct {
	Damage float64
}
