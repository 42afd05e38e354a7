package component

// PlayerInput stores per-frame input state for the player entity.
type PlayerInput struct {
	MoveX float64
	MoveY float64
	Turn  float64

	// SelectSlot picks a quiver slot, counting from 1. Zero keeps the
	// current selection.
	SelectSlot int
	Fire       bool

	ToggleCannotDie bool
	DebugDamage     bool
	DebugHeal       bool
}

var PlayerInputComponent = NewComponent[PlayerInput]()
