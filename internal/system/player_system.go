// internal/system/player_system.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/entity"
)

// PlayerSystem moves the player from the frame's input and keeps its sprite
// in step with the movement state.
type PlayerSystem struct {
	ecs    *entity.ECS
	bounds float64
}

// NewPlayerSystem creates the system. Positions are clamped to
// [-bounds, bounds] on both axes.
func NewPlayerSystem(ecs *entity.ECS, bounds float64) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, bounds: bounds}
}

func (s *PlayerSystem) Update(deltaTime float64, input component.InputState) {
	id, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	movable, ok := s.ecs.Movables[id]
	if !ok {
		return
	}
	pos := s.ecs.Positions[id]
	sprite := s.ecs.Sprites[id]

	dir, moving := input.Direction()
	if moving {
		step := deltaTime * movable.Speed
		if dir.Diagonal() {
			step = math.Sqrt(step*step*2) / 2
		}
		dx, dy := dir.Unit()
		pos.X += dx * step
		pos.Y += dy * step
		movable.Direction = dir

		if sprite != nil && dx != 0 {
			sprite.FlipX = dx < 0
		}
	}

	pos.X = math.Max(-s.bounds, math.Min(s.bounds, pos.X))
	pos.Y = math.Max(-s.bounds, math.Min(s.bounds, pos.Y))

	if movable.IsMoving != moving {
		movable.IsMoving = moving
		if anim, ok := s.ecs.Animatables[id]; ok && sprite != nil {
			sprite.Index = anim.For(moving).First
		}
	}
}
