// internal/system/animation.go
package system

import "go-survivors/internal/entity"

// AnimationSystem steps sprite frames through the idle or moving range.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	for id, timer := range s.ecs.AnimationTimers {
		anim, ok := s.ecs.Animatables[id]
		if !ok {
			continue
		}
		sprite, ok := s.ecs.Sprites[id]
		if !ok {
			continue
		}
		moving := false
		if movable, ok := s.ecs.Movables[id]; ok {
			moving = movable.IsMoving
		}

		timer.Tick(deltaTime)
		if !timer.JustFinished() {
			continue
		}
		indices := anim.For(moving)
		if sprite.Index == indices.Last || !indices.Contains(sprite.Index) {
			sprite.Index = indices.First
		} else {
			sprite.Index++
		}
	}
}
