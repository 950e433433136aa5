// internal/entity/ecs.go
package entity

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"

	"github.com/jakecoffman/cp"
)

type ECS struct {
	NextID          types.EntityID
	Positions       map[types.EntityID]*component.Position
	Movables        map[types.EntityID]*component.Movable
	Healths         map[types.EntityID]*component.Health
	Harmfuls        map[types.EntityID]*component.Harmful
	Sprites         map[types.EntityID]*component.Sprite
	Animatables     map[types.EntityID]*component.SpriteSheetAnimatable
	AnimationTimers map[types.EntityID]*component.AnimationTimer
	Enemies         map[types.EntityID]*component.Enemy
	Players         map[types.EntityID]*component.Player
	GameplayOnly    map[types.EntityID]component.GameplayOnly
}

func NewECS() *ECS {
	return &ECS{
		NextID:          1,
		Positions:       make(map[types.EntityID]*component.Position),
		Movables:        make(map[types.EntityID]*component.Movable),
		Healths:         make(map[types.EntityID]*component.Health),
		Harmfuls:        make(map[types.EntityID]*component.Harmful),
		Sprites:         make(map[types.EntityID]*component.Sprite),
		Animatables:     make(map[types.EntityID]*component.SpriteSheetAnimatable),
		AnimationTimers: make(map[types.EntityID]*component.AnimationTimer),
		Enemies:         make(map[types.EntityID]*component.Enemy),
		Players:         make(map[types.EntityID]*component.Player),
		GameplayOnly:    make(map[types.EntityID]component.GameplayOnly),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity removes every component of id.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Movables, id)
	delete(ecs.Healths, id)
	delete(ecs.Harmfuls, id)
	delete(ecs.Sprites, id)
	delete(ecs.Animatables, id)
	delete(ecs.AnimationTimers, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)
	delete(ecs.GameplayOnly, id)
}

// DespawnGameplay destroys every entity tagged GameplayOnly and returns how
// many were removed.
func (ecs *ECS) DespawnGameplay() int {
	ids := make([]types.EntityID, 0, len(ecs.GameplayOnly))
	for id := range ecs.GameplayOnly {
		ids = append(ids, id)
	}
	for _, id := range ids {
		ecs.DestroyEntity(id)
	}
	return len(ids)
}

// PlayerID returns the player entity. It is only reported when exactly one
// non-harmful player exists.
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	var found types.EntityID
	n := 0
	for id := range ecs.Players {
		if _, harmful := ecs.Harmfuls[id]; harmful {
			continue
		}
		if _, ok := ecs.Positions[id]; !ok {
			continue
		}
		found = id
		n++
	}
	if n != 1 {
		return 0, false
	}
	return found, true
}

// PlayerPosition returns the player's position under the same rules as
// PlayerID.
func (ecs *ECS) PlayerPosition() (cp.Vector, bool) {
	id, ok := ecs.PlayerID()
	if !ok {
		return cp.Vector{}, false
	}
	pos := ecs.Positions[id]
	return cp.Vector{X: pos.X, Y: pos.Y}, true
}

// EnemyCount returns the number of live enemies.
func (ecs *ECS) EnemyCount() int {
	return len(ecs.Enemies)
}

// SpawnPlayer creates the player character at pos.
func (ecs *ECS) SpawnPlayer(tpl defs.PlayerTemplate, sheet component.ImageHandle, pos cp.Vector) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Movables[id] = &component.Movable{
		Speed:     tpl.Speed,
		Direction: component.Right,
	}
	ecs.Healths[id] = &component.Health{Value: tpl.Health}
	ecs.Sprites[id] = &component.Sprite{
		Sheet:     sheet,
		SheetPath: tpl.SpriteSheet,
		FrameW:    tpl.Grid.FrameW,
		FrameH:    tpl.Grid.FrameH,
		Columns:   tpl.Grid.Columns,
		Rows:      tpl.Grid.Rows,
		Index:     tpl.Idle.First,
		Layer:     config.PlayerLayer,
		Scale:     tpl.Scale,
	}
	ecs.Animatables[id] = &component.SpriteSheetAnimatable{
		Idle:   component.AnimationIndices{First: tpl.Idle.First, Last: tpl.Idle.Last},
		Moving: component.AnimationIndices{First: tpl.Moving.First, Last: tpl.Moving.Last},
	}
	ecs.AnimationTimers[id] = &component.AnimationTimer{
		Timer: utils.NewTimer(config.AnimationFrameSeconds, utils.Repeating),
	}
	ecs.Players[id] = &component.Player{Level: 1}
	ecs.GameplayOnly[id] = component.GameplayOnly{}
	return id
}
