// internal/system/spawn.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"

	"github.com/jakecoffman/cp"
)

// AssetResolver hands out image handles for sprite sheet paths. Loading may
// be deferred; a handle is returned either way.
type AssetResolver interface {
	Load(path string) component.ImageHandle
}

// Spawner turns an enemy kind and a position into a live entity.
type Spawner struct {
	ecs      *entity.ECS
	registry *defs.Registry
	assets   AssetResolver
	spawned  int
}

// NewSpawner creates a spawner. A nil registry uses the built-in templates
// and a nil resolver leaves sprites without a sheet handle.
func NewSpawner(ecs *entity.ECS, registry *defs.Registry, assets AssetResolver) *Spawner {
	if registry == nil {
		registry = defs.DefaultRegistry()
	}
	return &Spawner{ecs: ecs, registry: registry, assets: assets}
}

// Instantiate creates an enemy of kind at pos.
func (s *Spawner) Instantiate(kind defs.EnemyKind, pos cp.Vector) types.EntityID {
	tpl := s.registry.TemplateFor(kind)

	var sheet component.ImageHandle
	if s.assets != nil {
		sheet = s.assets.Load(tpl.SpriteSheet)
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Movables[id] = &component.Movable{
		Speed:     tpl.Speed,
		Direction: component.Right,
		IsMoving:  false,
	}
	s.ecs.Healths[id] = &component.Health{Value: tpl.Health}
	s.ecs.Harmfuls[id] = &component.Harmful{Damage: tpl.Damage}
	s.ecs.Sprites[id] = &component.Sprite{
		Sheet:     sheet,
		SheetPath: tpl.SpriteSheet,
		FrameW:    tpl.Grid.FrameW,
		FrameH:    tpl.Grid.FrameH,
		Columns:   tpl.Grid.Columns,
		Rows:      tpl.Grid.Rows,
		Index:     tpl.Idle.First,
		Layer:     config.EnemyLayer,
		Scale:     config.EnemyScale,
	}
	s.ecs.Animatables[id] = &component.SpriteSheetAnimatable{
		Idle:   component.AnimationIndices{First: tpl.Idle.First, Last: tpl.Idle.Last},
		Moving: component.AnimationIndices{First: tpl.Moving.First, Last: tpl.Moving.Last},
	}
	s.ecs.AnimationTimers[id] = &component.AnimationTimer{
		Timer: utils.NewTimer(config.AnimationFrameSeconds, utils.Repeating),
	}
	s.ecs.Enemies[id] = &component.Enemy{Kind: kind}
	s.ecs.GameplayOnly[id] = component.GameplayOnly{}

	s.spawned++
	return id
}

// Spawned returns how many entities this spawner has created.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Registry returns the templates the spawner resolves kinds against.
func (s *Spawner) Registry() *defs.Registry {
	return s.registry
}
