// internal/app/game.go
package app

import (
	"fmt"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/system"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

// Options configures one gameplay run.
type Options struct {
	Table         defs.SpawnTable
	Registry      *defs.Registry
	Player        defs.PlayerTemplate
	Assets        system.AssetResolver
	Dispatcher    *event.Dispatcher
	Logger        *zap.Logger
	Seed          int64 // 0 = time based
	WaveInterval  float64
	StageInterval float64
	Distance      float64
	Bounds        cp.BB
	PlayerSpeed   float64
	PlayerBounds  float64
	Policy        system.ExhaustionPolicy
}

// DefaultOptions returns options built from the compile-time defaults and
// the built-in data.
func DefaultOptions() Options {
	return Options{
		Table:         defs.FirstLevelSpawns(),
		Registry:      defs.DefaultRegistry(),
		Player:        defs.KnightTemplate,
		WaveInterval:  config.WaveInterval,
		StageInterval: config.StageInterval,
		Distance:      config.SpawnDistance,
		Bounds:        system.WorldBounds(config.MapWidth, config.MapHeight),
		PlayerSpeed:   config.PlayerSpeed,
		PlayerBounds:  config.PlayerBounds,
		Policy:        system.RepeatFinalStage,
	}
}

// OptionsFromConfig applies a runtime config over DefaultOptions. Data
// tables are left at the built-in values for the caller to replace.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()
	policy, err := system.ParseExhaustionPolicy(cfg.Spawn.Exhaustion)
	if err != nil {
		return Options{}, fmt.Errorf("spawn config: %w", err)
	}
	opts.Policy = policy
	opts.Seed = cfg.Spawn.Seed
	opts.WaveInterval = cfg.Spawn.WaveInterval.Seconds()
	opts.StageInterval = cfg.Spawn.StageInterval.Seconds()
	opts.Distance = cfg.Spawn.Distance
	opts.Bounds = system.WorldBounds(cfg.World.Width, cfg.World.Height)
	opts.PlayerSpeed = cfg.Player.Speed
	opts.PlayerBounds = cfg.Player.Bounds
	return opts, nil
}

// Stats summarises a run.
type Stats struct {
	Elapsed   float64
	Stage     int
	Waves     int
	Spawned   int
	Live      int
	Despawned int
	Exhausted bool
}

// Session holds the entities, systems and schedule of one gameplay run.
type Session struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Schedule        *system.SpawnSchedule
	PlayerSystem    *system.PlayerSystem
	WaveSystem      *system.WaveSystem
	AnimationSystem *system.AnimationSystem
	Spawner         *system.Spawner
	PlayerID        types.EntityID

	logger *zap.Logger
	ended  bool
	last   Stats
}

// NewSession builds a run: a fresh ECS, the player at the origin and a
// schedule at stage 0.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	player := opts.Player
	if player.SpriteSheet == "" {
		player = defs.KnightTemplate
	}
	if opts.PlayerSpeed > 0 {
		player.Speed = opts.PlayerSpeed
	}

	ecs := entity.NewECS()
	rng := utils.NewPRNGService(opts.Seed)
	spawner := system.NewSpawner(ecs, opts.Registry, opts.Assets)

	schedule := system.NewSpawnSchedule(opts.Table, opts.WaveInterval, opts.StageInterval)
	schedule.Policy = opts.Policy

	s := &Session{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Schedule:        schedule,
		PlayerSystem:    system.NewPlayerSystem(ecs, opts.PlayerBounds),
		WaveSystem: system.NewWaveSystem(spawner,
			system.PlacementConfig{Distance: opts.Distance, Bounds: opts.Bounds},
			rng, dispatcher, logger),
		AnimationSystem: system.NewAnimationSystem(ecs),
		Spawner:         spawner,
		logger:          logger.With(zap.String("system", "session")),
	}

	var sheet component.ImageHandle
	if opts.Assets != nil {
		sheet = opts.Assets.Load(player.SpriteSheet)
	}
	s.PlayerID = ecs.SpawnPlayer(player, sheet, cp.Vector{})

	s.logger.Info("session started",
		zap.String("table", opts.Table.Name),
		zap.Int("stages", opts.Table.Len()),
		zap.Int64("seed", rng.Seed()),
		zap.Stringer("policy", opts.Policy))
	return s
}

// Update runs one frame: player movement, waves, then animation.
func (s *Session) Update(deltaTime float64, input component.InputState) {
	if s.ended {
		return
	}
	s.PlayerSystem.Update(deltaTime, input)
	s.WaveSystem.Update(deltaTime, s.Schedule, s.ECS)
	s.AnimationSystem.Update(deltaTime)
}

// End despawns every gameplay entity and drops the schedule. Calling it
// again returns the same stats.
func (s *Session) End() Stats {
	if s.ended {
		return s.last
	}
	stats := s.Stats()
	stats.Despawned = s.ECS.DespawnGameplay()
	stats.Live = 0
	s.Schedule = nil
	s.ended = true
	s.last = stats

	s.logger.Info("session ended",
		zap.Float64("elapsed", stats.Elapsed),
		zap.Int("waves", stats.Waves),
		zap.Int("spawned", stats.Spawned),
		zap.Int("despawned", stats.Despawned))
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.SessionEnded,
		Data: event.SessionEndedData{
			Elapsed:   stats.Elapsed,
			Waves:     stats.Waves,
			Spawned:   stats.Spawned,
			Despawned: stats.Despawned,
		},
	})
	return stats
}

// Ended reports whether End has been called.
func (s *Session) Ended() bool {
	return s.ended
}

// Stats reports the run so far.
func (s *Session) Stats() Stats {
	if s.ended {
		return s.last
	}
	return Stats{
		Elapsed:   s.Schedule.Elapsed(),
		Stage:     s.Schedule.CurrentStage,
		Waves:     s.Schedule.Waves,
		Spawned:   s.Spawner.Spawned(),
		Live:      s.ECS.EnemyCount(),
		Exhausted: s.Schedule.Exhausted(),
	}
}
