// internal/system/wave.go
package system

import (
	"fmt"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

// PlayerLocator reports where the player is. ok is false when there is no
// single player to spawn around.
type PlayerLocator interface {
	PlayerPosition() (pos cp.Vector, ok bool)
}

// ExhaustionPolicy decides what waves do once the final stage's timer has run out.
type ExhaustionPolicy uint8

const (
	// RepeatFinalStage keeps spawning the final stage's mobs forever.
	RepeatFinalStage ExhaustionPolicy = iota
	// HaltAfterFinalStage stops waves after the final stage has run once.
	HaltAfterFinalStage
)

func (p ExhaustionPolicy) String() string {
	switch p {
	case RepeatFinalStage:
		return config.ExhaustionRepeatFinal
	case HaltAfterFinalStage:
		return config.ExhaustionHalt
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParseExhaustionPolicy maps a config value to a policy. Empty means
// RepeatFinalStage.
func ParseExhaustionPolicy(s string) (ExhaustionPolicy, error) {
	switch s {
	case "", config.ExhaustionRepeatFinal:
		return RepeatFinalStage, nil
	case config.ExhaustionHalt:
		return HaltAfterFinalStage, nil
	}
	return RepeatFinalStage, fmt.Errorf("unknown exhaustion policy %q", s)
}

// SpawnSchedule is the per-run state of the wave scheduler. It is owned by
// the session and handed to WaveSystem.Update every frame.
type SpawnSchedule struct {
	Table        defs.SpawnTable
	GlobalTimer  utils.Stopwatch
	WaveTimer    utils.Timer
	StageTimer   utils.Timer
	CurrentStage int
	Waves        int
	Policy       ExhaustionPolicy

	exhausted bool
}

// NewSpawnSchedule creates a schedule at stage 0 with fresh repeating timers.
func NewSpawnSchedule(table defs.SpawnTable, waveInterval, stageInterval float64) *SpawnSchedule {
	return &SpawnSchedule{
		Table:      table,
		WaveTimer:  utils.NewTimer(waveInterval, utils.Repeating),
		StageTimer: utils.NewTimer(stageInterval, utils.Repeating),
	}
}

// Stage returns the current stage, if the index is valid.
func (s *SpawnSchedule) Stage() (defs.Stage, bool) {
	return s.Table.Stage(s.CurrentStage)
}

// OnFinalStage reports whether there is no stage after the current one.
func (s *SpawnSchedule) OnFinalStage() bool {
	return s.CurrentStage+1 >= s.Table.Len()
}

// Exhausted reports whether the stage timer has fired on the final stage.
func (s *SpawnSchedule) Exhausted() bool {
	return s.exhausted
}

// Elapsed returns the seconds since the schedule started.
func (s *SpawnSchedule) Elapsed() float64 {
	return s.GlobalTimer.Elapsed()
}

// WaveSystem spawns the current stage's mobs on every wave tick and moves
// through the stages on every stage tick.
type WaveSystem struct {
	spawner         *Spawner
	placement       PlacementConfig
	rng             RandomSource
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewWaveSystem(spawner *Spawner, placement PlacementConfig, rng RandomSource, eventDispatcher *event.Dispatcher, logger *zap.Logger) *WaveSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaveSystem{
		spawner:         spawner,
		placement:       placement,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger.With(zap.String("system", "wave")),
	}
}

// Update advances the schedule by deltaTime. A wave tick spawns at most one
// wave per frame however many cycles the timer completed. Spawning is
// evaluated before the stage advances.
func (s *WaveSystem) Update(deltaTime float64, schedule *SpawnSchedule, players PlayerLocator) {
	if schedule == nil {
		return
	}

	schedule.GlobalTimer.Tick(deltaTime)
	schedule.WaveTimer.Tick(deltaTime)
	schedule.StageTimer.Tick(deltaTime)

	if schedule.WaveTimer.JustFinished() {
		if schedule.exhausted && schedule.Policy == HaltAfterFinalStage {
			s.logger.Debug("wave skipped, stages exhausted", zap.Int("stage", schedule.CurrentStage))
		} else {
			s.spawnWave(schedule, players)
		}
	}

	if schedule.StageTimer.JustFinished() {
		s.advanceStage(schedule)
	}
}

func (s *WaveSystem) spawnWave(schedule *SpawnSchedule, players PlayerLocator) {
	stage, ok := schedule.Stage()
	if !ok {
		return
	}
	if players == nil {
		return
	}
	playerPos, ok := players.PlayerPosition()
	if !ok {
		s.logger.Debug("wave skipped, no player", zap.Int("stage", schedule.CurrentStage))
		return
	}

	count := 0
	for _, mob := range stage.Mobs {
		for i := 0; i < mob.Count; i++ {
			pos := s.placement.Place(playerPos, s.rng)
			s.spawner.Instantiate(mob.Kind, pos)
			count++
		}
	}
	schedule.Waves++

	s.logger.Debug("wave spawned",
		zap.Int("stage", schedule.CurrentStage),
		zap.Int("wave", schedule.Waves),
		zap.Int("count", count),
		zap.Float64("elapsed", schedule.Elapsed()))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.WaveSpawnedData{Stage: schedule.CurrentStage, Wave: schedule.Waves, Count: count},
	})
}

func (s *WaveSystem) advanceStage(schedule *SpawnSchedule) {
	next := schedule.CurrentStage + 1
	if next < schedule.Table.Len() {
		from := schedule.CurrentStage
		schedule.CurrentStage = next
		s.logger.Info("stage advanced",
			zap.Int("from", from),
			zap.Int("to", next),
			zap.Float64("elapsed", schedule.Elapsed()))
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.StageAdvanced,
			Data: event.StageAdvancedData{From: from, To: next},
		})
		return
	}

	if schedule.exhausted {
		return
	}
	schedule.exhausted = true
	s.logger.Info("stages exhausted",
		zap.Int("stage", schedule.CurrentStage),
		zap.Stringer("policy", schedule.Policy))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StagesExhausted,
		Data: event.StagesExhaustedData{Stage: schedule.CurrentStage},
	})
}
