package system

import (
	"testing"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"

	"github.com/jakecoffman/cp"
)

type waveHarness struct {
	ecs      *entity.ECS
	waves    *WaveSystem
	schedule *SpawnSchedule
	log      *eventLog
}

func newWaveHarness(table defs.SpawnTable, policy ExhaustionPolicy) *waveHarness {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	spawner := NewSpawner(ecs, defs.DefaultRegistry(), &fakeResolver{})
	placement := PlacementConfig{Distance: 1000, Bounds: WorldBounds(1000, 1000)}
	schedule := NewSpawnSchedule(table, 5, 60)
	schedule.Policy = policy
	return &waveHarness{
		ecs:      ecs,
		waves:    NewWaveSystem(spawner, placement, utils.NewPRNGService(1), dispatcher, nil),
		schedule: schedule,
		log:      newEventLog(dispatcher),
	}
}

// run advances the schedule in 0.5 s frames for the given number of seconds.
func (h *waveHarness) run(seconds float64, players PlayerLocator) {
	for i := 0; i < int(seconds*2); i++ {
		h.waves.Update(0.5, h.schedule, players)
	}
}

func TestNewSpawnSchedule(t *testing.T) {
	s := NewSpawnSchedule(defs.FirstLevelSpawns(), 5, 60)
	if s.CurrentStage != 0 || s.Waves != 0 || s.Elapsed() != 0 {
		t.Fatalf("unexpected fresh schedule %+v", s)
	}
	if s.WaveTimer.Duration() != 5 || s.StageTimer.Duration() != 60 {
		t.Fatalf("unexpected timer durations")
	}
	if s.Exhausted() || s.OnFinalStage() {
		t.Fatalf("fresh two stage schedule is neither exhausted nor final")
	}
}

func TestWaveSpawnsOnTimer(t *testing.T) {
	h := newWaveHarness(defs.FirstLevelSpawns(), RepeatFinalStage)
	players := &fixedLocator{ok: true}

	h.run(4.5, players)
	if n := h.ecs.EnemyCount(); n != 0 {
		t.Fatalf("no wave before 5s, got %d enemies", n)
	}
	h.run(0.5, players)
	if n := h.ecs.EnemyCount(); n != 5 {
		t.Fatalf("expected 5 enemies at 5s, got %d", n)
	}
	spawned := h.log.of(event.WaveSpawned)
	if len(spawned) != 1 || spawned[0].Data != (event.WaveSpawnedData{Stage: 0, Wave: 1, Count: 5}) {
		t.Fatalf("unexpected wave events %+v", spawned)
	}
}

func TestFirstLevelTimeline(t *testing.T) {
	h := newWaveHarness(defs.FirstLevelSpawns(), RepeatFinalStage)
	h.ecs.SpawnPlayer(defs.KnightTemplate, 1, cp.Vector{})

	h.run(125, h.ecs)

	var stage0, stage1 int
	for _, e := range h.log.of(event.WaveSpawned) {
		data := e.Data.(event.WaveSpawnedData)
		switch data.Stage {
		case 0:
			stage0++
			if data.Count != 5 {
				t.Fatalf("stage 0 wave %d spawned %d", data.Wave, data.Count)
			}
		case 1:
			stage1++
			if data.Count != 7 {
				t.Fatalf("stage 1 wave %d spawned %d", data.Wave, data.Count)
			}
		default:
			t.Fatalf("wave on unexpected stage %d", data.Stage)
		}
	}
	// The wave at 60s still belongs to stage 0: spawning runs before the
	// stage advances within a frame.
	if stage0 != 12 || stage1 != 13 {
		t.Fatalf("expected 12 stage 0 and 13 stage 1 waves, got %d and %d", stage0, stage1)
	}
	if n := h.ecs.EnemyCount(); n != 12*5+13*7 {
		t.Fatalf("expected %d enemies, got %d", 12*5+13*7, n)
	}
	if h.schedule.CurrentStage != 1 {
		t.Fatalf("stage should stay pinned at 1, got %d", h.schedule.CurrentStage)
	}

	advanced := h.log.of(event.StageAdvanced)
	if len(advanced) != 1 || advanced[0].Data != (event.StageAdvancedData{From: 0, To: 1}) {
		t.Fatalf("unexpected stage events %+v", advanced)
	}
	exhausted := h.log.of(event.StagesExhausted)
	if len(exhausted) != 1 || exhausted[0].Data != (event.StagesExhaustedData{Stage: 1}) {
		t.Fatalf("unexpected exhaustion events %+v", exhausted)
	}
	if h.schedule.Waves != 25 || h.schedule.Elapsed() != 125 {
		t.Fatalf("unexpected schedule %d waves at %v", h.schedule.Waves, h.schedule.Elapsed())
	}

	bounds := WorldBounds(1000, 1000)
	for id, pos := range h.ecs.Positions {
		if pos.X < bounds.L || pos.X > bounds.R || pos.Y < bounds.B || pos.Y > bounds.T {
			t.Fatalf("entity %d at %+v is outside the world", id, pos)
		}
	}
}

func TestStageNeverDecreases(t *testing.T) {
	table := defs.SpawnTable{Stages: []defs.Stage{
		{Mobs: []defs.SpawnRequest{{Kind: defs.Goblin, Count: 1}}},
		{Mobs: []defs.SpawnRequest{{Kind: defs.Goblin, Count: 1}}},
		{Mobs: []defs.SpawnRequest{{Kind: defs.Goblin, Count: 1}}},
	}}
	h := newWaveHarness(table, RepeatFinalStage)
	players := &fixedLocator{ok: true}

	prev := 0
	for i := 0; i < 1000; i++ {
		h.waves.Update(0.5, h.schedule, players)
		cur := h.schedule.CurrentStage
		if cur < prev || cur > table.Len()-1 {
			t.Fatalf("stage went from %d to %d", prev, cur)
		}
		prev = cur
	}
	if prev != 2 {
		t.Fatalf("expected to end on the last stage, got %d", prev)
	}
	if n := len(h.log.of(event.StagesExhausted)); n != 1 {
		t.Fatalf("exhaustion should be reported once, got %d", n)
	}
}

func TestWaveSkippedWithoutPlayer(t *testing.T) {
	h := newWaveHarness(defs.FirstLevelSpawns(), RepeatFinalStage)
	players := &fixedLocator{ok: false}

	h.run(5, players)
	if n := h.ecs.EnemyCount(); n != 0 {
		t.Fatalf("no enemies without a player, got %d", n)
	}
	if h.schedule.Waves != 0 {
		t.Fatalf("skipped wave should not count, got %d", h.schedule.Waves)
	}
	if h.schedule.Elapsed() != 5 || h.schedule.WaveTimer.Elapsed() != 0 {
		t.Fatalf("timers should keep running without a player")
	}

	players.ok = true
	h.run(4.5, players)
	if n := h.ecs.EnemyCount(); n != 0 {
		t.Fatalf("the skipped wave must not be replayed, got %d", n)
	}
	h.run(0.5, players)
	if n := h.ecs.EnemyCount(); n != 5 {
		t.Fatalf("expected the next wave to spawn, got %d", n)
	}
}

func TestWaveNilLocator(t *testing.T) {
	h := newWaveHarness(defs.FirstLevelSpawns(), RepeatFinalStage)
	h.run(10, nil)
	if n := h.ecs.EnemyCount(); n != 0 {
		t.Fatalf("expected no enemies, got %d", n)
	}
}

func TestLongFrameSpawnsOneWave(t *testing.T) {
	h := newWaveHarness(defs.FirstLevelSpawns(), RepeatFinalStage)
	h.waves.Update(12, h.schedule, &fixedLocator{ok: true})
	if h.schedule.WaveTimer.TimesFinishedThisTick() != 2 {
		t.Fatalf("wave timer should have wrapped twice")
	}
	if n := h.ecs.EnemyCount(); n != 5 {
		t.Fatalf("expected a single wave of 5, got %d", n)
	}
}

func TestEmptyAndZeroCountStages(t *testing.T) {
	cases := []struct {
		name      string
		table     defs.SpawnTable
		wantWaves int
	}{
		{"no_stages", defs.SpawnTable{}, 0},
		{"empty_stage", defs.SpawnTable{Stages: []defs.Stage{{}}}, 12},
		{"zero_count", defs.SpawnTable{Stages: []defs.Stage{{Mobs: []defs.SpawnRequest{{Kind: defs.Goblin, Count: 0}}}}}, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newWaveHarness(c.table, RepeatFinalStage)
			h.run(60, &fixedLocator{ok: true})
			if n := h.ecs.EnemyCount(); n != 0 {
				t.Fatalf("expected no enemies, got %d", n)
			}
			if h.schedule.CurrentStage != 0 {
				t.Fatalf("stage should stay at 0, got %d", h.schedule.CurrentStage)
			}
			if h.schedule.Waves != c.wantWaves {
				t.Fatalf("expected %d waves, got %d", c.wantWaves, h.schedule.Waves)
			}
		})
	}
}

func TestHaltAfterFinalStage(t *testing.T) {
	h := newWaveHarness(defs.FirstLevelSpawns(), HaltAfterFinalStage)
	players := &fixedLocator{ok: true}

	h.run(120, players)
	// The 120s wave runs before the final stage timer fires in that frame.
	want := 12*5 + 12*7
	if n := h.ecs.EnemyCount(); n != want {
		t.Fatalf("expected %d enemies at 120s, got %d", want, n)
	}
	if !h.schedule.Exhausted() {
		t.Fatalf("schedule should be exhausted at 120s")
	}

	h.run(80, players)
	if n := h.ecs.EnemyCount(); n != want {
		t.Fatalf("halted schedule spawned more: %d", n)
	}
	if h.schedule.CurrentStage != 1 {
		t.Fatalf("stage should stay pinned, got %d", h.schedule.CurrentStage)
	}
}

func TestWaveNilSchedule(t *testing.T) {
	h := newWaveHarness(defs.FirstLevelSpawns(), RepeatFinalStage)
	h.waves.Update(5, nil, &fixedLocator{ok: true})
	if n := h.ecs.EnemyCount(); n != 0 {
		t.Fatalf("expected no enemies, got %d", n)
	}
}

func TestParseExhaustionPolicy(t *testing.T) {
	cases := []struct {
		in      string
		want    ExhaustionPolicy
		wantErr bool
	}{
		{"", RepeatFinalStage, false},
		{"repeat_final", RepeatFinalStage, false},
		{"halt", HaltAfterFinalStage, false},
		{"loop", RepeatFinalStage, true},
	}
	for _, c := range cases {
		got, err := ParseExhaustionPolicy(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("ParseExhaustionPolicy(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseExhaustionPolicy(%q) = %v, want %v", c.in, got, c.want)
		}
		if !c.wantErr && c.in != "" && got.String() != c.in {
			t.Fatalf("String() = %q, want %q", got.String(), c.in)
		}
	}
}
