// internal/defs/waves.go
package defs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpawnTable = errors.New("defs: invalid spawn table")

// SpawnRequest asks for Count enemies of Kind in a single wave.
type SpawnRequest struct {
	Kind  EnemyKind `yaml:"kind"`
	Count int       `yaml:"count"`
}

// Stage is the mob list spawned on every wave while the stage is current.
type Stage struct {
	Mobs []SpawnRequest `yaml:"mobs"`
}

// Total returns the number of enemies one wave of the stage spawns.
func (s Stage) Total() int {
	total := 0
	for _, m := range s.Mobs {
		total += m.Count
	}
	return total
}

// SpawnTable is the ordered list of stages for a level.
type SpawnTable struct {
	Name   string  `yaml:"name"`
	Stages []Stage `yaml:"stages"`
}

// Len returns the number of stages.
func (t SpawnTable) Len() int {
	return len(t.Stages)
}

// Stage returns the stage at index i, if it exists.
func (t SpawnTable) Stage(i int) (Stage, bool) {
	if i < 0 || i >= len(t.Stages) {
		return Stage{}, false
	}
	return t.Stages[i], true
}

// Validate rejects negative counts. Empty stages and zero counts are allowed
// and spawn nothing.
func (t SpawnTable) Validate() error {
	for i, stage := range t.Stages {
		for j, mob := range stage.Mobs {
			if mob.Count < 0 {
				return fmt.Errorf("%w: stage %d mob %d (%s) has count %d",
					ErrInvalidSpawnTable, i, j, mob.Kind, mob.Count)
			}
		}
	}
	return nil
}

// FirstLevelSpawns is the built-in table for the first level.
func FirstLevelSpawns() SpawnTable {
	return SpawnTable{
		Name: "first_level",
		Stages: []Stage{
			{Mobs: []SpawnRequest{{Kind: Goblin, Count: 5}}},
			{Mobs: []SpawnRequest{{Kind: Goblin, Count: 7}}},
		},
	}
}

// ParseSpawnTable decodes and validates a yaml spawn table.
func ParseSpawnTable(data []byte) (SpawnTable, error) {
	var table SpawnTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return SpawnTable{}, fmt.Errorf("%w: %v", ErrInvalidSpawnTable, err)
	}
	if err := table.Validate(); err != nil {
		return SpawnTable{}, err
	}
	return table, nil
}

// LoadSpawnTable loads name.yaml from the data directory or the embedded
// defaults.
func LoadSpawnTable(name string) (SpawnTable, error) {
	file := tableFile(name)
	data, err := Load(file)
	if err != nil {
		return SpawnTable{}, fmt.Errorf("defs: load %s: %w", file, err)
	}
	table, err := ParseSpawnTable(data)
	if err != nil {
		return SpawnTable{}, fmt.Errorf("defs: parse %s: %w", file, err)
	}
	if table.Name == "" {
		table.Name = name
	}
	return table, nil
}
