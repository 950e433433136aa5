package defs

import (
	"errors"
	"reflect"
	"testing"
)

func TestFirstLevelSpawns(t *testing.T) {
	table := FirstLevelSpawns()
	want := []Stage{
		{Mobs: []SpawnRequest{{Kind: Goblin, Count: 5}}},
		{Mobs: []SpawnRequest{{Kind: Goblin, Count: 7}}},
	}
	if !reflect.DeepEqual(table.Stages, want) {
		t.Fatalf("unexpected stages %+v", table.Stages)
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("built-in table should be valid: %v", err)
	}
	if table.Stages[1].Total() != 7 {
		t.Fatalf("expected 7 mobs in stage 1, got %d", table.Stages[1].Total())
	}
}

func TestSpawnTableStage(t *testing.T) {
	table := FirstLevelSpawns()
	cases := []struct {
		index int
		ok    bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, false},
	}
	for _, c := range cases {
		if _, ok := table.Stage(c.index); ok != c.ok {
			t.Errorf("Stage(%d): expected ok=%v", c.index, c.ok)
		}
	}
	if _, ok := (SpawnTable{}).Stage(0); ok {
		t.Fatalf("empty table has no stage 0")
	}
}

func TestParseSpawnTable(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		want    []Stage
		wantErr bool
	}{
		{
			name: "two_stages",
			data: `
name: test
stages:
  - mobs:
      - {kind: goblin, count: 5}
  - mobs:
      - {kind: goblin, count: 2}
      - {kind: slime, count: 3}
`,
			want: []Stage{
				{Mobs: []SpawnRequest{{Kind: Goblin, Count: 5}}},
				{Mobs: []SpawnRequest{{Kind: Goblin, Count: 2}, {Kind: Slime, Count: 3}}},
			},
		},
		{
			name: "unknown_kind_decodes",
			data: `
stages:
  - mobs:
      - {kind: dragon, count: 1}
`,
			want: []Stage{{Mobs: []SpawnRequest{{Kind: KindUnknown, Count: 1}}}},
		},
		{
			name: "zero_count_and_empty_stage",
			data: `
stages:
  - mobs:
      - {kind: goblin, count: 0}
  - mobs: []
`,
			want: []Stage{
				{Mobs: []SpawnRequest{{Kind: Goblin, Count: 0}}},
				{Mobs: []SpawnRequest{}},
			},
		},
		{
			name: "negative_count",
			data: `
stages:
  - mobs:
      - {kind: goblin, count: -1}
`,
			wantErr: true,
		},
		{
			name:    "malformed",
			data:    "stages: [",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table, err := ParseSpawnTable([]byte(c.data))
			if c.wantErr {
				if !errors.Is(err, ErrInvalidSpawnTable) {
					t.Fatalf("expected ErrInvalidSpawnTable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !sameStages(table.Stages, c.want) {
				t.Fatalf("expected %+v, got %+v", c.want, table.Stages)
			}
		})
	}
}

// sameStages compares stages treating nil and empty mob lists as equal.
func sameStages(a, b []Stage) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i].Mobs) != len(b[i].Mobs) {
			return false
		}
		for j := range a[i].Mobs {
			if a[i].Mobs[j] != b[i].Mobs[j] {
				return false
			}
		}
	}
	return true
}
