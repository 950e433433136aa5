package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func withDataDir(t *testing.T, dir string) {
	t.Helper()
	prev := DataDir()
	SetDataDir(dir)
	t.Cleanup(func() { SetDataDir(prev) })
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	override := "name: override\nstages:\n  - mobs:\n      - {kind: slime, count: 2}\n"
	if err := os.WriteFile(filepath.Join(dir, "first_level.yaml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}
	withDataDir(t, dir)

	table, err := LoadSpawnTable("first_level")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Name != "override" {
		t.Fatalf("expected disk table, got %q", table.Name)
	}
	if len(table.Stages) != 1 || table.Stages[0].Mobs[0] != (SpawnRequest{Kind: Slime, Count: 2}) {
		t.Fatalf("unexpected stages %+v", table.Stages)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	withDataDir(t, t.TempDir())

	table, err := LoadSpawnTable("first_level.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Name != "first_level" {
		t.Fatalf("expected embedded table, got %q", table.Name)
	}
	if !sameStages(table.Stages, FirstLevelSpawns().Stages) {
		t.Fatalf("embedded table should match the built-in one, got %+v", table.Stages)
	}

	if _, err := Load("data/enemies.yaml"); err != nil {
		t.Fatalf("data/ prefix should be accepted: %v", err)
	}
}

func TestLoadSpawnTableErrors(t *testing.T) {
	dir := t.TempDir()
	bad := "stages:\n  - mobs:\n      - {kind: goblin, count: -3}\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	withDataDir(t, dir)

	if _, err := LoadSpawnTable("missing"); err == nil {
		t.Fatalf("expected an error for a missing table")
	}
	if _, err := LoadSpawnTable("bad"); !errors.Is(err, ErrInvalidSpawnTable) {
		t.Fatalf("expected ErrInvalidSpawnTable, got %v", err)
	}
}

func TestLoadRegistryEmbedded(t *testing.T) {
	withDataDir(t, "")

	reg, err := LoadRegistry(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := reg.TemplateFor(Goblin); got != GoblinTemplate {
		t.Fatalf("embedded goblin should match the built-in one, got %+v", got)
	}
	if reg.TemplateFor(Mushroom) != GoblinTemplate {
		t.Fatalf("mushroom should fall back to goblin")
	}
}

func TestParseRegistry(t *testing.T) {
	data := []byte(`
default: slime
enemies:
  slime:
    sprite_sheet: enemy/slime/slime_spritesheet.png
    grid: {frame_w: 16, frame_h: 16, columns: 4, rows: 1}
    idle: {first: 0, last: 1}
    moving: {first: 0, last: 3}
    speed: 60
    health: 20
    damage: 5
  mushroom:
    sprite_sheet: enemy/mushroom/mushroom_spritesheet.png
    grid: {frame_w: 16, frame_h: 16, columns: 4, rows: 1}
    idle: {first: 0, last: 1}
    moving: {first: 0, last: 3}
    speed: 60
    health: 0
    damage: 5
  dragon:
    sprite_sheet: enemy/dragon.png
    grid: {frame_w: 16, frame_h: 16, columns: 1, rows: 1}
    speed: 1
    health: 1
    damage: 1
`)
	reg, err := ParseRegistry(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reg.Has(Slime) {
		t.Fatalf("slime should be registered")
	}
	if reg.Has(Mushroom) {
		t.Fatalf("mushroom with zero health should be skipped")
	}
	if !reg.Has(Goblin) {
		t.Fatalf("built-in goblin should survive the merge")
	}
	slime := reg.TemplateFor(Slime)
	if slime.Health != 20 || slime.Grid.Columns != 4 {
		t.Fatalf("unexpected slime template %+v", slime)
	}
	if reg.TemplateFor(Mushroom) != slime || reg.TemplateFor(KindUnknown) != slime {
		t.Fatalf("unregistered kinds should resolve to the slime default")
	}
}

func TestParseRegistryErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unregistered_default", "default: mushroom\n"},
		{"unknown_default", "default: dragon\n"},
		{"malformed", "enemies: ["},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseRegistry([]byte(c.data), nil); !errors.Is(err, ErrInvalidTemplate) {
				t.Fatalf("expected ErrInvalidTemplate, got %v", err)
			}
		})
	}
}
