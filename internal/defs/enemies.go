// internal/defs/enemies.go
package defs

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidTemplate = errors.New("defs: invalid enemy template")
	ErrUnknownKind     = errors.New("defs: unknown enemy kind")
)

// EnemyKind identifies an enemy template. The set is closed: adding a kind
// means adding a constant here and an entry in the registry.
type EnemyKind uint8

const (
	// KindUnknown is what data naming an unrecognised kind decodes to.
	KindUnknown EnemyKind = iota
	Goblin
	Mushroom
	Slime
)

var kindNames = map[EnemyKind]string{
	KindUnknown: "unknown",
	Goblin:      "goblin",
	Mushroom:    "mushroom",
	Slime:       "slime",
}

var kindsByName = map[string]EnemyKind{
	"goblin":   Goblin,
	"mushroom": Mushroom,
	"slime":    Slime,
}

func (k EnemyKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseEnemyKind maps a data name to a kind.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// UnmarshalText decodes a kind name. Unrecognised names become KindUnknown
// instead of failing, so tables that reference unfinished content still load.
func (k *EnemyKind) UnmarshalText(text []byte) error {
	parsed, ok := ParseEnemyKind(string(text))
	if !ok {
		parsed = KindUnknown
	}
	*k = parsed
	return nil
}

// MarshalText encodes the kind by name.
func (k EnemyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// EnemyTemplate holds the static data for one kind of enemy.
type EnemyTemplate struct {
	SpriteSheet string     `yaml:"sprite_sheet"`
	Grid        SheetGrid  `yaml:"grid"`
	Idle        FrameRange `yaml:"idle"`
	Moving      FrameRange `yaml:"moving"`
	Speed       float64    `yaml:"speed"`
	Health      float64    `yaml:"health"`
	Damage      float64    `yaml:"damage"`
}

// Validate checks that an entity built from the template is well formed.
func (t EnemyTemplate) Validate() error {
	switch {
	case t.SpriteSheet == "":
		return fmt.Errorf("%w: empty sprite sheet", ErrInvalidTemplate)
	case t.Grid.FrameW <= 0 || t.Grid.FrameH <= 0 || t.Grid.Frames() <= 0:
		return fmt.Errorf("%w: bad grid %+v", ErrInvalidTemplate, t.Grid)
	case !t.Grid.holds(t.Idle):
		return fmt.Errorf("%w: idle frames %+v outside grid", ErrInvalidTemplate, t.Idle)
	case !t.Grid.holds(t.Moving):
		return fmt.Errorf("%w: moving frames %+v outside grid", ErrInvalidTemplate, t.Moving)
	case t.Speed < 0:
		return fmt.Errorf("%w: negative speed %v", ErrInvalidTemplate, t.Speed)
	case t.Health <= 0:
		return fmt.Errorf("%w: health must be positive, got %v", ErrInvalidTemplate, t.Health)
	case t.Damage <= 0:
		return fmt.Errorf("%w: damage must be positive, got %v", ErrInvalidTemplate, t.Damage)
	}
	return nil
}

// GoblinTemplate is the built-in goblin, also the default for kinds that have
// no content yet.
var GoblinTemplate = EnemyTemplate{
	SpriteSheet: "enemy/goblin/goblin_spritesheet.png",
	Grid:        SheetGrid{FrameW: 16, FrameH: 16, Columns: 6, Rows: 1},
	Idle:        FrameRange{First: 0, Last: 1},
	Moving:      FrameRange{First: 0, Last: 5},
	Speed:       100,
	Health:      10,
	Damage:      10,
}

// Registry maps enemy kinds to templates. Lookups never fail: kinds without
// an entry resolve to the fallback template.
type Registry struct {
	templates map[EnemyKind]EnemyTemplate
	fallback  EnemyTemplate
}

// NewRegistry creates an empty registry with the given fallback template.
func NewRegistry(fallback EnemyTemplate) (*Registry, error) {
	if err := fallback.Validate(); err != nil {
		return nil, fmt.Errorf("fallback template: %w", err)
	}
	return &Registry{
		templates: make(map[EnemyKind]EnemyTemplate),
		fallback:  fallback,
	}, nil
}

// DefaultRegistry returns a registry holding only the goblin, which is also
// the fallback. Mushroom and slime are reserved and fall back to it.
func DefaultRegistry() *Registry {
	r := &Registry{
		templates: map[EnemyKind]EnemyTemplate{Goblin: GoblinTemplate},
		fallback:  GoblinTemplate,
	}
	return r
}

// Register adds or replaces the template for a kind.
func (r *Registry) Register(kind EnemyKind, tpl EnemyTemplate) error {
	if kind == KindUnknown {
		return fmt.Errorf("%w: cannot register %s", ErrUnknownKind, kind)
	}
	if _, ok := kindNames[kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if err := tpl.Validate(); err != nil {
		return fmt.Errorf("register %s: %w", kind, err)
	}
	r.templates[kind] = tpl
	return nil
}

// SetFallback replaces the template used for unregistered kinds.
func (r *Registry) SetFallback(tpl EnemyTemplate) error {
	if err := tpl.Validate(); err != nil {
		return fmt.Errorf("fallback template: %w", err)
	}
	r.fallback = tpl
	return nil
}

// TemplateFor returns the template for kind, or the fallback.
func (r *Registry) TemplateFor(kind EnemyKind) EnemyTemplate {
	if tpl, ok := r.templates[kind]; ok {
		return tpl
	}
	return r.fallback
}

// Fallback returns the template used for unregistered kinds.
func (r *Registry) Fallback() EnemyTemplate {
	return r.fallback
}

// Has reports whether kind has its own template.
func (r *Registry) Has(kind EnemyKind) bool {
	_, ok := r.templates[kind]
	return ok
}

// Kinds returns the registered kinds in ascending order.
func (r *Registry) Kinds() []EnemyKind {
	kinds := make([]EnemyKind, 0, len(r.templates))
	for k := range r.templates {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Count returns the number of registered templates.
func (r *Registry) Count() int {
	return len(r.templates)
}
