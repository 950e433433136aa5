package component

import "go-survivors/internal/defs"

// Enemy marks a hostile spawned by the wave scheduler.
type Enemy struct {
	Kind defs.EnemyKind
}
