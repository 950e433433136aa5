// internal/component/player.go
package component

// Player holds progression data of the player character.
type Player struct {
	Level      int
	Experience uint64
}
