// internal/state/input.go
package state

import (
	"go-survivors/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readInput samples the movement keys for this frame.
func readInput() component.InputState {
	return component.InputState{
		Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
	}
}
