// internal/ui/player_indicator.go
package ui

import (
	"fmt"

	"go-survivors/internal/config"
	"go-survivors/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
)

const (
	lineHeight      = 16
	healthBarWidth  = 160
	healthBarHeight = 10
)

// PlayerIndicator draws the player's health bar and level.
type PlayerIndicator struct {
	X, Y int
	face font.Face
}

func NewPlayerIndicator(x, y int, face font.Face) *PlayerIndicator {
	return &PlayerIndicator{X: x, Y: y, face: face}
}

func (i *PlayerIndicator) Draw(screen *ebiten.Image, health, maxHealth float64, level int) {
	fill := 0.0
	if maxHealth > 0 {
		fill = health / maxHealth
	}
	if fill < 0 {
		fill = 0
	} else if fill > 1 {
		fill = 1
	}

	x, y := float32(i.X), float32(i.Y)
	vector.DrawFilledRect(screen, x, y, healthBarWidth, healthBarHeight, render.DarkenColor(colornames.Crimson), false)
	vector.DrawFilledRect(screen, x, y, float32(healthBarWidth*fill), healthBarHeight, colornames.Crimson, false)
	vector.StrokeRect(screen, x, y, healthBarWidth, healthBarHeight, 1, config.TextLightColor, false)

	text.Draw(screen, fmt.Sprintf("Lv %d", level), i.face, i.X, i.Y+healthBarHeight+lineHeight, config.TextLightColor)
}
