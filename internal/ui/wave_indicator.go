// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-survivors/internal/config"
	"go-survivors/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// flashSeconds is how long the stage label stays highlighted after a change.
const flashSeconds = 2.0

// WaveIndicator shows the current stage, wave count, run time and live
// enemies. It learns about waves and stages from the event dispatcher.
type WaveIndicator struct {
	X, Y      int
	face      font.Face
	stage     int
	wave      int
	lastCount int
	exhausted bool
	flash     float64
}

// NewWaveIndicator creates an indicator drawn at (x, y).
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, face: face}
}

// Subscribe registers the indicator for the events it displays.
func (i *WaveIndicator) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.WaveSpawned, i)
	d.Subscribe(event.StageAdvanced, i)
	d.Subscribe(event.StagesExhausted, i)
}

// Unsubscribe removes the indicator from d.
func (i *WaveIndicator) Unsubscribe(d *event.Dispatcher) {
	d.Unsubscribe(event.WaveSpawned, i)
	d.Unsubscribe(event.StageAdvanced, i)
	d.Unsubscribe(event.StagesExhausted, i)
}

func (i *WaveIndicator) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveSpawnedData:
		i.stage = data.Stage
		i.wave = data.Wave
		i.lastCount = data.Count
	case event.StageAdvancedData:
		i.stage = data.To
		i.flash = flashSeconds
	case event.StagesExhaustedData:
		i.stage = data.Stage
		i.exhausted = true
		i.flash = flashSeconds
	}
}

// Update fades the stage highlight.
func (i *WaveIndicator) Update(deltaTime float64) {
	if i.flash > 0 {
		i.flash -= deltaTime
	}
}

// Draw renders the indicator. elapsed and live come from the session.
func (i *WaveIndicator) Draw(screen *ebiten.Image, elapsed float64, live int) {
	var stageColor color.Color = config.TextLightColor
	if i.flash > 0 {
		stageColor = config.StageColor
	}
	label := "Stage " + toRoman(i.stage+1)
	if i.exhausted {
		label += " (final)"
		if i.flash > 0 {
			stageColor = config.ExhaustedColor
		}
	}
	text.Draw(screen, label, i.face, i.X, i.Y, stageColor)

	minutes := int(elapsed) / 60
	seconds := int(elapsed) % 60
	lines := []string{
		fmt.Sprintf("Wave %d (+%d)", i.wave, i.lastCount),
		fmt.Sprintf("Time %02d:%02d", minutes, seconds),
		fmt.Sprintf("Enemies %d", live),
	}
	for n, line := range lines {
		text.Draw(screen, line, i.face, i.X, i.Y+(n+1)*lineHeight, config.TextLightColor)
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
