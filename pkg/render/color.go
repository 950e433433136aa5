// pkg/render/color.go
package render

import "image/color"

// Colors holds the colors the sprite renderer draws the world with.
type Colors struct {
	BackgroundColor color.RGBA
	BoundsColor     color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
