// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WindowTitle  = "go-survivors"
	MaxDeltaTime = 0.06

	// World half extents. Spawns are clamped to [-MapWidth, MapWidth] x
	// [-MapHeight, MapHeight].
	MapWidth  = 1000.0
	MapHeight = 1000.0

	SpawnDistance = 1000.0 // |dx|+|dy| of a spawn from the player
	WaveInterval  = 5.0    // seconds between waves
	StageInterval = 60.0   // seconds a stage lasts

	PlayerSpeed  = 100.0
	PlayerBounds = 1000.0

	AnimationFrameSeconds = 0.1

	EnemyLayer  = 1.0
	PlayerLayer = 2.0
	EnemyScale  = 1.0

	CameraSmoothing = 8.0 // per second

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BoundsColor     = color.RGBA{70, 100, 120, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	StageColor      = color.RGBA{70, 130, 180, 220}
	ExhaustedColor  = color.RGBA{220, 60, 60, 220}
	StrokeWidth     = 2.0
)
