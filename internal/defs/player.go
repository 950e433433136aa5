// internal/defs/player.go
package defs

// PlayerTemplate holds the static data for the player character.
type PlayerTemplate struct {
	SpriteSheet string
	Grid        SheetGrid
	Idle        FrameRange
	Moving      FrameRange
	Speed       float64
	Health      float64
	Scale       float64
}

// KnightTemplate is the default player character.
var KnightTemplate = PlayerTemplate{
	SpriteSheet: "player/knight_all_anims_spritesheet.png",
	Grid:        SheetGrid{FrameW: 16, FrameH: 16, Columns: 6, Rows: 2},
	Idle:        FrameRange{First: 0, Last: 5},
	Moving:      FrameRange{First: 6, Last: 11},
	Speed:       100,
	Health:      100,
	Scale:       3,
}
