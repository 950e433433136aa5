// internal/component/render.go
package component

// ImageHandle refers to an image owned by the asset library. Zero means none.
type ImageHandle uint32

// Sprite is a frame of a sprite sheet laid out as a grid.
type Sprite struct {
	Sheet     ImageHandle
	SheetPath string
	FrameW    int
	FrameH    int
	Columns   int
	Rows      int
	Index     int // current frame, row-major
	FlipX     bool
	Layer     float64 // higher draws on top
	Scale     float64
}
