// internal/defs/types.go
package defs

// FrameRange is an inclusive range of sprite sheet frame indices.
type FrameRange struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// SheetGrid describes how a sprite sheet is cut into frames.
type SheetGrid struct {
	FrameW  int `yaml:"frame_w"`
	FrameH  int `yaml:"frame_h"`
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Frames returns the number of frames in the grid.
func (g SheetGrid) Frames() int {
	return g.Columns * g.Rows
}

func (g SheetGrid) holds(r FrameRange) bool {
	return r.First >= 0 && r.First <= r.Last && r.Last < g.Frames()
}
