// internal/component/animation.go
package component

import "go-survivors/internal/utils"

// AnimationIndices is an inclusive range of sprite sheet frames.
type AnimationIndices struct {
	First, Last int
}

// Contains reports whether frame lies inside the range.
func (a AnimationIndices) Contains(frame int) bool {
	return frame >= a.First && frame <= a.Last
}

// SpriteSheetAnimatable selects a frame range by movement state.
type SpriteSheetAnimatable struct {
	Idle   AnimationIndices
	Moving AnimationIndices
}

// For returns the range to play for the given movement state.
func (s SpriteSheetAnimatable) For(moving bool) AnimationIndices {
	if moving {
		return s.Moving
	}
	return s.Idle
}

// AnimationTimer paces frame advance.
type AnimationTimer struct {
	utils.Timer
}
