// internal/system/placement.go
package system

import "github.com/jakecoffman/cp"

// RandomSource is the randomness placement draws from. utils.PRNGService
// satisfies it.
type RandomSource interface {
	Float64() float64
}

// PlacementConfig is where enemies may appear relative to the player.
type PlacementConfig struct {
	Distance float64 // |dx|+|dy| before clamping
	Bounds   cp.BB
}

// WorldBounds returns the rectangle [-halfWidth, halfWidth] x [-halfHeight, halfHeight].
func WorldBounds(halfWidth, halfHeight float64) cp.BB {
	return cp.BB{L: -halfWidth, B: -halfHeight, R: halfWidth, T: halfHeight}
}

// PlaceOffset draws an offset with |x|+|y| == distance. x is uniform in
// [0, distance) and both components share one random sign, so offsets fall
// on the up-right or down-left edge of the diamond.
func PlaceOffset(distance float64, rng RandomSource) cp.Vector {
	rx := rng.Float64() * distance
	ry := distance - rx
	if rng.Float64() < 0.5 {
		rx, ry = -rx, -ry
	}
	return cp.Vector{X: rx, Y: ry}
}

// Place returns a spawn position around player, clamped per axis to bounds.
func Place(player cp.Vector, distance float64, bounds cp.BB, rng RandomSource) cp.Vector {
	offset := PlaceOffset(distance, rng)
	return cp.Vector{
		X: cp.Clamp(player.X+offset.X, bounds.L, bounds.R),
		Y: cp.Clamp(player.Y+offset.Y, bounds.B, bounds.T),
	}
}

// Place applies the config to player.
func (c PlacementConfig) Place(player cp.Vector, rng RandomSource) cp.Vector {
	return Place(player, c.Distance, c.Bounds, rng)
}
