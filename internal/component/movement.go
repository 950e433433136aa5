// internal/component/movement.go
package component

// Position is a world-space coordinate. Y grows upward, the renderer flips it.
type Position struct {
	X, Y float64
}

// Direction is the facing of a movable entity.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
	UpRight
	UpLeft
	DownRight
	DownLeft
)

var directionNames = [...]string{
	Right:     "right",
	Left:      "left",
	Up:        "up",
	Down:      "down",
	UpRight:   "up-right",
	UpLeft:    "up-left",
	DownRight: "down-right",
	DownLeft:  "down-left",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Movable holds the movement state of an entity.
type Movable struct {
	Speed     float64 // world units per second
	Direction Direction
	IsMoving  bool
}

// InputState is the per-frame movement intent produced by the input layer.
type InputState struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is held.
func (i InputState) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// Direction resolves held keys to a facing. Up beats Down; on a diagonal
// Right beats Left, alone Left beats Right. ok is false when no key is held.
func (i InputState) Direction() (dir Direction, ok bool) {
	switch {
	case i.Up && i.Right:
		return UpRight, true
	case i.Up && i.Left:
		return UpLeft, true
	case i.Up:
		return Up, true
	case i.Down && i.Right:
		return DownRight, true
	case i.Down && i.Left:
		return DownLeft, true
	case i.Down:
		return Down, true
	case i.Left:
		return Left, true
	case i.Right:
		return Right, true
	}
	return Right, false
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	return d == UpRight || d == UpLeft || d == DownRight || d == DownLeft
}

// Unit returns the axis signs of d, each -1, 0 or 1. Y grows upward.
func (d Direction) Unit() (x, y float64) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case UpRight:
		return 1, 1
	case UpLeft:
		return -1, 1
	case DownRight:
		return 1, -1
	case DownLeft:
		return -1, -1
	}
	return 0, 0
}
