package game

import "github.com/yawpitch/spacedinvaders/internal/core"

// WallBuffer is the margin, in cells, inside which a moving unit consults
// its wall rule instead of advancing freely.
const WallBuffer = 5

// reapFrames is how long a death sprite lingers before the unit is
// removed from play, roughly 0.4s at the canonical tick rate.
const reapFrames = 24

// Direction of travel on the arena grid.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Delta returns the cell offset of one step in the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return d
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Unknown"
}

// Unit is the drawable base embedded by every object in the arena. The
// position is the sprite's top-left corner in arena cells.
type Unit struct {
	x, y   int
	sprite Sprite
	color  core.Color
	speed  int
	dir    Direction

	dead   bool
	diedOn int
}

// Bounds returns the unit's current cell rectangle.
func (u *Unit) Bounds() core.Rect {
	return core.Rect{X: u.x, Y: u.y, W: u.sprite.w, H: u.sprite.h}
}

// SetSprite swaps the unit's artwork. When the new block's size differs
// the position shifts so the lower-right corner stays fixed, matching
// the arcade's in-place icon swaps.
func (u *Unit) SetSprite(s Sprite) {
	u.x += u.sprite.w - s.w
	u.y += u.sprite.h - s.h
	u.sprite = s
}

// Kill stamps the unit dead on the given frame and swaps in its death
// art. Kill stamps are write-once; later calls are ignored.
func (u *Unit) Kill(frame int, death Sprite) {
	if u.dead {
		return
	}
	u.dead = true
	u.diedOn = frame
	u.speed = 0
	u.SetSprite(death)
}

// Dead reports whether the unit has been killed.
func (u *Unit) Dead() bool { return u.dead }

// Reapable reports whether the unit's death sprite has lingered long
// enough for the unit to leave play.
func (u *Unit) Reapable(frame int) bool {
	return u.dead && frame-u.diedOn >= reapFrames
}

// draw paints the unit's sprite with the arena offset applied.
func (u *Unit) draw(dst *core.Screen, ox, oy int) {
	Draw(dst, ox+u.x, oy+u.y, u.sprite, u.color)
}
