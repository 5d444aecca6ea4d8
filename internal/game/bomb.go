package game

import "github.com/yawpitch/spacedinvaders/internal/core"

// BombKind distinguishes the formation's three drops.
type BombKind uint8

const (
	// BombPlain falls from a random live column.
	BombPlain BombKind = iota
	// BombSeeker falls from the live column nearest the cannon.
	BombSeeker
	// BombSuper falls fast, soaks one bullet hit and bites deeper into
	// barriers. At most one may be live at a time.
	BombSuper
)

// Bomb is a formation drop, falling south until it meets the player, a
// barrier or the floor.
type Bomb struct {
	Unit
	kind        BombKind
	hitpoints   int
	droppedFrom int // bottom row of the member that dropped it
	alt         bool
	impacted    bool // leaves play this frame, no burst
}

func newBomb(kind BombKind, x, y, droppedFrom int) *Bomb {
	b := &Bomb{kind: kind, droppedFrom: droppedFrom}
	b.dir = South
	b.x, b.y = x, y
	if kind == BombSuper {
		b.sprite = superBombSprite
		b.color = core.ColorMagenta
		b.speed = 2
		b.hitpoints = 1
	} else {
		b.sprite = bombSprite
		b.color = core.ColorCyan
		b.speed = 1
	}
	return b
}

// Move advances the bomb south, bursting once it reaches the floor row.
// The walk frames swap every fourth frame; a damaged SuperBomb flickers
// every frame.
func (b *Bomb) Move(frame, arenaH int) {
	if b.dead {
		return
	}
	if frame%4 == 0 || (b.kind == BombSuper && b.hitpoints == 0) {
		b.flip()
	}
	ny := b.y + b.speed
	if ny+b.sprite.h < arenaH-WallBuffer {
		b.y = ny
		return
	}
	if ny > arenaH-2 {
		b.y = arenaH - 2
		b.Kill(frame)
		return
	}
	b.y = ny
}

func (b *Bomb) flip() {
	b.alt = !b.alt
	switch {
	case b.kind == BombSuper && b.alt:
		b.sprite = superBombAlt
	case b.kind == BombSuper:
		b.sprite = superBombSprite
	case b.alt:
		b.sprite = bombAlt
	default:
		b.sprite = bombSprite
	}
}

// Hit applies a bullet strike. A SuperBomb soaks the first strike and
// dies on the second; other bombs burst at once.
func (b *Bomb) Hit(frame int) {
	if b.kind == BombSuper && b.hitpoints > 0 {
		b.hitpoints--
		return
	}
	b.Kill(frame)
}

// Kill bursts the bomb in place.
func (b *Bomb) Kill(frame int) {
	b.Unit.Kill(frame, bombBurst)
	b.color = core.ColorGreen
}

// Hitbox covers every cell the bomb swept through this frame.
func (b *Bomb) Hitbox() core.Rect {
	if b.dead {
		return b.Bounds()
	}
	return b.Bounds().Swept(0, -b.speed)
}
