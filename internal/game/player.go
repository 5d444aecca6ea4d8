package game

import "github.com/yawpitch/spacedinvaders/internal/core"

// Player is the cannon at the bottom of the arena.
type Player struct {
	Unit
}

func newPlayer(x, y int) *Player {
	p := &Player{}
	p.x, p.y = x, y
	p.sprite = playerSprite
	p.color = core.ColorYellow
	return p
}

// Kill swaps in the wreck. The wreck keeps its color and is held on
// screen by the death stage rather than the standard reap window.
func (p *Player) Kill(frame int) {
	p.Unit.Kill(frame, playerWreck)
}

// Resurrect returns the cannon to the start column, alive again.
func (p *Player) Resurrect(x int) {
	p.dead = false
	p.diedOn = 0
	p.sprite = playerSprite
	p.x = x
}

// Bullet is the cannon's shot. Only one may be live at a time; the
// hadouken variant rides the same slot, wider and slower, and seeds a
// wave kill when it strikes the formation.
type Bullet struct {
	Unit
	hadouken bool
	impacted bool // leaves play this frame, no burst
}

func newBullet(x, y int, hadouken bool) *Bullet {
	b := &Bullet{hadouken: hadouken}
	b.dir = North
	b.y = y
	if hadouken {
		b.sprite = hadoukenSprite
		b.color = core.ColorMagenta
		b.speed = 2
		b.x = x - 1
	} else {
		b.sprite = bulletSprite
		b.color = core.ColorCyan
		b.speed = 3
		b.x = x
	}
	return b
}

// Move advances the shot north. At the top wall the shot stops two rows
// under the HUD and bursts there.
func (b *Bullet) Move(frame int) {
	if b.dead {
		return
	}
	ny := b.y - b.speed
	if ny > WallBuffer {
		b.y = ny
		return
	}
	if ny < 2 {
		b.y = 2
		b.Kill(frame)
		return
	}
	b.y = ny
}

// Kill bursts the shot in place.
func (b *Bullet) Kill(frame int) {
	b.Unit.Kill(frame, bulletBurst)
	b.color = core.ColorRed
}

// Hitbox covers every cell the shot swept through this frame, so a fast
// shot cannot tunnel through a one-row target.
func (b *Bullet) Hitbox() core.Rect {
	if b.dead {
		return b.Bounds()
	}
	return b.Bounds().Swept(0, b.speed)
}
