package game

import (
	"strconv"

	"github.com/yawpitch/spacedinvaders/internal/core"
)

// Mystery bonus values, indexed by the total shot count modulo the table
// length. The fixed table reproduces the arcade's exploitable pattern.
var mysteryBonus = [15]int{100, 50, 50, 100, 150, 100, 100, 50, 300, 100, 100, 100, 50, 150, 100}

// Mystery is the bonus ship crossing the top of the arena. It slides one
// cell every other frame and leaves silently if it reaches the far wall.
type Mystery struct {
	Unit
	reachedWall bool
	bonus       int
}

// newMystery launches a ship just below the HUD. An even shot count
// enters from the left heading east, an odd one from the right heading
// west.
func newMystery(arenaW, bulletCount int) *Mystery {
	m := &Mystery{}
	m.sprite = mysterySprite
	m.color = core.ColorRed
	m.speed = 1
	m.y = 3
	if bulletCount%2 == 0 {
		m.dir = East
		m.x = 1
	} else {
		m.dir = West
		m.x = arenaW - 1 - m.sprite.w
	}
	return m
}

// Move slides the ship along on even frames. At the far wall it parks
// flush and flags itself for a silent exit.
func (m *Mystery) Move(frame, arenaW int) {
	if m.dead || frame%2 != 0 {
		return
	}
	if m.dir == East {
		nx := m.x + m.speed
		if nx+m.sprite.w >= arenaW-1 {
			m.x = arenaW - 1 - m.sprite.w
			m.reachedWall = true
			m.speed = 0
			return
		}
		m.x = nx
		return
	}
	nx := m.x - m.speed
	if nx <= 1 {
		m.x = 1
		m.reachedWall = true
		m.speed = 0
		return
	}
	m.x = nx
}

// Kill awards the ship's bonus and swaps the death art for the bonus
// digits themselves.
func (m *Mystery) Kill(frame, bulletCount int) int {
	if m.dead {
		return 0
	}
	m.bonus = mysteryBonus[bulletCount%len(mysteryBonus)]
	m.Unit.Kill(frame, NewSprite(strconv.Itoa(m.bonus)))
	m.color = core.ColorGreen
	return m.bonus
}
