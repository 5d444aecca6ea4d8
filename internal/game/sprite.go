// Package game implements the Spaced Invaders simulation: the player's
// cannon, the invader formation, projectiles, erodable barriers, the
// mystery ship and the play state machine that sequences them. The logic
// is pure and frame-stepped; the platform drives it through the registry
// interface and decides how to present the StepResult events it emits.
package game

import (
	"strings"

	"github.com/yawpitch/spacedinvaders/internal/core"
)

// Sprite is a rectangular block of runes drawn as a single visual unit.
// Blank cells inside the block are transparent.
type Sprite struct {
	rows [][]rune
	w, h int
}

// NewSprite parses a multiline literal into a Sprite. Blank lines are
// dropped, common indentation is stripped and every row is padded to the
// widest row so the block stays rectangular.
func NewSprite(block string) Sprite {
	var lines [][]rune
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}

	indent := -1
	for _, row := range lines {
		lead := 0
		for lead < len(row) && (row[lead] == ' ' || row[lead] == '\t') {
			lead++
		}
		if indent < 0 || lead < indent {
			indent = lead
		}
	}

	s := Sprite{}
	for _, row := range lines {
		row = row[indent:]
		if len(row) > s.w {
			s.w = len(row)
		}
		s.rows = append(s.rows, row)
	}
	for i, row := range s.rows {
		for len(row) < s.w {
			row = append(row, ' ')
		}
		s.rows[i] = row
	}
	s.h = len(s.rows)
	return s
}

// blankSprite returns an all-space block, used as a spacer in big type.
func blankSprite(w, h int) Sprite {
	s := Sprite{w: w, h: h}
	for i := 0; i < h; i++ {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		s.rows = append(s.rows, row)
	}
	return s
}

// Width returns the sprite's width in cells.
func (s Sprite) Width() int { return s.w }

// Height returns the sprite's height in rows.
func (s Sprite) Height() int { return s.h }

// Line returns row y of the sprite.
func (s Sprite) Line(y int) []rune { return s.rows[y] }

// At returns the rune at column x of row y.
func (s Sprite) At(x, y int) rune { return s.rows[y][x] }

// String joins the sprite's rows with newlines.
func (s Sprite) String() string {
	var b strings.Builder
	for i, row := range s.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// Draw paints the sprite at x, y. Blank cells leave the buffer untouched.
func Draw(dst *core.Screen, x, y int, s Sprite, color core.Color) {
	for r, row := range s.rows {
		for c, ch := range row {
			if ch == ' ' {
				continue
			}
			dst.SetColored(x+c, y+r, ch, color)
		}
	}
}

// Unit artwork, unchanged from the arcade original.
var (
	playerSprite = NewSprite(`
		▄█▄
	`)
	playerWreck = NewSprite(`
		▘▙▁
	`)

	bulletSprite = NewSprite(`
		❚
	`)
	bulletBurst = NewSprite(`
		✺
	`)
	hadoukenSprite = NewSprite(`
		(≋)
	`)

	squidSprite = NewSprite(`
		▗▆▖
		▚╿▞
	`)
	squidAlt = NewSprite(`
		▗▆▖
		▞╽▚
	`)
	crabSprite = NewSprite(`
		▙▀▟
		▝▔▘
	`)
	crabAlt = NewSprite(`
		▙▀▟
		▘▔▝
	`)
	octopusSprite = NewSprite(`
		▟▆▙
		▘▔▝
	`)
	octopusAlt = NewSprite(`
		▟▆▙
		▝▔▘
	`)
	invaderBurst = NewSprite(`
		⟫╳⟪
	`)

	mysterySprite = NewSprite(`
		▞█▀█▚
		▔▘▔▝▔
	`)

	bombSprite = NewSprite(`
		⧘
	`)
	bombAlt = NewSprite(`
		⧙
	`)
	superBombSprite = NewSprite(`
		⧚
	`)
	superBombAlt = NewSprite(`
		⧛
	`)
	bombBurst = NewSprite(`
		✸✺✸
	`)

	barrierSprite = NewSprite(`
		▟██████▙
		████████
		████████
		████████
		▀▀    ▀▀
	`)
)

// Icons reused by the attract screens.
var (
	IconPlayer  = playerSprite
	IconSquid   = squidSprite
	IconCrab    = crabSprite
	IconOctopus = octopusSprite
	IconMystery = mysterySprite
)
