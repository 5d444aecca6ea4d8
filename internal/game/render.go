package game

import (
	"fmt"

	"github.com/yawpitch/spacedinvaders/internal/core"
)

// Render draws the arena centered in the destination buffer. Draw order
// matters: later units paint over earlier ones.
func (g *Game) Render(dst *core.Screen) {
	ox := core.Max(0, (dst.Width()-arenaW)/2)
	oy := core.Max(0, (dst.Height()-arenaH)/2)

	if g.mystery != nil {
		g.mystery.draw(dst, ox, oy)
	}
	for _, bar := range g.barriers {
		bar.draw(dst, ox, oy)
	}
	for _, b := range g.bombs {
		color := b.color
		if !b.Dead() && b.y > g.barrierY-1 {
			// a bomb below the bunker line reads green against the turf
			color = core.ColorGreen
		}
		Draw(dst, ox+b.x, oy+b.y, b.sprite, color)
	}
	if g.bullet != nil {
		g.bullet.draw(dst, ox, oy)
	}

	ranks := 0
	if g.stage == StageRedraw {
		ranks = g.redrawRanks
	}
	g.formation.draw(dst, ox, oy, ranks)
	for _, k := range g.lastKills {
		k.draw(dst, ox, oy)
	}

	if g.stage != StageRedraw && g.stage != StageSpawn {
		g.player.draw(dst, ox, oy)
	}

	if g.stage == StageGameOver {
		TypeOn(dst, ox+arenaW/2, oy+4, "GAME OVER", g.bannerShown)
	}
	if g.paused {
		dst.DrawTextColored(ox+(arenaW-6)/2, oy+arenaH/2, "PAUSED", core.ColorWhite)
	}

	g.drawHUD(dst, ox, oy)
}

// drawHUD paints the score bar, the turf line and the spares bar.
func (g *Game) drawHUD(dst *core.Screen, ox, oy int) {
	score := fmt.Sprintf("SCORE: %04d", g.score)
	dst.DrawTextColored(ox, oy+1, score, core.ColorBlue)
	high := fmt.Sprintf("HIGH SCORE: %04d", g.high)
	dst.DrawTextColored(ox+arenaW-1-len(high), oy+1, high, core.ColorBlue)

	for x := 0; x < arenaW-1; x++ {
		dst.SetColored(ox+x, oy+arenaH-2, '▀', core.ColorGreen)
	}

	// spare cannons on the left, credits on the right
	x := ox
	for i := 0; i < g.lives-1; i++ {
		Draw(dst, x, oy+arenaH-1, playerSprite, core.ColorYellow)
		x += playerSprite.w + 1
	}
	credits := fmt.Sprintf("CREDITS: %02d", g.credits)
	dst.DrawTextColored(ox+arenaW-1-len(credits), oy+arenaH-1, credits, core.ColorWhite)

	if g.demo && (g.frame/30)%2 == 0 {
		dst.DrawTextColored(ox+(arenaW-4)/2, oy+arenaH-1, "DEMO", core.ColorWhite)
	}
}
