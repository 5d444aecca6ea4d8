package game

import "github.com/yawpitch/spacedinvaders/internal/core"

// demoCycle is the scripted movement pattern the self-playing demo draws
// commands from, lifted from the arcade ROM's input table.
var demoCycle = []core.Action{
	core.ActionRight,
	core.ActionRight,
	core.ActionNone,
	core.ActionNone,
	core.ActionRight,
	core.ActionNone,
	core.ActionLeft,
	core.ActionRight,
	core.ActionNone,
	core.ActionLeft,
	core.ActionRight,
	core.ActionNone,
}

// demoPilot steers the attract-mode cannon. It lines the beam up under a
// target window, fires when the shot slot is free, and otherwise cycles
// the scripted movement commands until one points the right way.
type demoPilot struct {
	idx int
	cmd core.Action
}

func newDemoPilot() *demoPilot {
	return &demoPilot{cmd: demoCycle[0], idx: 1}
}

func (p *demoPilot) next() core.Action {
	p.cmd = demoCycle[p.idx%len(demoCycle)]
	p.idx++
	return p.cmd
}

// act decides this frame's movement command and whether to pull the
// trigger. The mystery ship is pursued over the formation; shots under a
// barrier are mostly held back.
func (p *demoPilot) act(g *Game) (move core.Action, fire bool) {
	beam := g.player.x + 1

	var lo, hi int
	if g.mystery != nil && !g.mystery.Dead() {
		lo = g.mystery.x - 3
		hi = g.mystery.x + g.mystery.sprite.w + 3
	} else {
		left, right, ok := g.formation.Edges()
		if !ok {
			return core.ActionNone, false
		}
		lo = core.Max(1, left-3)
		hi = core.Min(arenaW-2, right+3)
	}

	if lo <= beam && beam <= hi {
		underBarrier := false
		for _, bar := range g.barriers {
			if bar.x <= beam && beam <= bar.x+barrierSprite.w {
				underBarrier = true
				break
			}
		}
		if g.bullet == nil && g.canFire() && (!underBarrier || g.rng.Intn(9) == 0) {
			fire = true
			p.next()
		}
	} else if (lo+hi)/2 < beam {
		for p.cmd != core.ActionLeft {
			p.next()
		}
	} else {
		for p.cmd != core.ActionRight {
			p.next()
		}
	}

	// keep the cannon from lurking at the arena edges
	switch p.cmd {
	case core.ActionLeft, core.ActionNone:
		if g.player.x-1 <= 1 {
			p.next()
		}
	case core.ActionRight:
		if g.player.x+g.player.sprite.w+1 >= arenaW-2 {
			p.next()
		}
	}

	// a firing frame carries no movement
	if fire {
		return core.ActionNone, true
	}
	return p.cmd, false
}
