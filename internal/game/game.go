package game

import (
	"math/rand"

	"github.com/yawpitch/spacedinvaders/internal/config"
	"github.com/yawpitch/spacedinvaders/internal/core"
	"github.com/yawpitch/spacedinvaders/internal/registry"
)

// The simulation runs on a fixed arena at a canonical tick rate; the
// renderer centers the arena in whatever buffer the platform provides.
const (
	arenaW    = 80
	arenaH    = 46
	framerate = 60
)

// ArenaWidth and ArenaHeight are the fixed playfield dimensions. The
// terminal must be at least this large to show a full frame.
const (
	ArenaWidth  = arenaW
	ArenaHeight = arenaH
)

// Fixed layout numbers from the arcade original.
const (
	playerStartX   = 8
	invadersStartX = 12
	scoreCap       = 9999
	maxLives       = 4
	maxCredits     = 99
)

// invaderStartRows gives the formation's starting row by screen. Later
// screens start lower and the ninth wraps back around.
var invaderStartRows = [9]int{8, 10, 14, 18, 18, 18, 20, 20, 20}

// Stage pacing in frames.
const (
	winHoldFrames        = 75 // pause before the next screen
	deathHoldFrames      = 51 // pause while the wreck burns
	gameOverLetterFrames = 3  // banner reveal cadence
)

// Stage names a phase of the play state machine.
type Stage uint8

const (
	StageRedraw Stage = iota
	StageSpawn
	StageRunning
	StageDeath
	StageWin
	StageGameOver
)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageRedraw:
		return "redraw"
	case StageSpawn:
		return "spawn"
	case StageRunning:
		return "running"
	case StageDeath:
		return "death"
	case StageWin:
		return "win"
	case StageGameOver:
		return "game_over"
	}
	return "unknown"
}

// tunables are the dials a config file may override.
type tunables struct {
	startLives       int
	demoLives        int
	extraLifeScore   int
	bulletCooldown   int
	respawnFrames    int // invulnerable spawn-in
	mysteryFirstWait int // seconds
	mysteryWait      int // seconds
}

func defaultTunables() tunables {
	return tunables{
		startLives:       3,
		demoLives:        2,
		extraLifeScore:   1500,
		bulletCooldown:   20,
		respawnFrames:    90,
		mysteryFirstWait: 35,
		mysteryWait:      25,
	}
}

// loadTunables merges the config file, if one resolves, over the
// defaults. A missing or broken file leaves the defaults untouched; the
// command layer already warned about it.
func loadTunables() tunables {
	t := defaultTunables()
	gc, err := config.LoadGame(configPath)
	if err != nil {
		return t
	}
	if gc.StartLives > 0 {
		t.startLives = gc.StartLives
	}
	if gc.DemoLives > 0 {
		t.demoLives = gc.DemoLives
	}
	if gc.ExtraLifeScore > 0 {
		t.extraLifeScore = gc.ExtraLifeScore
	}
	if gc.BulletCooldown > 0 {
		t.bulletCooldown = gc.BulletCooldown
	}
	if gc.RespawnFrames > 0 {
		t.respawnFrames = gc.RespawnFrames
	}
	if gc.MysteryFirstWait > 0 {
		t.mysteryFirstWait = gc.MysteryFirstWait
	}
	if gc.MysteryWait > 0 {
		t.mysteryWait = gc.MysteryWait
	}
	return t
}

// Package-level knobs the platform sets before a run.
var (
	configPath string
	seededHigh int
)

// SetConfigPath points the simulation at a tunables file.
func SetConfigPath(path string) { configPath = path }

// SetHighScore seeds the HUD's high score from the leaderboard.
func SetHighScore(high int) { seededHigh = high }

// Game is the Spaced Invaders simulation.
type Game struct {
	demo bool
	rng  *rand.Rand
	tun  tunables

	frame  int
	stage  Stage
	screen int

	score          int
	high           int
	lives          int
	credits        int
	extraLifeGiven bool

	respawnDelay int
	bulletDelay  int
	bulletCount  int

	// Units in play
	player    *Player
	bullet    *Bullet
	formation *Formation
	barriers  []*Barrier
	bombs     []*Bomb
	mystery   *Mystery
	lastKills []*Invader
	waveKills [][]*Invader

	mysteryFrame int
	mysteryOff   bool
	barrierY     int

	// Stage bookkeeping
	redrawRanks int // ranks still hidden by the redraw wipe
	stageFrames int // frames spent waiting in the current stage
	bannerShown int // letters of the game over banner revealed

	pilot *demoPilot

	paused   bool
	gameOver bool

	events []core.Event
}

// New creates a standard game.
func New() *Game { return &Game{} }

// NewDemo creates the self-playing attract run.
func NewDemo() *Game { return &Game{demo: true} }

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("demo", func() registry.Game {
		return NewDemo()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.demo {
		return "demo"
	}
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.demo {
		return "Spaced Invaders (Demo)"
	}
	return "Spaced Invaders"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tun = loadTunables()

	g.frame = 0
	g.stage = StageRedraw
	g.screen = 0
	g.score = 0
	g.high = core.Max(0, seededHigh)
	g.lives = g.tun.startLives
	if g.demo {
		// demo runs start on a harder screen with fewer cannons and a
		// high score nobody can beat
		g.screen = 2
		g.high = scoreCap
		g.lives = g.tun.demoLives
	}
	g.credits = 0
	g.extraLifeGiven = false

	g.respawnDelay = g.tun.respawnFrames
	g.bulletDelay = 0
	g.bulletCount = 0

	g.player = newPlayer(playerStartX, arenaH-4)
	g.bullet = nil
	g.formation = newFormation()
	g.barriers = nil
	g.bombs = nil
	g.mystery = nil
	g.lastKills = nil
	g.waveKills = nil

	g.mysteryFrame = g.tun.mysteryFirstWait * framerate
	g.mysteryOff = false
	g.barrierY = g.player.y - g.player.sprite.h - barrierSprite.h

	g.redrawRanks = formationRows - 1
	g.stageFrames = 0
	g.bannerShown = 0
	g.pilot = newDemoPilot()
	g.paused = false
	g.gameOver = false
	g.events = nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.high,
		Lives:     g.lives,
		Credits:   g.credits,
		Screen:    g.screen + 1,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Demo:      g.demo,
	}
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

func (g *Game) emit(e core.Event) { g.events = append(g.events, e) }

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  arenaW,
			ScreenH:  arenaH,
			TickRate: framerate,
		})
		return g.result()
	}
	if in.Has(core.ActionPause) && g.stage == StageRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	// credits banked by the platform's recognizer
	if in.Has(core.ActionCoin) && !g.demo {
		g.credits = core.Min(maxCredits, g.credits+1)
		g.emit(core.EventCoin)
	}

	// frame timers run in every stage
	if g.mystery == nil && !g.mysteryOff {
		g.mysteryFrame--
	}
	if g.respawnDelay > 0 {
		g.respawnDelay--
	}
	g.bulletDelay = core.Max(0, g.bulletDelay-1)

	// a won screen holds briefly once the shot clears, then levels up
	if g.stage == StageWin && g.bullet == nil {
		g.stageFrames++
		if g.stageFrames >= winHoldFrames {
			g.player.x = playerStartX
			g.setScreen(g.screen + 1)
		}
	}

	// a death holds while the wreck burns, then respawns or ends
	if g.stage == StageDeath && g.bullet == nil {
		g.stageFrames++
		if g.stageFrames >= deathHoldFrames {
			if g.lives > 0 {
				g.player.Resurrect(playerStartX)
				g.enterStage(StageSpawn)
			} else {
				g.enterStage(StageGameOver)
			}
		}
	}

	// game over types the banner on, then hands control back
	if g.stage == StageGameOver && g.bullet == nil {
		if g.mystery != nil {
			if !g.mystery.Dead() {
				g.emit(core.EventMysteryOff)
			}
			g.clearMystery()
		}
		g.stageFrames++
		total := len(bigLetters("GAME OVER"))
		g.bannerShown = core.Min(total, 1+g.stageFrames/gameOverLetterFrames)
		if g.bannerShown >= total {
			g.gameOver = true
		}
	}

	// a new screen rebuilds the defenses and reveals the ranks
	if g.stage == StageRedraw {
		if g.frame == 0 {
			g.placeBarriers()
			g.formation.Populate(invadersStartX, invaderStartRows[g.screen%len(invaderStartRows)])
			g.redrawRanks = formationRows - 1
		}
		g.bombs = g.bombs[:0]
		if g.redrawRanks == 0 {
			g.enterStage(StageSpawn)
		} else if g.frame%2 == 1 {
			g.redrawRanks--
		}
	}

	// the fresh cannon holds until the spawn delay runs out
	if g.stage == StageSpawn && g.respawnDelay == 0 {
		g.enterStage(StageRunning)
	}

	if g.stage == StageRunning {
		move := core.ActionNone
		fire := false
		if g.demo {
			if g.frame%2 == 1 {
				move, fire = g.pilot.act(g)
			}
		} else {
			switch {
			case in.Has(core.ActionLeft):
				move = core.ActionLeft
			case in.Has(core.ActionRight):
				move = core.ActionRight
			}
			fire = in.Has(core.ActionFire)
		}
		if fire && g.bullet == nil && g.canFire() {
			g.fire()
		}
		switch move {
		case core.ActionLeft:
			g.player.x = core.Max(1, g.player.x-1)
		case core.ActionRight:
			g.player.x = core.Min(arenaW-g.player.sprite.w-2, g.player.x+1)
		}
	}

	// invaders march even while the cannon spawns in
	if g.stage == StageSpawn || g.stage == StageRunning {
		if !g.mysteryOff && g.mystery == nil && g.mysteryFrame <= 0 && !g.superBombLive() {
			if g.formation.Remaining() <= 8 {
				g.mysteryOff = true
			} else {
				g.mystery = newMystery(arenaW, g.bulletCount)
				g.emit(core.EventMysteryOn)
			}
		}
		if g.mystery != nil && !g.mystery.Dead() {
			g.mystery.Move(g.frame, arenaW)
		}

		swept, invaded := g.formation.Advance(arenaW, g.player.y)
		if swept {
			g.emit(core.EventInvaderStep)
			g.maybeDrop()
		}
		if invaded {
			g.player.Kill(g.frame)
			g.lives = 0
			g.enterStage(StageDeath)
			g.emit(core.EventExplosion)
		}
	}

	// the shot carries on its merry way in every stage
	if g.bullet != nil && !g.bullet.Dead() {
		g.bullet.Move(g.frame)
	}

	// a spawning cannon is spared bombs already bracketing it
	if g.stage == StageSpawn {
		kept := g.bombs[:0]
		for _, b := range g.bombs {
			if b.x >= g.player.x+8 {
				kept = append(kept, b)
			}
		}
		g.bombs = kept
	}
	if g.stage != StageDeath && g.stage != StageGameOver {
		for _, b := range g.bombs {
			b.Move(g.frame, arenaH)
		}
		g.resolveCollisions()
	}

	// landscape erosion and reaping run in every stage
	g.erodeBarriers()
	g.reap()

	g.frame++
	return g.result()
}

// enterStage switches stages, arming the spawn delay when the next one
// is a spawn.
func (g *Game) enterStage(s Stage) {
	if s == StageSpawn {
		g.respawnDelay = g.tun.respawnFrames
	}
	g.stage = s
	g.stageFrames = 0
}

// setScreen moves play to a new screen, dropping all transient unit
// state while the score, lives and credits carry over.
func (g *Game) setScreen(n int) {
	g.screen = n
	g.frame = 0
	g.stage = StageRedraw
	g.stageFrames = 0
	g.redrawRanks = formationRows - 1
	g.bullet = nil
	g.bulletCount = 0
	g.bulletDelay = 0
	g.mystery = nil
	g.mysteryFrame = g.tun.mysteryWait * framerate
	g.mysteryOff = false
	g.bombs = nil
	g.lastKills = nil
	g.waveKills = nil
}

// placeBarriers rebuilds the four bunkers five rows above the cannon.
func (g *Game) placeBarriers() {
	g.barrierY = g.player.y - g.player.sprite.h - barrierSprite.h
	g.barriers = g.barriers[:0]
	x := barrierSprite.w * 3 / 2
	for i := 0; i < 4; i++ {
		g.barriers = append(g.barriers, newBarrier(x, g.barrierY))
		x += barrierSprite.w * 2
	}
}

func (g *Game) canFire() bool { return g.bulletDelay == 0 }

// fire launches a shot from the cannon's muzzle. A banked credit turns
// the shot into a hadouken.
func (g *Game) fire() {
	hadouken := g.credits > 0
	g.bullet = newBullet(g.player.x+g.player.sprite.w/2, g.player.y-1, hadouken)
	if hadouken {
		g.credits--
		g.emit(core.EventHadouken)
	} else {
		g.emit(core.EventShoot)
	}
}

// clearBullet frees the shot slot. Every cleared shot charges the
// cooldown and counts toward the mystery bonus index.
func (g *Game) clearBullet() {
	g.bullet = nil
	g.bulletDelay += g.tun.bulletCooldown
	g.bulletCount++
}

// clearMystery removes the ship and re-arms the launch countdown.
func (g *Game) clearMystery() {
	g.mystery = nil
	g.mysteryFrame = g.tun.mysteryWait * framerate
}

func (g *Game) superBombLive() bool {
	for _, b := range g.bombs {
		if b.kind == BombSuper && !b.Dead() {
			return true
		}
	}
	return false
}

// addScore tracks the running high and awards the one extra cannon the
// first time the score crosses the threshold.
func (g *Game) addScore(points int) {
	old := g.score
	g.score = core.Min(scoreCap, g.score+points)
	if g.demo {
		return
	}
	if !g.extraLifeGiven && old < g.tun.extraLifeScore && g.tun.extraLifeScore <= g.score {
		g.extraLifeGiven = true
		g.lives = core.Min(maxLives, g.lives+1)
	}
	g.high = core.Max(g.high, g.score)
}

func (g *Game) scoreKill(m *Invader) {
	g.lastKills = append(g.lastKills, m)
	g.addScore(m.Points())
	g.emit(core.EventKillShot)
}

// maybeDrop lets the formation bomb once per completed move, after it
// has marched a few and while the drop throttle allows.
func (g *Game) maybeDrop() {
	if g.formation.Moves() <= 3 || !g.formation.CanDrop(g.score, g.frame) {
		return
	}
	cols := g.formation.liveColumns()
	if len(cols) == 0 {
		return
	}

	kind := BombPlain
	roll := g.rng.Intn(10)
	switch {
	case roll == 0 && !g.superBombLive():
		kind = BombSuper
	case roll <= 4:
		kind = BombSeeker
	default:
		if g.formation.Remaining() < 9 {
			kind = BombSeeker
		}
	}

	var col int
	if kind == BombSeeker {
		col = g.formation.columnNearest(g.player.x + g.player.sprite.w/2)
	} else {
		col = cols[g.rng.Intn(len(cols))]
	}
	m := g.formation.bottomMember(col)
	if m == nil {
		return
	}
	bottom := m.y + m.sprite.h
	g.bombs = append(g.bombs, newBomb(kind, m.x+m.sprite.w/2, bottom, bottom))
	g.formation.markDrop(g.frame)
}

// resolveCollisions detects and settles this frame's unit-on-unit
// impacts. Every check reads positions from the same tick; nothing here
// moves a unit.
func (g *Game) resolveCollisions() {
	// cannon shot against the formation
	if g.bullet != nil && !g.bullet.Dead() && !g.bullet.impacted {
		if m := g.formation.FindCollision(g.bullet.Hitbox()); m != nil {
			if g.bullet.hadouken {
				g.waveKills = g.formation.WaveVictims(m.col, m.row)
				m.color = core.ColorMagenta
			}
			g.scoreKill(g.formation.Kill(m, g.frame))
			g.clearBullet()
		}
	}

	// an earlier hadouken's wave rolls on, one ring per frame
	if len(g.waveKills) > 0 {
		bucket := g.waveKills[0]
		g.waveKills = g.waveKills[1:]
		for _, m := range bucket {
			if g.formation.members[m.col][m.row] != m {
				continue
			}
			m.color = core.ColorMagenta
			g.scoreKill(g.formation.Kill(m, g.frame))
		}
	}

	if g.formation.Remaining() == 0 && g.stage != StageWin {
		g.enterStage(StageWin)
	}

	// bombs against the shot and the cannon; drops from at or below the
	// bunker line are too low to be a fair kill
	for _, b := range g.bombs {
		if b.droppedFrom >= g.barrierY+2 {
			continue
		}
		if g.bullet != nil && !g.bullet.Dead() && !g.bullet.impacted && !b.Dead() &&
			g.bullet.Hitbox().Intersects(b.Hitbox()) {
			b.Hit(g.frame)
			if b.kind == BombSuper {
				g.bullet.Kill(g.frame)
			}
		}
		if !b.Dead() && !g.player.Dead() &&
			(g.stage == StageRunning || g.stage == StageWin) &&
			b.Hitbox().Intersects(g.player.Bounds()) {
			g.player.Kill(g.frame)
			g.lives = core.Max(0, g.lives-1)
			g.enterStage(StageDeath)
			g.emit(core.EventExplosion)
		}
	}

	// the mystery ship leaves quietly at the wall, loudly to a shot
	if g.mystery != nil {
		switch {
		case g.mystery.reachedWall:
			g.clearMystery()
			g.emit(core.EventMysteryOff)
		case g.bullet != nil && !g.bullet.Dead() && !g.bullet.impacted && !g.mystery.Dead() &&
			g.bullet.Hitbox().Intersects(g.mystery.Bounds()):
			g.clearBullet()
			g.addScore(g.mystery.Kill(g.frame, g.bulletCount))
			g.emit(core.EventKillShot)
			g.emit(core.EventMysteryOff)
		}
	}
}

// erodeBarriers settles every unit-on-landscape impact. Runs in every
// stage; decay is monotonic for the life of a screen.
func (g *Game) erodeBarriers() {
	// the cannon's shot chews from below
	if g.bullet != nil && !g.bullet.Dead() && !g.bullet.impacted {
		hb := g.bullet.Hitbox()
		for _, bar := range g.barriers {
			if !hb.Intersects(bar.Bounds()) {
				continue
			}
			if bar.ErodeFromBelow(g.bullet.x + g.bullet.sprite.w/2) {
				g.bullet.impacted = true
				break
			}
		}
	}

	// the formation marching through a bunker razes its footprint
	for _, bar := range g.barriers {
		for _, column := range g.formation.members {
			for _, m := range column {
				if m == nil || m.y+m.sprite.h < bar.y {
					continue
				}
				if m.Bounds().Intersects(bar.Bounds()) {
					bar.ClearFootprint(m.Bounds())
				}
			}
		}
	}

	// bombs bite from above, the sponge deeper than the rest
	for _, b := range g.bombs {
		if b.Dead() || b.impacted {
			continue
		}
		hb := b.Hitbox()
		for _, bar := range g.barriers {
			if !hb.Intersects(bar.Bounds()) {
				continue
			}
			depth := 1
			if b.kind == BombSuper {
				depth = 2
			}
			if bar.ErodeFromAbove(b.x, depth) {
				b.impacted = true
				break
			}
		}
	}

	// devastated bunkers leave play
	kept := g.barriers[:0]
	for _, bar := range g.barriers {
		if !bar.Devastated() {
			kept = append(kept, bar)
		}
	}
	g.barriers = kept
}

// reap clears units whose death sprites have run their course.
func (g *Game) reap() {
	if g.bullet != nil && (g.bullet.impacted || g.bullet.Reapable(g.frame)) {
		g.clearBullet()
	}
	for len(g.lastKills) > 0 && g.lastKills[0].Reapable(g.frame) {
		g.lastKills = g.lastKills[1:]
	}
	kept := g.bombs[:0]
	for _, b := range g.bombs {
		if b.impacted || b.Reapable(g.frame) {
			continue
		}
		kept = append(kept, b)
	}
	g.bombs = kept
	if g.mystery != nil && g.mystery.Reapable(g.frame) {
		g.clearMystery()
	}
}
