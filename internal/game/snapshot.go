package game

// Snapshot captures the observable simulation state. Two games stepped
// with the same seed and inputs produce identical snapshots.
type Snapshot struct {
	Frame   int
	Stage   string
	Screen  int
	Score   int
	High    int
	Lives   int
	Credits int

	BulletCount  int
	PlayerX      int
	PlayerDead   bool
	BulletAt     [2]int // {-1, -1} when no shot is live
	Remaining    int
	Moves        int
	Heading      string
	BarrierCells int
	Bombs        [][3]int // x, y, kind
	MysteryAt    int      // -1 when no ship is aloft
	GameOver     bool
}

// Snapshot returns a copy of the current state for comparison.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:       g.frame,
		Stage:       g.stage.String(),
		Screen:      g.screen,
		Score:       g.score,
		High:        g.high,
		Lives:       g.lives,
		Credits:     g.credits,
		BulletCount: g.bulletCount,
		PlayerX:     g.player.x,
		PlayerDead:  g.player.Dead(),
		BulletAt:    [2]int{-1, -1},
		Remaining:   g.formation.Remaining(),
		Moves:       g.formation.Moves(),
		Heading:     g.formation.heading.String(),
		MysteryAt:   -1,
		GameOver:    g.gameOver,
	}
	if g.bullet != nil {
		s.BulletAt = [2]int{g.bullet.x, g.bullet.y}
	}
	for _, bar := range g.barriers {
		s.BarrierCells += bar.live
	}
	for _, b := range g.bombs {
		s.Bombs = append(s.Bombs, [3]int{b.x, b.y, int(b.kind)})
	}
	if g.mystery != nil {
		s.MysteryAt = g.mystery.x
	}
	return s
}
