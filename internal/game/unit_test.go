package game

import "testing"

func TestBulletFliesAndBurstsAtTop(t *testing.T) {
	b := newBullet(10, 40, false)
	if b.speed != 3 {
		t.Errorf("A plain shot flies at 3, got %d", b.speed)
	}

	frame := 0
	for !b.Dead() && frame < 30 {
		b.Move(frame)
		frame++
	}
	if !b.Dead() {
		t.Fatal("The shot should burst at the top wall")
	}
	if b.y != 2 {
		t.Errorf("The burst should park under the HUD at y=2, got %d", b.y)
	}
}

func TestHadoukenIsWideAndSlow(t *testing.T) {
	b := newBullet(10, 40, true)
	if b.speed != 2 {
		t.Errorf("A hadouken flies at 2, got %d", b.speed)
	}
	if b.x != 9 || b.sprite.w != 3 {
		t.Errorf("A hadouken spreads around the muzzle, got x=%d w=%d", b.x, b.sprite.w)
	}
}

func TestBulletHitboxCoversSweep(t *testing.T) {
	b := newBullet(10, 40, false)
	b.Move(0) // to 37
	hb := b.Hitbox()
	if hb.Y != 37 || hb.Bottom() != 41 {
		t.Errorf("Hitbox should cover the cells flown through, got y=%d..%d", hb.Y, hb.Bottom())
	}
}

func TestBombFallsAndBurstsOnFloor(t *testing.T) {
	b := newBomb(BombPlain, 10, 30, 10)
	frame := 0
	for !b.Dead() && frame < 40 {
		b.Move(frame, arenaH)
		frame++
	}
	if !b.Dead() {
		t.Fatal("The bomb should burst on the floor")
	}
	if b.y != arenaH-2 {
		t.Errorf("The burst should sit on the floor row, got y=%d", b.y)
	}
}

func TestSuperBombFallsFaster(t *testing.T) {
	plain := newBomb(BombPlain, 10, 30, 10)
	super := newBomb(BombSuper, 10, 30, 10)
	if super.speed <= plain.speed {
		t.Errorf("The super bomb should outpace a plain one: %d vs %d", super.speed, plain.speed)
	}
	if super.hitpoints != 1 {
		t.Errorf("The super bomb should carry one hitpoint, got %d", super.hitpoints)
	}
}

func TestMysterySpawnSideFollowsShotParity(t *testing.T) {
	east := newMystery(arenaW, 0)
	if east.dir != East || east.x != 1 {
		t.Errorf("An even count should enter from the west edge, got dir=%v x=%d", east.dir, east.x)
	}
	west := newMystery(arenaW, 1)
	if west.dir != West || west.x != arenaW-1-west.sprite.w {
		t.Errorf("An odd count should enter from the east edge, got dir=%v x=%d", west.dir, west.x)
	}
}

func TestMysteryCrossesOnEvenFrames(t *testing.T) {
	m := newMystery(arenaW, 0)
	x := m.x
	m.Move(1, arenaW)
	if m.x != x {
		t.Error("The ship should hold on odd frames")
	}
	m.Move(2, arenaW)
	if m.x != x+1 {
		t.Errorf("The ship should slide on even frames, got %d", m.x)
	}
}

func TestMysteryParksAtFarWall(t *testing.T) {
	m := newMystery(arenaW, 0)
	for f := 0; f < 400 && !m.reachedWall; f += 2 {
		m.Move(f, arenaW)
	}
	if !m.reachedWall {
		t.Fatal("The ship should reach the far wall")
	}
	if m.x != arenaW-1-m.sprite.w {
		t.Errorf("The ship should park flush, got x=%d", m.x)
	}

	m = newMystery(arenaW, 1)
	for f := 0; f < 400 && !m.reachedWall; f += 2 {
		m.Move(f, arenaW)
	}
	if m.x != 1 {
		t.Errorf("A westbound ship should park at x=1, got %d", m.x)
	}
}

func TestMysteryBonusTableWraps(t *testing.T) {
	a := newMystery(arenaW, 0)
	b := newMystery(arenaW, 0)
	first := a.Kill(10, 8)
	if first != 300 {
		t.Errorf("Count 8 pays the jackpot, got %d", first)
	}
	wrapped := b.Kill(10, 8+len(mysteryBonus))
	if wrapped != first {
		t.Errorf("The table should wrap, got %d vs %d", wrapped, first)
	}
	if !a.Dead() {
		t.Error("The kill should stamp the ship dead")
	}
}

func TestBarrierErodesFromBelow(t *testing.T) {
	b := newBarrier(12, 36)
	live := b.live

	// column 2 has a foot gap: the lowest solid cell is on row 3
	if !b.ErodeFromBelow(14) {
		t.Fatal("A solid column should erode")
	}
	if b.cells[3][2] != ' ' {
		t.Error("The lowest solid cell should clear")
	}
	if b.live != live-1 {
		t.Errorf("Live count should drop by one, got %d", b.live)
	}

	// carve the column clean through; the next shot passes
	for b.ErodeFromBelow(14) {
	}
	if b.ErodeFromBelow(14) {
		t.Error("A carved column should let the shot pass")
	}
}

func TestBarrierErodesFromAboveWithDepth(t *testing.T) {
	b := newBarrier(12, 36)

	if !b.ErodeFromAbove(13, 2) {
		t.Fatal("A solid column should erode")
	}
	if b.cells[0][1] != ' ' || b.cells[1][1] != ' ' {
		t.Error("Depth 2 should clear two stacked cells")
	}
	if b.cells[2][1] == ' ' {
		t.Error("Depth 2 should stop after two cells")
	}
}

func TestBarrierFootprintAndDevastation(t *testing.T) {
	b := newBarrier(12, 36)

	b.ClearFootprint(b.Bounds())
	if !b.Devastated() {
		t.Errorf("Clearing the whole footprint should devastate, %d cells left", b.live)
	}
}
