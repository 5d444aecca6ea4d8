package game

import "github.com/yawpitch/spacedinvaders/internal/core"

// Barrier is one of the four bunkers above the cannon. Damage clears
// cells one at a time and never heals; a fresh set is built for each
// screen.
type Barrier struct {
	x, y  int
	cells [][]rune // ' ' marks an eroded or empty cell
	live  int
}

func newBarrier(x, y int) *Barrier {
	b := &Barrier{x: x, y: y}
	for _, row := range barrierSprite.rows {
		cp := make([]rune, len(row))
		copy(cp, row)
		b.cells = append(b.cells, cp)
		for _, ch := range cp {
			if ch != ' ' {
				b.live++
			}
		}
	}
	return b
}

// Bounds returns the barrier's cell rectangle, holes included.
func (b *Barrier) Bounds() core.Rect {
	return core.Rect{X: b.x, Y: b.y, W: barrierSprite.w, H: barrierSprite.h}
}

func (b *Barrier) clear(col, row int) bool {
	if row < 0 || row >= len(b.cells) || col < 0 || col >= len(b.cells[row]) {
		return false
	}
	if b.cells[row][col] == ' ' {
		return false
	}
	b.cells[row][col] = ' '
	b.live--
	return true
}

// ErodeFromBelow clears the lowest solid cell in the arena column x, for
// a shot arriving from underneath. Reports whether anything was cleared;
// a fully carved column lets the shot pass.
func (b *Barrier) ErodeFromBelow(x int) bool {
	col := x - b.x
	if col < 0 || col >= barrierSprite.w {
		return false
	}
	for row := len(b.cells) - 1; row >= 0; row-- {
		if b.clear(col, row) {
			return true
		}
	}
	return false
}

// ErodeFromAbove clears the highest solid cell in the arena column x and
// up to depth-1 cells directly beneath it, for a bomb falling onto the
// bunker. Reports whether anything was cleared.
func (b *Barrier) ErodeFromAbove(x, depth int) bool {
	col := x - b.x
	if col < 0 || col >= barrierSprite.w {
		return false
	}
	for row := 0; row < len(b.cells); row++ {
		if b.cells[row][col] == ' ' {
			continue
		}
		for d := 0; d < depth; d++ {
			b.clear(col, row+d)
		}
		return true
	}
	return false
}

// ClearFootprint clears every cell the given rectangle overlaps, used
// when the formation marches through the bunker.
func (b *Barrier) ClearFootprint(r core.Rect) {
	for row := range b.cells {
		for col := range b.cells[row] {
			if r.Contains(b.x+col, b.y+row) {
				b.clear(col, row)
			}
		}
	}
}

// Devastated reports whether no solid cells remain.
func (b *Barrier) Devastated() bool { return b.live == 0 }

func (b *Barrier) draw(dst *core.Screen, ox, oy int) {
	for row := range b.cells {
		for col, ch := range b.cells[row] {
			if ch == ' ' {
				continue
			}
			dst.SetColored(ox+b.x+col, oy+b.y+row, ch, core.ColorGreen)
		}
	}
}
