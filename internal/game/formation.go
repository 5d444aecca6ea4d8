package game

import "github.com/yawpitch/spacedinvaders/internal/core"

// Formation geometry. Eleven columns of five ranks, one blank row
// between ranks.
const (
	formationCols = 11
	formationRows = 5
	colPitch      = 6
	rowPitch      = 3
	marchStep     = 2 // cells per east/west member move
	descentStep   = 3 // cells per south member move
)

type invaderKind uint8

const (
	kindSquid invaderKind = iota
	kindCrab
	kindOctopus
)

// Score values per kind, also quoted on the attract screen's advance table.
const (
	PointsSquid   = 30
	PointsCrab    = 20
	PointsOctopus = 10
)

func (k invaderKind) points() int {
	switch k {
	case kindSquid:
		return PointsSquid
	case kindCrab:
		return PointsCrab
	}
	return PointsOctopus
}

func (k invaderKind) sprites() (walk, alt Sprite) {
	switch k {
	case kindSquid:
		return squidSprite, squidAlt
	case kindCrab:
		return crabSprite, crabAlt
	}
	return octopusSprite, octopusAlt
}

// Invader is a single formation member.
type Invader struct {
	Unit
	kind     invaderKind
	col, row int
	alt      bool
}

// step moves the member one formation step along heading and flips its
// walk frame.
func (v *Invader) step(heading Direction) {
	switch heading {
	case East:
		v.x += marchStep
	case West:
		v.x -= marchStep
	case South:
		v.y += descentStep
	}
	v.alt = !v.alt
	walk, alt := v.kind.sprites()
	if v.alt {
		v.sprite = alt
	} else {
		v.sprite = walk
	}
}

// Points returns the member's score value.
func (v *Invader) Points() int { return v.kind.points() }

// Formation is the gestalt of invaders marching in lockstep. Exactly one
// live member moves per frame, so a thinning formation sweeps faster and
// faster; a full sweep counts as one formation move.
type Formation struct {
	members   [][]*Invader // column-major, row 0 at the top
	heading   Direction
	resume    Direction // horizontal heading to take up after a descent
	cursor    int
	hitWall   bool
	moves     int
	lastDrop  int // frame of the most recent bomb drop
	remaining int
}

func newFormation() *Formation {
	return &Formation{heading: East, resume: West}
}

// Populate rebuilds the full grid with its top-left member at x, y.
// Rank zero is Squids, the next two Crabs, the bottom two Octopuses.
func (f *Formation) Populate(x, y int) {
	f.members = make([][]*Invader, formationCols)
	for col := range f.members {
		f.members[col] = make([]*Invader, formationRows)
		for row := 0; row < formationRows; row++ {
			kind := kindOctopus
			switch {
			case row == 0:
				kind = kindSquid
			case row <= 2:
				kind = kindCrab
			}
			v := &Invader{kind: kind, col: col, row: row}
			v.x = x + col*colPitch
			v.y = y + row*rowPitch
			v.sprite, _ = kind.sprites()
			v.color = core.ColorCyan
			f.members[col][row] = v
		}
	}
	f.heading = East
	f.resume = West
	f.cursor = 0
	f.hitWall = false
	f.moves = 0
	f.lastDrop = 0
	f.remaining = formationCols * formationRows
}

// Remaining returns the live member count.
func (f *Formation) Remaining() int { return f.remaining }

// Moves returns how many full sweeps the formation has completed.
func (f *Formation) Moves() int { return f.moves }

// slot maps a scan cursor onto a grid slot. Heading west the scan walks
// columns left to right; heading east, right to left, so members move
// into open space ahead of their neighbors. A descent walks each column
// bottom rank first for the same reason.
func (f *Formation) slot(i int) (col, row int) {
	col, row = i/formationRows, i%formationRows
	if f.heading == East {
		col = formationCols - 1 - col
	}
	if f.heading == South {
		row = formationRows - 1 - row
	}
	return col, row
}

func (f *Formation) memberAtCursor() *Invader {
	col, row := f.slot(f.cursor)
	return f.members[col][row]
}

// Advance moves exactly one live member. It reports whether a full sweep
// completed on this frame and whether a descending member reached the
// invasion row.
func (f *Formation) Advance(arenaW, invasionRow int) (swept, invaded bool) {
	if f.remaining == 0 {
		return false, false
	}
	total := formationCols * formationRows
	for f.cursor < total && f.memberAtCursor() == nil {
		f.cursor++
	}
	if f.cursor >= total {
		swept = true
		f.endSweep()
		f.cursor = 0
		for f.cursor < total && f.memberAtCursor() == nil {
			f.cursor++
		}
		if f.cursor >= total {
			return swept, false
		}
	}

	m := f.memberAtCursor()
	f.cursor++
	m.step(f.heading)

	switch f.heading {
	case East:
		if m.x+m.sprite.w >= arenaW-WallBuffer {
			f.hitWall = true
		}
	case West:
		if m.x <= WallBuffer {
			f.hitWall = true
		}
	case South:
		if m.y+m.sprite.h-1 >= invasionRow {
			invaded = true
		}
	}
	return swept, invaded
}

// endSweep closes out a formation move. A descent resumes the opposite
// horizontal heading; a sweep that brushed a side wall turns the whole
// formation south for the next one.
func (f *Formation) endSweep() {
	f.moves++
	if f.heading == South {
		f.heading = f.resume
	} else if f.hitWall {
		f.resume = f.heading.Opposite()
		f.heading = South
	}
	f.hitWall = false
}

// FindCollision probes the grid for a live member intersecting the given
// hitbox. Columns are probed outside in and rows bottom to top, where
// hits land most often.
func (f *Formation) FindCollision(hb core.Rect) *Invader {
	cols := make([]int, 0, formationCols)
	for lo, hi := 0, formationCols-1; lo <= hi; lo, hi = lo+1, hi-1 {
		cols = append(cols, lo)
		if hi != lo {
			cols = append(cols, hi)
		}
	}
	for _, c := range cols {
		for r := formationRows - 1; r >= 0; r-- {
			m := f.members[c][r]
			if m == nil {
				continue
			}
			if hb.Intersects(m.Bounds()) {
				return m
			}
		}
	}
	return nil
}

// Kill empties the member's slot and stamps its death art. The corpse is
// returned for the caller to hold until reap.
func (f *Formation) Kill(m *Invader, frame int) *Invader {
	f.members[m.col][m.row] = nil
	f.remaining--
	m.Unit.Kill(frame, invaderBurst)
	return m
}

// WaveVictims walks the four orthogonal rays out from a struck slot and
// buckets the members it finds by ray distance. Rays stop at the grid
// edge or the first empty slot, so gaps shield whoever hides behind
// them.
func (f *Formation) WaveVictims(col, row int) [][]*Invader {
	var buckets [][]*Invader
	for _, d := range [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
		for mag := 1; ; mag++ {
			c, r := col+d[0]*mag, row+d[1]*mag
			if c < 0 || c >= formationCols || r < 0 || r >= formationRows {
				break
			}
			m := f.members[c][r]
			if m == nil {
				break
			}
			for len(buckets) < mag {
				buckets = append(buckets, nil)
			}
			buckets[mag-1] = append(buckets[mag-1], m)
		}
	}
	return buckets
}

// Edges returns the x extents of the live formation, or ok false once
// it is extinct.
func (f *Formation) Edges() (left, right int, ok bool) {
	left, right = -1, -1
	for col := 0; col < formationCols; col++ {
		for _, m := range f.members[col] {
			if m == nil {
				continue
			}
			if left < 0 {
				left = m.x
			}
			right = m.x + m.sprite.w
		}
	}
	return left, right, left >= 0
}

// liveColumns returns the indices of columns with at least one member.
func (f *Formation) liveColumns() []int {
	var cols []int
	for col := 0; col < formationCols; col++ {
		for _, m := range f.members[col] {
			if m != nil {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// bottomMember returns the lowest live member of a column.
func (f *Formation) bottomMember(col int) *Invader {
	for row := formationRows - 1; row >= 0; row-- {
		if m := f.members[col][row]; m != nil {
			return m
		}
	}
	return nil
}

// columnNearest returns the live column whose bottom member sits closest
// to the arena column x.
func (f *Formation) columnNearest(x int) int {
	best, bestDist := -1, 0
	for _, col := range f.liveColumns() {
		m := f.bottomMember(col)
		dist := core.Abs(m.x + m.sprite.w/2 - x)
		if best < 0 || dist < bestDist {
			best, bestDist = col, dist
		}
	}
	return best
}

// CanDrop throttles bombing by the frames elapsed since the last drop.
// A richer score buys a denser rain.
func (f *Formation) CanDrop(score, frame int) bool {
	gap := frame - f.lastDrop
	switch {
	case score > 3000:
		return gap > 8
	case score > 2000:
		return gap > 16
	case score > 1000:
		return gap > 24
	case score > 200:
		return gap > 48
	}
	return gap > 96
}

func (f *Formation) markDrop(frame int) { f.lastDrop = frame }

// draw renders the live members. During a screen redraw ranksBelow
// reveals the ranks from the bottom up, echoing the arcade CRT wipe.
func (f *Formation) draw(dst *core.Screen, ox, oy, ranksBelow int) {
	for _, column := range f.members {
		for row, m := range column {
			if m == nil || row < ranksBelow {
				continue
			}
			m.draw(dst, ox, oy)
		}
	}
}
