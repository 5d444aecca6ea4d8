package game

import (
	"testing"

	"github.com/yawpitch/spacedinvaders/internal/core"
)

func TestNewSpriteRegularizes(t *testing.T) {
	s := NewSprite(`
		▄█▄
	`)
	if s.w != 3 || s.h != 1 {
		t.Errorf("Expected 3x1, got %dx%d", s.w, s.h)
	}
	if string(s.rows[0]) != "▄█▄" {
		t.Errorf("Glyphs mangled: %q", string(s.rows[0]))
	}
}

func TestNewSpritePadsRaggedRows(t *testing.T) {
	s := NewSprite("▞█▀█▚\n▔▘▔")
	if s.w != 5 || s.h != 2 {
		t.Errorf("Expected 5x2, got %dx%d", s.w, s.h)
	}
	if string(s.rows[1]) != "▔▘▔  " {
		t.Errorf("Short rows should pad with blanks, got %q", string(s.rows[1]))
	}
}

func TestNewSpriteKeepsInteriorBlanks(t *testing.T) {
	// the barrier's feet depend on mid-row gaps surviving
	if barrierSprite.w != 8 || barrierSprite.h != 5 {
		t.Fatalf("Barrier should be 8x5, got %dx%d", barrierSprite.w, barrierSprite.h)
	}
	feet := string(barrierSprite.rows[4])
	if feet != "▀▀    ▀▀" {
		t.Errorf("Barrier feet mangled: %q", feet)
	}
}

func TestUnitSpriteSizes(t *testing.T) {
	tests := []struct {
		name string
		s    Sprite
		w, h int
	}{
		{"player", playerSprite, 3, 1},
		{"wreck", playerWreck, 3, 1},
		{"bullet", bulletSprite, 1, 1},
		{"hadouken", hadoukenSprite, 3, 1},
		{"squid", squidSprite, 3, 2},
		{"crab", crabSprite, 3, 2},
		{"octopus", octopusSprite, 3, 2},
		{"mystery", mysterySprite, 5, 2},
		{"bomb", bombSprite, 1, 1},
		{"superbomb", superBombSprite, 1, 1},
		{"burst", bombBurst, 3, 1},
	}
	for _, tt := range tests {
		if tt.s.w != tt.w || tt.s.h != tt.h {
			t.Errorf("%s should be %dx%d, got %dx%d", tt.name, tt.w, tt.h, tt.s.w, tt.s.h)
		}
	}
}

func TestDrawSkipsBlankCells(t *testing.T) {
	dst := core.NewScreen(20, 10)
	dst.Fill('.')
	Draw(dst, 2, 2, NewSprite("██\n█"), core.ColorRed)

	if got := dst.Get(2, 3); got != '█' {
		t.Errorf("Solid cell should draw, got %q", got)
	}
	// the padded cell is transparent
	if got := dst.Get(3, 3); got != '.' {
		t.Errorf("Blank sprite cell should leave the background, got %q", got)
	}
}

func TestSetSpriteAnchorsLowerRight(t *testing.T) {
	u := &Unit{}
	u.x, u.y = 10, 10
	u.sprite = mysterySprite // 5x2
	u.SetSprite(bulletSprite) // 1x1
	if u.x != 14 || u.y != 11 {
		t.Errorf("Shrinking should pin the lower right corner, got (%d,%d)", u.x, u.y)
	}
}

func TestKillIsWriteOnce(t *testing.T) {
	u := &Unit{}
	u.sprite = bulletSprite
	u.Kill(100, bulletBurst)
	u.Kill(200, bulletBurst)
	if u.diedOn != 100 {
		t.Errorf("A second kill should not restamp, got diedOn=%d", u.diedOn)
	}
}

func TestBigTypeCoversBannerAlphabet(t *testing.T) {
	for _, word := range []string{"GAME OVER", "SPACED", "INVADERS", "SCORE", "PRESS SPACE"} {
		letters := bigLetters(word)
		if len(letters) != len(word) {
			t.Errorf("%q should map every rune, got %d of %d", word, len(letters), len(word))
		}
	}
}

func TestTypeOnRevealsLeftToRight(t *testing.T) {
	dst := core.NewScreen(80, 20)
	total, drawn := TypeOn(dst, 40, 4, "GAME OVER", 1)
	if total != 9 {
		t.Errorf("Expected 9 letters, got %d", total)
	}
	if drawn != 1 {
		t.Errorf("Expected 1 letter drawn, got %d", drawn)
	}

	// one letter leaves the right half of the banner untouched
	right := []rune(dst.Row(4))[60:]
	for _, r := range right {
		if r != ' ' {
			t.Errorf("Unrevealed banner area should stay blank, got %q", string(right))
			break
		}
	}

	dst.Clear()
	_, drawn = TypeOn(dst, 40, 4, "GAME OVER", 99)
	if drawn != 9 {
		t.Errorf("Overshooting should clamp to the full word, got %d", drawn)
	}
}
