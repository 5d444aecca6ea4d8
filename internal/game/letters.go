package game

import "github.com/yawpitch/spacedinvaders/internal/core"

// Big type letters used on the splash and game over banners, three rows
// tall. Only the letters those banners need exist; anything else renders
// as a blank block.
var (
	bigA = NewSprite(`
		 ▄▄▄
		▐▃▃▃▌
		▐   ▌
	`)
	bigC = NewSprite(`
		 ▄▄▄▖
		▐
		▝▄▄▄▖
	`)
	bigD = NewSprite(`
		▗▄▄▄
		▐   ▌
		▐▄▄▄▘
	`)
	bigE = NewSprite(`
		▗▄▄▄▖
		▐▃▃▃
		▐▄▄▄▖
	`)
	bigG = NewSprite(`
		 ▄▄▄▖
		▐  ▄▖
		▝▄▄▟▌
	`)
	bigI = NewSprite(`
		▗▄▄▄▖
		  █
		▗▄█▄▖
	`)
	bigM = NewSprite(`
		▗   ▖
		▐▙ ▟▌
		▐ ▀ ▌
	`)
	bigN = NewSprite(`
		▗   ▖
		▐▙▂ ▌
		▐ ▔▜▌
	`)
	bigO = NewSprite(`
		 ▄▄▄
		▐   ▌
		▝▄▄▄▘
	`)
	bigP = NewSprite(`
		▗▄▄▄
		▐▃▃▃▘
		▐
	`)
	bigR = NewSprite(`
		▗▄▄▄
		▐▃▃▃▘
		▐   ▌
	`)
	bigS = NewSprite(`
		 ▄▄▄
		▐▃▃▃
		▗▃▃▃▘
	`)
	bigV = NewSprite(`
		▗   ▖
		▐   ▌
		 ▜▄▛
	`)

	bigSpace = blankSprite(2, 3)
)

var bigType = map[rune]Sprite{
	'A': bigA,
	'C': bigC,
	'D': bigD,
	'E': bigE,
	'G': bigG,
	'I': bigI,
	'M': bigM,
	'N': bigN,
	'O': bigO,
	'P': bigP,
	'R': bigR,
	'S': bigS,
	'V': bigV,
	' ': bigSpace,
}

// bigLetters maps a word onto its big type blocks.
func bigLetters(word string) []Sprite {
	letters := make([]Sprite, 0, len(word))
	for _, r := range word {
		s, ok := bigType[r]
		if !ok {
			s = bigSpace
		}
		letters = append(letters, s)
	}
	return letters
}

// BigTypeWidth returns the total width of word rendered in big type.
func BigTypeWidth(word string) int {
	total := 0
	for _, s := range bigLetters(word) {
		total += s.Width()
	}
	return total
}

// TypeOn draws the first shown letters of word in big type, centered on
// centerX. The top two rows render red and the base row white, matching
// the arcade banner. It returns the number of letters in the word and
// the number actually drawn, so callers can tell when the reveal is done.
func TypeOn(dst *core.Screen, centerX, y int, word string, shown int) (total, drawn int) {
	letters := bigLetters(word)
	total = len(letters)

	width := 0
	for _, s := range letters {
		width += s.Width()
	}
	x := centerX - (width+1)/2

	for _, s := range letters {
		if drawn >= shown {
			break
		}
		for row := 0; row < s.Height(); row++ {
			color := core.ColorRed
			if row >= 2 {
				color = core.ColorWhite
			}
			for col, ch := range s.Line(row) {
				if ch == ' ' {
					continue
				}
				dst.SetColored(x+col, y+row, ch, color)
			}
		}
		x += s.Width()
		drawn++
	}
	return total, drawn
}
