package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yawpitch/spacedinvaders/internal/core"
	"github.com/yawpitch/spacedinvaders/internal/storage"
)

// EntryModel collects three initials over the final game screen after a
// ranking score. Arrows steer the selector, letters type directly, enter
// commits the score to the board.
type EntryModel struct {
	bg       *core.Screen
	store    *storage.Store
	score    int
	isTop    bool
	chars    [3]rune
	cursor   int
	saved    bool
	done     bool
	quitting bool
}

// NewEntryModel creates an entry model drawn over the given backdrop.
// isTop selects the header for a new top score over a mere board placing.
func NewEntryModel(bg *core.Screen, store *storage.Store, score int, isTop bool) EntryModel {
	return EntryModel{
		bg:    bg,
		store: store,
		score: score,
		isTop: isTop,
		chars: [3]rune{'A', 'A', 'A'},
	}
}

// Init implements tea.Model. The popup only moves on input.
func (m EntryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the popup.
func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.bg.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. The letter keys type initials here,
// so only ctrl+c quits and only esc abandons.
func (m EntryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.done = true
		return m, nil

	case "enter":
		if m.store != nil {
			//nolint:errcheck // best effort, the board just keeps its old names
			m.store.Insert(string(m.chars[:]), m.score)
		}
		m.saved = true
		m.done = true
		return m, nil

	case "left":
		if m.cursor > 0 {
			m.cursor--
		}

	case "right":
		if m.cursor < len(m.chars)-1 {
			m.cursor++
		}

	case "up":
		c := m.chars[m.cursor]
		m.chars[m.cursor] = 'A' + (c-'A'+25)%26

	case "down":
		c := m.chars[m.cursor]
		m.chars[m.cursor] = 'A' + (c-'A'+1)%26

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			r := msg.Runes[0]
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			if r >= 'A' && r <= 'Z' {
				m.chars[m.cursor] = r
				if m.cursor < len(m.chars)-1 {
					m.cursor++
				}
			}
		}
	}

	return m, nil
}

// View draws the popup over the backdrop.
func (m EntryModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.bg
	cx := s.Width() / 2
	cy := s.Height() / 2

	w := cx + 2
	px := cx - cx/2 - 1
	py := cy - 5

	// blank the popup's footprint, then the rounded frame
	s.DrawRect(core.Rect{X: px, Y: py, W: w, H: 7}, ' ')
	right := px + w - 1
	s.SetColored(px, py, '╭', core.ColorGray)
	s.SetColored(right, py, '╮', core.ColorGray)
	for x := px + 1; x < right; x++ {
		s.SetColored(x, py, '─', core.ColorGray)
		s.SetColored(x, py+6, '─', core.ColorGray)
	}
	for y := py + 1; y < py+6; y++ {
		s.SetColored(px, y, '│', core.ColorGray)
		s.SetColored(right, y, '│', core.ColorGray)
	}
	s.SetColored(px, py+6, '╰', core.ColorGray)
	s.SetColored(right, py+6, '╯', core.ColorGray)

	start, end := "CONGRATULATIONS ON A NEW ", "HIGH SCORE"
	if !m.isTop {
		start, end = "YOU'VE MADE IT ONTO THE ", "LEADER BOARD"
	}
	y := py + 2
	x := px + w/2 - (len(start)+len(end)+1)/2
	s.DrawTextColored(x, y, start, core.ColorGray)
	s.DrawTextColored(x+len(start), y, end, core.ColorWhite)

	const label = "PLEASE ENTER YOUR INITIALS: "
	y++
	x = px + w/2 - (len(label)+len(m.chars)+1)/2
	s.DrawTextColored(x, y, label, core.ColorGray)
	for i, c := range m.chars {
		color := core.ColorWhite
		if i == m.cursor {
			color = core.ColorInverse
		}
		s.SetColored(x+len(label)+i, y, c, color)
	}

	y++
	pre, key, post := "HIT ", "ENTER", " TO COMMIT"
	x = px + w/2 - (len(pre)+len(key)+len(post)+1)/2
	s.DrawTextColored(x, y, pre, core.ColorGray)
	s.DrawTextColored(x+len(pre), y, key, core.ColorWhite)
	s.DrawTextColored(x+len(pre)+len(key), y, post, core.ColorGray)

	return RenderScreen(s)
}

// Done returns true once the popup is finished, committed or abandoned.
func (m EntryModel) Done() bool {
	return m.done
}

// Saved returns true if the score was committed to the board.
func (m EntryModel) Saved() bool {
	return m.saved
}

// IsQuitting returns true if the user requested to quit.
func (m EntryModel) IsQuitting() bool {
	return m.quitting
}

// Initials returns the current selection.
func (m EntryModel) Initials() string {
	return string(m.chars[:])
}
