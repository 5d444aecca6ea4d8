package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yawpitch/spacedinvaders/internal/audio"
	"github.com/yawpitch/spacedinvaders/internal/core"
	"github.com/yawpitch/spacedinvaders/internal/game"
	"github.com/yawpitch/spacedinvaders/internal/storage"
)

// Attract screen pacing, in frames. The splash rhythm assumes the cabinet
// cadence of sixty frames a second.
const (
	attractSecond   = 60
	bigLetterFrames = 4 // type-on cadence for the big titles
	advanceOn       = 39
	advanceOff      = advanceOn + 6*attractSecond
	firstRowDelay   = 12 // the first table row holds back a beat
	demoHoldFrames  = 30 // blank breather before the demo rolls
	tableWidth      = 35
)

const (
	spacedWord   = "SPACED"
	invadersWord = "INVADERS"
)

// advanceRow is one line of the score advance table.
type advanceRow struct {
	icon   game.Sprite
	color  core.Color
	points string
}

func advanceTable() []advanceRow {
	return []advanceRow{
		{game.IconMystery, core.ColorRed, "? MYSTERY"},
		{game.IconSquid, core.ColorWhite, fmt.Sprintf("%d POINTS", game.PointsSquid)},
		{game.IconCrab, core.ColorWhite, fmt.Sprintf("%d POINTS", game.PointsCrab)},
		{game.IconOctopus, core.ColorYellow, fmt.Sprintf("%d POINTS", game.PointsOctopus)},
	}
}

// AttractKeyMap defines the key bindings shown in the attract footer.
type AttractKeyMap struct {
	Start key.Binding
	Board key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AttractKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Board, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AttractKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Board, k.Quit}}
}

// DefaultAttractKeyMap returns default key bindings.
func DefaultAttractKeyMap() AttractKeyMap {
	return AttractKeyMap{
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play"),
		),
		Board: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "high scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AttractModel is the Bubble Tea model for the splash screen that entices
// the punters to play. It cycles the big titles, the score advance table
// and the leaderboard, then asks for a demo run.
type AttractModel struct {
	screen        *core.Screen
	store         *storage.Store
	sounds        *audio.Manager
	config        core.RuntimeConfig
	keys          AttractKeyMap
	help          help.Model
	leaders       []storage.Entry
	tag           int
	frame         int
	splashCount   int
	typedSpaced   int
	typedInvaders int
	typedAdvance  int
	typedBoard    int
	demoWait      int
	wantsPlay     bool
	wantsBoard    bool
	wantsDemo     bool
	quitting      bool
}

// NewAttractModel creates an attract model, reading the current
// leaderboard once up front.
func NewAttractModel(store *storage.Store, sounds *audio.Manager, cfg core.RuntimeConfig) AttractModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return AttractModel{
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		sounds:  sounds,
		config:  cfg,
		keys:    DefaultAttractKeyMap(),
		help:    h,
		leaders: fetchLeaders(store),
		tag:     nextTag(),
	}
}

func fetchLeaders(store *storage.Store) []storage.Entry {
	if store == nil {
		return nil
	}
	leaders, err := store.Leaders()
	if err != nil {
		return nil
	}
	return leaders
}

// Init starts the tick loop.
func (m AttractModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tag)
}

// Update handles messages for the attract screen.
func (m AttractModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			m.wantsPlay = true
		case key.Matches(msg, m.keys.Board):
			m.wantsBoard = true
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Tag != m.tag {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the splash schedule one frame.
func (m AttractModel) handleTick() (tea.Model, tea.Cmd) {
	if m.demoWait > 0 {
		m.demoWait--
		if m.demoWait == 0 {
			m.wantsDemo = true
		}
		return m, tickCmd(m.config.TickRate, m.tag)
	}

	// enough full cycles shown, roll the demo
	target := 2
	if len(m.leaders) > 0 {
		target = 1
	}
	if m.splashCount >= target {
		m.splashCount = 0
		m.demoWait = demoHoldFrames
		return m, tickCmd(m.config.TickRate, m.tag)
	}

	// the big titles type on a letter at a time
	if m.frame%bigLetterFrames == 0 {
		if m.typedSpaced < len(spacedWord) {
			m.typedSpaced++
		} else if m.typedInvaders < len(invadersWord) {
			m.typedInvaders++
		}
	}

	// advance table rows land on the 40th frame of each second
	if m.inAdvanceWindow() && m.frame > advanceOn+firstRowDelay && m.frame%attractSecond == 40 {
		if m.typedAdvance <= len(advanceTable()) {
			m.typedAdvance++
		}
		if m.typedAdvance <= len(advanceTable()) {
			m.play(core.EventInvaderStep)
		}
	}

	// leaderboard rows land on the 20th
	if m.inBoardWindow() && m.frame > m.boardOn()+firstRowDelay && m.frame%attractSecond == 20 {
		if m.typedBoard <= len(m.leaders) {
			m.typedBoard++
		}
		if m.typedBoard <= len(m.leaders) {
			m.play(core.EventInvaderStep)
		}
	}

	m.frame++
	if m.frame >= m.cycleFrames() {
		m.frame = 0
		m.splashCount++
		m.typedAdvance = 0
		m.typedBoard = 0
	}

	return m, tickCmd(m.config.TickRate, m.tag)
}

func (m AttractModel) play(ev core.Event) {
	if m.sounds != nil {
		m.sounds.Play(ev)
	}
}

func (m AttractModel) inAdvanceWindow() bool {
	return m.frame >= advanceOn && m.frame <= advanceOff
}

// boardOn and boardOff bound the leaderboard's turn in the shared region
// below the titles. The board follows the advance table after the same
// lead-in gap, and holds long enough to type every row.
func (m AttractModel) boardOn() int { return advanceOff + advanceOn }

func (m AttractModel) boardOff() int {
	return m.boardOn() + core.Max(6*attractSecond, attractSecond*(len(m.leaders)+1))
}

func (m AttractModel) inBoardWindow() bool {
	return len(m.leaders) > 0 && m.frame >= m.boardOn() && m.frame <= m.boardOff()
}

func (m AttractModel) cycleFrames() int {
	end := advanceOff
	if len(m.leaders) > 0 {
		end = m.boardOff()
	}
	return end + attractSecond/4
}

// View renders the attract screen.
func (m AttractModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.screen
	s.Clear()

	// the screen blanks for a beat before the demo rolls
	if m.demoWait > 0 {
		return RenderScreen(s)
	}

	cx := s.Width() / 2
	y := s.Height()/2 - 12

	if blink := m.frame % attractSecond; blink >= 20 && blink <= 55 {
		drawPressToPlay(s, cx, y)
	}

	y += 2
	game.TypeOn(s, cx, y, spacedWord, m.typedSpaced)
	if m.typedSpaced >= len(spacedWord) {
		game.TypeOn(s, cx, y+3, invadersWord, m.typedInvaders)
	}

	// the advance table and the leaderboard take turns in the region below
	if m.inAdvanceWindow() {
		m.drawAdvanceTable(s, cx, y+9)
	}
	if m.inBoardWindow() {
		m.drawLeaderboard(s, cx, y+9)
	}

	return m.overlayHelp(RenderScreen(s))
}

// overlayHelp replaces the bottom screen row with the key hints.
func (m AttractModel) overlayHelp(out string) string {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return out
	}
	hint := m.help.View(m.keys)
	lines[len(lines)-1] = lipgloss.PlaceHorizontal(m.screen.Width(), lipgloss.Center, hint)
	return strings.Join(lines, "\n")
}

// drawPressToPlay draws the blinking call to action with SPACE picked out.
func drawPressToPlay(s *core.Screen, cx, y int) {
	const msg = "PRESS SPACE TO PLAY"
	x := cx - (len(msg)+1)/2
	for _, word := range strings.Fields(msg) {
		color := core.ColorGray
		if word == "SPACE" {
			color = core.ColorWhite
		}
		s.DrawTextColored(x, y, word, color)
		x += len(word) + 1
	}
}

func (m AttractModel) drawAdvanceTable(s *core.Screen, cx, y int) {
	x := cx - (tableWidth+1)/2
	s.DrawTextColored(x, y, padCenter("SCORE ADVANCE TABLE", tableWidth), core.ColorInverse)
	y += 2

	rows := advanceTable()
	shown := core.Min(m.typedAdvance, len(rows))

	// pad to the widest icon, the mystery ship
	padX := 0
	for _, row := range rows {
		padX = core.Max(padX, row.icon.Width())
	}

	for i, row := range rows[:shown] {
		iconX := x + 2 + (padX-row.icon.Width())/2
		game.Draw(s, iconX, y, row.icon, row.color)

		// the saucer's label sits on its hull line, the rest on top
		ptsY := y
		if i == 0 {
			ptsY = y + 1
		}
		ptsColor := core.ColorWhite
		if row.color == core.ColorYellow {
			ptsColor = core.ColorYellow
		}
		s.DrawTextColored(x+tableWidth-len(row.points)-2, ptsY, row.points, ptsColor)

		y += row.icon.Height()
		if i > 0 {
			y++
		}
	}
}

func (m AttractModel) drawLeaderboard(s *core.Screen, cx, y int) {
	x := cx - (tableWidth+1)/2
	s.DrawTextColored(x, y, padCenter("HIGH SCORES", tableWidth), core.ColorInverse)
	y++

	shown := core.Min(m.typedBoard, len(m.leaders))
	for i, e := range m.leaders[:shown] {
		y++
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorYellow
		} else if i%2 == 1 {
			color = core.ColorGray
		}
		name := fmt.Sprintf("%2d: %s", i+1, e.Name)
		score := fmt.Sprintf("%4d POINTS", e.Score)
		s.DrawTextColored(x+2, y, name, color)
		s.DrawTextColored(x+tableWidth-3-len(score), y, score, color)
	}
}

// padCenter centers text in a field of the given width, padding both
// sides with spaces so a highlight covers the full bar.
func padCenter(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// WantsPlay returns true once the user asks to start a game.
func (m AttractModel) WantsPlay() bool {
	return m.wantsPlay
}

// WantsBoard returns true once the user asks for the scoreboard view.
func (m AttractModel) WantsBoard() bool {
	return m.wantsBoard
}

// WantsDemo returns true once the splash has cycled enough to roll the
// self-playing demo.
func (m AttractModel) WantsDemo() bool {
	return m.wantsDemo
}

// IsQuitting returns true if the user requested to quit.
func (m AttractModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m AttractModel) Config() core.RuntimeConfig {
	return m.config
}
