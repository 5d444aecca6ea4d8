package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yawpitch/spacedinvaders/internal/audio"
	"github.com/yawpitch/spacedinvaders/internal/core"
	"github.com/yawpitch/spacedinvaders/internal/game"
	"github.com/yawpitch/spacedinvaders/internal/registry"
	"github.com/yawpitch/spacedinvaders/internal/storage"
)

// Cabinet holds after a game ends, in frames.
const (
	rankHoldFrames = 60 // game over to the initials popup
	overHoldFrames = 90 // game over back to the attract screen
)

const (
	invadersID = "invaders"
	demoID     = "demo"
)

type cabinetMode int

const (
	modeAttract cabinetMode = iota
	modePlaying
	modeEntry
	modeBoard
)

// StartMode picks what the cabinet shows first.
type StartMode int

const (
	// StartAttract opens on the attract screen, the normal cabinet loop.
	StartAttract StartMode = iota
	// StartPlay skips the attract screen and starts a credited game.
	StartPlay
	// StartDemo skips the attract screen and rolls the self-playing demo.
	StartDemo
)

// CabinetModel manages the full cabinet flow: attract screen, demo runs,
// credited games and the initials popup after a ranking score. It is the
// top-level model for both the local terminal and SSH sessions.
type CabinetModel struct {
	store    *storage.Store
	sounds   *audio.Manager
	config   core.RuntimeConfig
	mode     cabinetMode
	attract  AttractModel
	play     *PlayModel
	entry    *EntryModel
	board    *ScoreboardModel
	overWait int
	toEntry  bool
	isTop    bool
	quitting bool
}

// NewCabinetModel creates a cabinet model opening in the given mode.
func NewCabinetModel(store *storage.Store, sounds *audio.Manager, cfg core.RuntimeConfig, start StartMode) CabinetModel {
	m := CabinetModel{
		store:   store,
		sounds:  sounds,
		config:  cfg,
		attract: NewAttractModel(store, sounds, cfg),
	}

	switch start {
	case StartPlay:
		if pm, ok := newCreditedPlay(store, sounds, cfg); ok {
			m.play = &pm
			m.mode = modePlaying
		}
	case StartDemo:
		if g, err := registry.Create(demoID); err == nil {
			pm := NewPlayModel(g, nil, cfg)
			m.play = &pm
			m.mode = modePlaying
		}
	}
	return m
}

// newCreditedPlay builds a play model for a fresh credited game, seeding
// the simulation's high score line from the board.
func newCreditedPlay(store *storage.Store, sounds *audio.Manager, cfg core.RuntimeConfig) (PlayModel, bool) {
	if store != nil {
		if high, err := store.High(); err == nil {
			game.SetHighScore(high)
		}
	}
	g, err := registry.Create(invadersID)
	if err != nil {
		return PlayModel{}, false
	}
	return NewPlayModel(g, sounds, cfg), true
}

// Init starts whichever mode the cabinet opened in.
func (m CabinetModel) Init() tea.Cmd {
	if m.mode == modePlaying && m.play != nil {
		return m.play.Init()
	}
	return m.attract.Init()
}

// Update handles messages for the cabinet.
func (m CabinetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track terminal size globally so mode switches inherit it
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modePlaying:
		return m.updatePlaying(msg)
	case modeEntry:
		return m.updateEntry(msg)
	case modeBoard:
		return m.updateBoard(msg)
	}
	return m.updateAttract(msg)
}

// updateAttract handles updates while the splash is up.
func (m CabinetModel) updateAttract(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.attract.Update(msg)
	if am, ok := newModel.(AttractModel); ok {
		m.attract = am
	}

	if m.attract.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.attract.WantsPlay() {
		return m.startPlay()
	}
	if m.attract.WantsBoard() {
		return m.startBoard()
	}
	if m.attract.WantsDemo() {
		return m.startDemo()
	}

	return m, cmd
}

// startPlay switches to a fresh credited game.
func (m CabinetModel) startPlay() (tea.Model, tea.Cmd) {
	pm, ok := newCreditedPlay(m.store, m.sounds, m.config)
	if !ok {
		// the game registers itself on import, so this cannot happen
		m.quitting = true
		return m, tea.Quit
	}
	m.play = &pm
	m.mode = modePlaying
	m.overWait = 0
	m.toEntry = false
	return m, m.play.Init()
}

// startBoard switches to the scoreboard view.
func (m CabinetModel) startBoard() (tea.Model, tea.Cmd) {
	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.board = &sb
	m.mode = modeBoard
	return m, m.board.Init()
}

// startDemo switches to a self-playing demo run.
func (m CabinetModel) startDemo() (tea.Model, tea.Cmd) {
	g, err := registry.Create(demoID)
	if err != nil {
		return m.toAttract()
	}

	// the demo runs silent, like the floor machine between punters
	pm := NewPlayModel(g, nil, m.config)
	m.play = &pm
	m.mode = modePlaying
	m.overWait = 0
	m.toEntry = false
	return m, m.play.Init()
}

// updatePlaying handles updates while a game or demo runs.
func (m CabinetModel) updatePlaying(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if pm, ok := newModel.(PlayModel); ok {
		m.play = &pm
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.Dismissed() {
		return m.toAttract()
	}

	// only the play model's own clock drives the game-over countdown
	if tm, ok := msg.(TickMsg); ok && tm.Tag == m.play.tag {
		return m.checkGameOver(cmd)
	}
	return m, cmd
}

// checkGameOver watches for the end of a run and, after a short hold,
// hands off to the initials popup or back to the attract screen.
func (m CabinetModel) checkGameOver(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	state := m.play.State()
	if !state.GameOver {
		// an in-place restart cancels any pending handoff
		m.overWait = 0
		m.toEntry = false
		return m, cmd
	}

	if m.overWait == 0 {
		// decide the exit once, then hold a beat
		m.toEntry = false
		if !state.Demo && m.store != nil {
			if ok, err := m.store.Qualifies(state.Score); err == nil && ok {
				high, _ := m.store.High()
				m.isTop = state.Score > high
				m.toEntry = true
			}
		}
		if m.toEntry {
			m.overWait = rankHoldFrames
		} else {
			m.overWait = overHoldFrames
		}
		return m, cmd
	}

	m.overWait--
	if m.overWait > 0 {
		return m, cmd
	}

	if m.toEntry {
		em := NewEntryModel(m.play.Backdrop(), m.store, state.Score, m.isTop)
		m.entry = &em
		m.mode = modeEntry
		return m, m.entry.Init()
	}
	return m.toAttract()
}

// updateEntry handles updates while the initials popup is up.
func (m CabinetModel) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.entry.Update(msg)
	if em, ok := newModel.(EntryModel); ok {
		m.entry = &em
	}

	if m.entry.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.entry.Done() {
		return m.toAttract()
	}
	return m, cmd
}

// updateBoard handles updates while the scoreboard view is up. The
// scoreboard quits its own program when run standalone; inside the
// cabinet its back intent is caught before that quit can propagate.
func (m CabinetModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.board = &sb
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.toAttract()
	}
	return m, cmd
}

// toAttract returns to a fresh attract screen, re-reading the board.
func (m CabinetModel) toAttract() (tea.Model, tea.Cmd) {
	m.play = nil
	m.entry = nil
	m.board = nil
	m.overWait = 0
	m.toEntry = false
	m.attract = NewAttractModel(m.store, m.sounds, m.config)
	m.mode = modeAttract
	return m, m.attract.Init()
}

// View renders the current mode.
func (m CabinetModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modePlaying:
		if m.play != nil {
			return m.play.View()
		}
	case modeEntry:
		if m.entry != nil {
			return m.entry.View()
		}
	case modeBoard:
		if m.board != nil {
			return m.board.View()
		}
	}
	return m.attract.View()
}

// Run starts the cabinet on the local terminal.
func Run(store *storage.Store, sounds *audio.Manager, cfg core.RuntimeConfig, start StartMode) error {
	model := NewCabinetModel(store, sounds, cfg, start)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
