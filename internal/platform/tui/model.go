package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yawpitch/spacedinvaders/internal/audio"
	"github.com/yawpitch/spacedinvaders/internal/core"
	"github.com/yawpitch/spacedinvaders/internal/registry"
)

// PlayModel is the Bubble Tea model for one cabinet run, credited or demo.
// It steps the simulation on each tick and forwards its events to the
// sound manager.
type PlayModel struct {
	game       registry.Game
	screen     *core.Screen
	sounds     *audio.Manager
	config     core.RuntimeConfig
	keymap     *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	tag        int
	demo       bool
	dismissed  bool // demo waved off by the punter
	quitting   bool
}

// NewPlayModel creates a play model for the given game.
func NewPlayModel(g registry.Game, sounds *audio.Manager, cfg core.RuntimeConfig) PlayModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return PlayModel{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sounds:     sounds,
		config:     cfg,
		keymap:     NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tag:        nextTag(),
		demo:       g.State().Demo,
	}
}

// Init resets the simulation and starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tag)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Tag != m.tag {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.demo {
		// the demo only listens for a wave-off or a quit
		switch m.keymap.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionStart, MenuActionBack:
			m.dismissed = true
		}
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The arena is a fixed-size
// field that Render centers, so only the canvas changes; the simulation
// keeps running.
func (m PlayModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation one frame.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sounds != nil {
		for _, ev := range result.Events {
			m.sounds.Play(ev)
		}
	}

	// r restarted the sim in place; re-arm the credit sequence
	if wasOver && !m.gameState.GameOver {
		m.keymap.Reset()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tag)
}

// saveScreenshot saves the current screen to a file.
func (m *PlayModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".spacedinvaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m PlayModel) State() core.GameState {
	return m.gameState
}

// Backdrop renders the current simulation state into the model's screen
// buffer and returns it, for overlays drawn after the run ends.
func (m PlayModel) Backdrop() *core.Screen {
	m.screen.Clear()
	m.game.Render(m.screen)
	return m.screen
}

// IsQuitting returns true if the user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// Dismissed returns true if the user waved off the demo.
func (m PlayModel) Dismissed() bool {
	return m.dismissed
}
