package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yawpitch/spacedinvaders/internal/core"
	"github.com/yawpitch/spacedinvaders/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 100
	cfg.ScreenH = 50
	cfg.Seed = 42
	return cfg
}

// updateCabinet feeds one message to the cabinet and returns the new model.
func updateCabinet(m CabinetModel, msg tea.Msg) CabinetModel {
	newModel, _ := m.Update(msg)
	return newModel.(CabinetModel)
}

func TestCabinetOpensInAttract(t *testing.T) {
	m := NewCabinetModel(nil, nil, testRuntimeConfig(), StartAttract)
	if m.mode != modeAttract {
		t.Errorf("mode = %v, want modeAttract", m.mode)
	}
	if m.play != nil {
		t.Errorf("attract start should not build a play model")
	}
}

func TestCabinetStartModes(t *testing.T) {
	play := NewCabinetModel(nil, nil, testRuntimeConfig(), StartPlay)
	if play.mode != modePlaying || play.play == nil {
		t.Fatalf("StartPlay should open straight into a credited game")
	}
	if play.play.demo {
		t.Errorf("StartPlay built the demo pilot")
	}

	demo := NewCabinetModel(nil, nil, testRuntimeConfig(), StartDemo)
	if demo.mode != modePlaying || demo.play == nil {
		t.Fatalf("StartDemo should open straight into the demo")
	}
	if !demo.play.demo {
		t.Errorf("StartDemo built a credited game")
	}
}

func TestCabinetSpaceStartsPlay(t *testing.T) {
	store := openTestStore(t)
	m := NewCabinetModel(store, nil, testRuntimeConfig(), StartAttract)

	m = updateCabinet(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.mode != modePlaying || m.play == nil {
		t.Fatalf("space on the attract screen should start a credited game")
	}
	if m.play.demo {
		t.Errorf("space started the demo pilot")
	}
}

// The scoreboard quits its own program when run standalone; inside the
// cabinet that quit must read as a back intent, not a teardown.
func TestCabinetBoardRoundTrip(t *testing.T) {
	store := openTestStore(t)
	m := NewCabinetModel(store, nil, testRuntimeConfig(), StartAttract)

	m = updateCabinet(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeBoard {
		t.Fatalf("tab should open the scoreboard, mode = %v", m.mode)
	}
	if m.board == nil {
		t.Fatalf("no scoreboard model was built")
	}

	m = updateCabinet(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeAttract {
		t.Fatalf("esc should back out to the attract screen, mode = %v", m.mode)
	}
	if m.quitting {
		t.Errorf("the board's own quit leaked out of the cabinet")
	}
	if m.board != nil {
		t.Errorf("the dismissed board should be torn down")
	}
}

func TestCabinetQuitFromAttract(t *testing.T) {
	m := NewCabinetModel(nil, nil, testRuntimeConfig(), StartAttract)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = newModel.(CabinetModel)
	if !m.quitting {
		t.Errorf("q on the attract screen should quit the cabinet")
	}
	if cmd == nil {
		t.Errorf("quitting should produce a command")
	}
}

func TestCabinetGameOverToEntry(t *testing.T) {
	store := openTestStore(t)
	m := NewCabinetModel(store, nil, testRuntimeConfig(), StartPlay)
	m.play.Init()
	m.play.gameState = core.GameState{GameOver: true, Score: 500}

	// first sighting decides the exit and arms the hold
	model, _ := m.checkGameOver(nil)
	m = model.(CabinetModel)
	if !m.toEntry {
		t.Fatalf("a qualifying score should head for the initials popup")
	}
	if m.overWait != rankHoldFrames {
		t.Fatalf("overWait = %d, want %d", m.overWait, rankHoldFrames)
	}

	for i := 0; i < rankHoldFrames; i++ {
		model, _ = m.checkGameOver(nil)
		m = model.(CabinetModel)
	}
	if m.mode != modeEntry {
		t.Fatalf("mode = %v, want modeEntry after the hold", m.mode)
	}
	if m.entry == nil {
		t.Fatalf("no entry popup was built")
	}
	if !m.isTop {
		t.Errorf("500 on an empty board should rank as a new high score")
	}
}

func TestCabinetDemoGameOverToAttract(t *testing.T) {
	store := openTestStore(t)
	m := NewCabinetModel(store, nil, testRuntimeConfig(), StartDemo)
	m.play.Init()
	m.play.gameState = core.GameState{GameOver: true, Score: 800, Demo: true}

	model, _ := m.checkGameOver(nil)
	m = model.(CabinetModel)
	if m.toEntry {
		t.Fatalf("demo scores should never reach the initials popup")
	}
	if m.overWait != overHoldFrames {
		t.Fatalf("overWait = %d, want %d", m.overWait, overHoldFrames)
	}

	for i := 0; i < overHoldFrames; i++ {
		model, _ = m.checkGameOver(nil)
		m = model.(CabinetModel)
	}
	if m.mode != modeAttract {
		t.Fatalf("mode = %v, want modeAttract after the hold", m.mode)
	}
	if m.play != nil {
		t.Errorf("the finished demo should be torn down")
	}
}

func TestCabinetRestartCancelsHandoff(t *testing.T) {
	store := openTestStore(t)
	m := NewCabinetModel(store, nil, testRuntimeConfig(), StartPlay)
	m.play.Init()
	m.play.gameState = core.GameState{GameOver: true, Score: 300}

	model, _ := m.checkGameOver(nil)
	m = model.(CabinetModel)
	if m.overWait == 0 {
		t.Fatalf("the hold should be armed after a game over")
	}

	// r restarted the run in place before the hold elapsed
	m.play.gameState = core.GameState{}
	model, _ = m.checkGameOver(nil)
	m = model.(CabinetModel)
	if m.overWait != 0 || m.toEntry {
		t.Errorf("restart should cancel the pending handoff, overWait=%d toEntry=%v", m.overWait, m.toEntry)
	}
	if m.mode != modePlaying {
		t.Errorf("mode = %v, want to stay in the game", m.mode)
	}
}

func TestCabinetEntryCommitToAttract(t *testing.T) {
	store := openTestStore(t)
	m := NewCabinetModel(store, nil, testRuntimeConfig(), StartPlay)
	m.play.Init()

	em := NewEntryModel(m.play.Backdrop(), store, 250, true)
	m.entry = &em
	m.mode = modeEntry

	m = updateCabinet(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeAttract {
		t.Fatalf("mode = %v, want modeAttract after the commit", m.mode)
	}

	leaders, err := store.Leaders()
	if err != nil {
		t.Fatalf("Leaders() failed: %v", err)
	}
	if len(leaders) != 1 || leaders[0].Name != "AAA" || leaders[0].Score != 250 {
		t.Errorf("board = %+v, want the committed AAA 250", leaders)
	}
}
