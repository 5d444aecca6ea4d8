package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yawpitch/spacedinvaders/internal/core"
)

// konamiSeq is the credit easter egg, oldest key first. The first eight
// steps accept either an arrow or its letter twin; the final two are the
// literal b and a keys.
var konamiSeq = [10][]string{
	{"up", "w"},
	{"up", "w"},
	{"down", "s"},
	{"down", "s"},
	{"left", "a"},
	{"right", "d"},
	{"left", "a"},
	{"right", "d"},
	{"b"},
	{"a"},
}

// KeyMapper translates Bubble Tea key messages to game actions.
// It also watches the raw key stream for the credit sequence, which
// pays out at most once per game.
type KeyMapper struct {
	last10 []string
	sprung bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a simulation action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	if km.feedKonami(msg.String()) {
		frame.Set(core.ActionCoin)
	}
	return isQuit
}

// feedKonami records a raw key and reports whether it completed the
// credit sequence. The b key doubles as a step here and as ActionBack;
// the a key as a step and as ActionLeft. Both roles coexist because the
// recognizer only inspects the raw key history.
func (km *KeyMapper) feedKonami(key string) bool {
	if km.sprung {
		return false
	}
	if len(km.last10) == len(konamiSeq) {
		copy(km.last10, km.last10[1:])
		km.last10 = km.last10[:len(konamiSeq)-1]
	}
	km.last10 = append(km.last10, key)

	// The sequence ends on a, so only a press of a can complete it.
	if key != "a" || len(km.last10) < len(konamiSeq) {
		return false
	}
	for i, accepted := range konamiSeq {
		hit := false
		for _, k := range accepted {
			if km.last10[i] == k {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	km.sprung = true
	return true
}

// Reset clears the key history and re-arms the credit sequence for a
// fresh game.
func (km *KeyMapper) Reset() {
	km.last10 = km.last10[:0]
	km.sprung = false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionStart
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter":
		return MenuActionSelect
	case " ":
		return MenuActionStart
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
