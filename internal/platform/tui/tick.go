// Package tui provides the Bubble Tea integration for the cabinet.
// It handles the terminal UI loop, input mapping, the attract/play/score
// flow, and sound dispatch.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame. The tag ties each tick
// to the model that scheduled it: when the cabinet swaps models, any tick
// still in flight from the old clock carries a stale tag and is dropped,
// so the new model never runs two clocks at once.
type TickMsg struct {
	At  time.Time
	Tag int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate, stamped with the scheduling model's tag.
func tickCmd(tickRate, tag int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Tag: tag}
	})
}

var lastTag int64

// nextTag hands out clock tags. Every model that runs a tick loop takes
// one at construction.
func nextTag() int {
	return int(atomic.AddInt64(&lastTag, 1))
}
