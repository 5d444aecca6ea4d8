package tui

import (
	"strings"
	"testing"

	"github.com/yawpitch/spacedinvaders/internal/core"
)

func TestRenderScreenPlainRows(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.DrawText(0, 0, "ABCDE")
	s.DrawText(0, 2, "XY")

	// Default-color cells carry no styling in any terminal profile.
	got := RenderScreen(s)
	want := "ABCDE\n     \nXY   "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(8, 5)
	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Fatalf("RenderScreen() produced %d lines, want 5", len(lines))
	}
}

func TestRenderScreenBatchesColorRuns(t *testing.T) {
	s := core.NewScreen(10, 1)
	for x := 0; x < 10; x++ {
		s.SetColored(x, 0, 'X', core.ColorGreen)
	}

	out := RenderScreen(s)

	// A same-color run renders as one styled chunk: its runes stay
	// contiguous and at most a single open/reset escape pair surrounds
	// them, however wide the run.
	if !strings.Contains(out, strings.Repeat("X", 10)) {
		t.Errorf("color run was split: %q", out)
	}
	if n := strings.Count(out, "\x1b["); n > 2 {
		t.Errorf("uniform run emitted %d escapes, want at most 2", n)
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'A', core.Color(255))
	s.DrawText(1, 0, "BC")

	out := RenderScreen(s)
	if !strings.Contains(out, "A") || !strings.Contains(out, "BC") {
		t.Errorf("unknown color lost content: %q", out)
	}
}
