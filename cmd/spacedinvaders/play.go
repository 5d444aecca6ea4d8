package main

import (
	"github.com/spf13/cobra"

	"github.com/yawpitch/spacedinvaders/internal/platform/tui"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Skip the attract screen and play at once",
	Long: `Start a credited game immediately, without the attract loop.

Controls:
  A/D or arrows  - Move
  Space          - Fire
  P              - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Examples:
  spacedinvaders play
  spacedinvaders play --demo
  spacedinvaders play --seed 42
  spacedinvaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Watch the self-playing demo instead")
}

func runPlay(_ *cobra.Command, _ []string) {
	start := tui.StartPlay
	if flagDemo {
		start = tui.StartDemo
	}
	launchCabinet(start)
}
