// spacedinvaders is a terminal rendition of the classic arcade cabinet:
// attract screen, self-running demo, credited play and a persistent
// leaderboard, locally or over SSH.
//
// Usage:
//
//	spacedinvaders           - Run the cabinet (attract screen, coin-up, play)
//	spacedinvaders play      - Skip the attract screen and play at once
//	spacedinvaders scores    - Print the leaderboard
//	spacedinvaders serve     - Serve the cabinet over SSH
//	spacedinvaders version   - Print version information
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.spacedinvaders/scores.db)
//	--config <path>   - Load a custom gameplay tuning YAML
//	--mute            - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yawpitch/spacedinvaders/internal/audio"
	"github.com/yawpitch/spacedinvaders/internal/config"
	"github.com/yawpitch/spacedinvaders/internal/core"
	"github.com/yawpitch/spacedinvaders/internal/game"
	"github.com/yawpitch/spacedinvaders/internal/platform/tui"
	"github.com/yawpitch/spacedinvaders/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacedinvaders",
	Short: "Spaced Invaders - the arcade cabinet in your terminal",
	Long: `Spaced Invaders drops a complete arcade cabinet into your terminal:
the attract screen cycles the score advance table and the leaderboard,
a demo plays itself between punters, and a coin-up starts a credited
game. Ranking scores earn a spot on the persistent leaderboard.

Run it bare for the full cabinet loop, or use a subcommand:
  play     - Skip the attract screen and play at once
  scores   - Print the leaderboard
  serve    - Serve the cabinet over SSH
  version  - Print version information

Examples:
  spacedinvaders
  spacedinvaders play --seed 42
  spacedinvaders scores
  spacedinvaders serve --port 2222`,
	Run: runCabinet,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacedinvaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay tuning YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.Version = version

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runCabinet(_ *cobra.Command, _ []string) {
	launchCabinet(tui.StartAttract)
}

// launchCabinet checks the terminal, opens storage and sound, and runs
// the cabinet from the given starting mode.
func launchCabinet(start tui.StartMode) {
	// Get terminal size; the playfield is fixed, so small terminals
	// are turned away with a hint instead of a garbled frame.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	if width < game.ArenaWidth || height < game.ArenaHeight {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d; the cabinet needs at least %dx%d\n",
			width, height, game.ArenaWidth, game.ArenaHeight)
		fmt.Fprintln(os.Stderr, "Enlarge the window or shrink the font and try again.")
		os.Exit(1)
	}

	// Resolve the gameplay tuning before the game is created
	game.SetConfigPath(config.ResolvePath(flagConfig))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, playing without a board", "err", err)
		store = nil
	}

	sounds := audio.NewManager()
	if !flagMute {
		if err := sounds.Init(); err != nil {
			log.Warn("sound unavailable, continuing muted", "err", err)
		}
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(store, sounds, cfg, start)

	sounds.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running the cabinet: %v\n", runErr)
		os.Exit(1)
	}
}
