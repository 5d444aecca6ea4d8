package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yawpitch/spacedinvaders/internal/platform/tui"
	"github.com/yawpitch/spacedinvaders/internal/storage"
)

var (
	flagClear     bool
	flagScoresTUI bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Print the top 10 leaderboard without launching the cabinet.

Examples:
  spacedinvaders scores
  spacedinvaders scores --db ./scores.db
  spacedinvaders scores --tui
  spacedinvaders scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Wipe the leaderboard (asks first)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the board interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		clearScores(store)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing the board: %v\n", err)
			os.Exit(1)
		}
		return
	}

	leaders, err := store.Leaders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Spaced Invaders")
	fmt.Println()

	if len(leaders) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'spacedinvaders' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-4s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-4s  %-6s  %s\n", "----", "----", "-----", "----")

	// Print scores
	for i, entry := range leaders {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-4s  %-6d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	if stats, err := store.GetStats(); err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("%d games on record, average score %.1f\n", stats.Games, stats.AvgScore)
	}
}

// clearScores wipes the board after a yes from the operator.
func clearScores(store *storage.Store) {
	fmt.Print("Wipe the entire leaderboard? [y/N] ")
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Leaderboard left alone.")
		return
	}

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Leaderboard cleared.")
}
