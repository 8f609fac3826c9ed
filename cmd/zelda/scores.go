package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-zelda/internal/games/zelda"
	"github.com/vovakirdan/tui-zelda/internal/platform/tui"
	"github.com/vovakirdan/tui-zelda/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores (waves cleared) and the best run per level.

Examples:
  zelda scores
  zelda scores --limit 20
  zelda scores --interactive
  zelda scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(zelda.GameID); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, zelda.GameID, "TUI Zelda", width, height)
	}

	scores, err := store.TopScores(zelda.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - TUI Zelda")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'zelda play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Wave", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-10s  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	bests, err := store.LevelBests(zelda.GameID)
	if err != nil {
		return fmt.Errorf("retrieving level bests: %w", err)
	}
	fmt.Println()
	fmt.Println("Best per level:")
	for _, b := range bests {
		fmt.Printf("  %-10s  %d (%d runs)\n", b.Level, b.Score, b.Runs)
	}
	return nil
}
