package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/core-defense/internal/games/coredefense"
	"github.com/vovakirdan/core-defense/internal/platform/tui"
	"github.com/vovakirdan/core-defense/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMine  bool
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  coredefense scores
  coredefense scores --mine
  coredefense scores --limit 25
  coredefense scores --tui
  coredefense scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show runs of --player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run (profiles are kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(coredefense.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		log.Info("scores cleared", "db", flagDBPath)
		fmt.Println("All runs deleted.")
		return
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, playerName(), cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresMine {
		scores, err = store.PlayerScores(coredefense.GameID, playerName(), flagScoresLimit)
	} else {
		scores, err = store.TopScores(coredefense.GameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Core Defense")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'coredefense play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-3s  %-6s  %s\n", "Rank", "Player", "Score", "Lv", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-3s  %-6s  %s\n", "----", "------", "-----", "--", "----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %-3d  %-6s  %s\n",
			i+1, e.Player, e.Score, e.Level,
			fmt.Sprintf("%d:%02d", e.Seconds/60, e.Seconds%60),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Summary
	fmt.Println()
	if stats, err := store.GetGameStats(coredefense.GameID); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Highest level: %d\n", stats.HighScore, stats.GamesCount, stats.BestLevel)
	}
}
