package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagProgress bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode (match3 or match3_endless).

With --progress, show the best result per campaign level for --player
instead.

Examples:
  match3 scores
  match3 scores match3_endless
  match3 scores --progress --player alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagProgress, "progress", false, "Show per-level progress instead of high scores")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := match3.CampaignID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !flagProgress && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintf(os.Stderr, "Known games: %s, %s\n", match3.CampaignID, match3.EndlessID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagProgress {
		printProgress(store)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'match3 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-10s  %s\n", "Rank", "Player", "Level", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-10s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		level := entry.Level
		if level == "" {
			level = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6s  %-10d  %s\n", i+1, entry.Player, level, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Games: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
}

// printProgress lists the player's best result for every level they cleared.
func printProgress(store *storage.Store) {
	progress, err := store.Progress(flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level Progress - %s\n", flagPlayer)
	fmt.Println()

	if len(progress) == 0 {
		fmt.Println("No levels cleared yet.")
		return
	}

	ids := make([]string, 0, len(progress))
	for id := range progress {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-8s  %-10s  %-10s  %-6s  %s\n", "Level", "Best", "Moves left", "Clears", "Date")
	fmt.Printf("  %-8s  %-10s  %-10s  %-6s  %s\n", "-----", "----", "----------", "------", "----")
	for _, id := range ids {
		p := progress[id]
		fmt.Printf("  %-8s  %-10d  %-10d  %-6d  %s\n",
			id, p.BestScore, p.MovesLeft, p.Clears, p.ClearedAt.Format("2006-01-02 15:04"))
	}
}
