package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores for a difficulty",
	Long: `Display the top high scores for a difficulty preset (default: normal).

Examples:
  neondash scores
  neondash scores hard --limit 20
  neondash scores --stats
  neondash scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the preset")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show run statistics for every preset")
}

func runScores(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (presets: easy, normal, hard, fixed)", name)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		return clearScores(store, preset)
	case flagScoresStats:
		return printStats(store)
	default:
		return printScores(store, preset)
	}
}

func clearScores(store *storage.Store, preset config.DifficultyPreset) error {
	if err := store.ClearScores(string(preset)); err != nil {
		return err
	}
	fmt.Printf("Cleared %s scores.\n", preset)
	return nil
}

func printScores(store *storage.Store, preset config.DifficultyPreset) error {
	scores, err := store.TopScores(string(preset), flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - Neon Dash (%s)\n", preset)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'neondash play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Frames", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, entry.Score, entry.Frames, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

func printStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "Preset", "Runs", "Best", "Avg", "Last played")
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "------", "----", "----", "---", "-----------")

	for _, p := range config.Presets() {
		st, ok := all[string(p)]
		if !ok {
			fmt.Printf("  %-8s  %-6d  %-6s  %-8s  %s\n", p, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %-8.1f  %s\n",
			p, st.RunsCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
