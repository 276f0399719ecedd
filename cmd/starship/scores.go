package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorBest  = color.New(color.FgYellow)
	colorDim   = color.New(color.FgHiBlack)
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

With --difficulty only runs played on that preset are shown (or cleared).

Examples:
  starship scores
  starship scores --limit 20
  starship scores --difficulty hard
  starship scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored scores instead of showing them")
}

func runScores(_ *cobra.Command, _ []string) {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(flagDifficulty)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "difficulty", flagDifficulty, "count", n)
		color.Yellow("Deleted %d score(s).", n)
		return
	}

	scores, err := store.TopScores(flagDifficulty, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "High Scores"
	if flagDifficulty != "" {
		title = fmt.Sprintf("High Scores - %s", flagDifficulty)
	}
	colorTitle.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		colorDim.Println("Play 'starship play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Date")
	colorDim.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "-----", "----------", "----")

	for i, entry := range scores {
		difficulty := entry.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		line := fmt.Sprintf("  %-4d  %-6d  %-10s  %s", i+1, entry.Score, difficulty, dateStr)
		if i == 0 {
			colorBest.Println(line)
		} else {
			fmt.Println(line)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		logger.Warn("cannot read stats", "err", err)
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		colorDim.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
