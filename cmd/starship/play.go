package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start playing right away.

Controls:
  Left/Right, A/D, H/L  - Steer
  Space/P               - Pause
  Enter/R               - Restart (after game over)
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - 5 lives, faster ship, slower meteorites
  normal - The config as loaded
  hard   - 2 lives, faster meteorites that speed up twice as quickly
  fixed  - No progression, speeds never change

Examples:
  starship play
  starship play --difficulty easy
  starship play --seed 42
  starship play --config ./my-starship.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, runErr := s.play(false)

	// Close store before potential exit
	s.close()

	if runErr != nil {
		logger.Error("game aborted", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended", "best", result.State.Best)
}
