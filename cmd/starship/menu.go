package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
While paused or after a game over, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  starship menu
  starship menu --fps 30
  starship menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = menuLoop(s)
	s.close()
	if err != nil {
		logger.Error("menu aborted", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menuLoop(s *session) error {
	difficulties := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		difficulties[i] = string(p)
	}

	for {
		width, height := terminalSize()
		choice, err := tui.RunMenu(s.best(), string(s.preset), width, height)
		if err != nil {
			return err
		}

		switch choice {
		case tui.MenuChoicePlay:
			result, err := s.play(true)
			if err != nil {
				return err
			}
			if !result.Back {
				return nil
			}

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(s.store, difficulties, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
