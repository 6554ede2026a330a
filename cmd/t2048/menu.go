package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagMenuDifficulty string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start 2048 with a menu",
	Long: `Start 2048 in interactive menu mode.

Pick a new game, change the difficulty or look at the high scores.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Q               - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagMenuDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath(base))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	rc := runtimeConfig()

	// Menu loop
	for {
		best := 0
		if store != nil {
			best, _ = store.BestScore(t2048.ID)
		}

		menuResult, err := tui.RunMenu(rc, preset, best)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		rc = menuResult.Config
		preset = menuResult.Preset

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		case tui.ChoiceNewGame:
			cfg := base
			config.ApplyGamePreset(&cfg, preset)
			if runErr := tui.Run(cfg, store, rc, nil); runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}

		default:
			return
		}
	}
}
