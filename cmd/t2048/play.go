package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagDifficulty string
	flagBoard      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of 2048",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - New game
  Esc/B            - Leave (when paused or over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer 4 tiles (5%)
  normal - Classic odds (10%)
  hard   - More 4 tiles, rising with your score
  fixed  - Config odds, no progression

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 play --seed 42
  t2048 play --board "2,2,4,8, 0,0,0,0, 0,0,0,0, 0,0,0,1024"
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Start from 16 row-major cells (0 or . for empty)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var start *t2048.Board
	if flagBoard != "" {
		board, err := t2048.ParseBoard(flagBoard)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: --board: %v\n", err)
			os.Exit(1)
		}
		start = &board
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, runtimeConfig(), start)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
