// t2048 plays 2048 in the terminal.
//
// Usage:
//
//	t2048 play              - Play a game
//	t2048 menu              - Start the menu (new game, high scores)
//	t2048 scores            - Show high scores
//	t2048 serve             - Start SSH server for remote play
//	t2048 config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: from config, ~/.t2048/scores.db)
//	--config <path> - Load a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding puzzle for the terminal.

Slide the board in one of four directions. Equal tiles that meet merge
into their sum and add it to your score. Reach 2048 to win, keep going
as long as the board has room.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 menu
  t2048 serve --ssh :2222
  t2048 scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: storage.db_path from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies a difficulty preset name.
func loadConfig(difficulty string) (config.GameConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.GameConfig{}, "", err
	}

	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return config.GameConfig{}, "", err
	}
	config.ApplyGamePreset(&cfg, preset)

	return cfg, preset, nil
}

// dbPath prefers the --db flag over the configured path.
func dbPath(cfg config.GameConfig) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
