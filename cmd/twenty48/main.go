// twenty48 is a terminal 2048 game.
//
// Usage:
//
//	twenty48              - Start the interactive menu
//	twenty48 play         - Play directly (--mode classic|endless)
//	twenty48 scores       - Show high scores
//	twenty48 serve        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (0 = use config value)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.twenty48/scores.db)
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
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
	Use:   "twenty48",
	Short: "Just another 2048 game for your terminal",
	Long: `twenty48 is a terminal take on the 2048 sliding puzzle.

Slide tiles with the arrow keys, WASD, or hjkl. Equal tiles merge
when they collide; reach 2048 to win, or pick endless mode and see
how far the board takes you.

Examples:
  twenty48
  twenty48 play --mode endless
  twenty48 play --seed 42
  twenty48 scores
  twenty48 serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the YAML config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.UI.TickRate = flagFPS
	}
	cfg.Normalize()
	return cfg, nil
}

// gameRules converts loaded config into game rules.
func gameRules(cfg config.Config) game.Rules {
	return game.Rules{
		WinningTile:   cfg.Rules.WinningTile,
		SpawnFourProb: cfg.Rules.SpawnFourProb,
	}
}
