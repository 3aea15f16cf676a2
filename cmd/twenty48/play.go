package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twenty48/internal/core"
	"github.com/vovakirdan/twenty48/internal/game"
	"github.com/vovakirdan/twenty48/internal/storage"
	"github.com/vovakirdan/twenty48/internal/tui"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game directly",
	Long: `Start a game without going through the menu.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back to menu
  Q/Ctrl+C         - Quit

Modes:
  classic - Win by building the configured winning tile (2048 by default)
  endless - No win condition, play until the board is stuck

Examples:
  twenty48 play
  twenty48 play --mode endless
  twenty48 play --seed 42
  twenty48 play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "classic", "Game mode: classic or endless")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !game.ValidMode(flagMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
		fmt.Fprintln(os.Stderr, "Valid modes are: classic, endless.")
		os.Exit(1)
	}

	appCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appCfg.UI.TickRate,
		Seed:     flagSeed,
	}

	g := game.New(game.Mode(flagMode), gameRules(appCfg))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage, the game still works
		store = nil
	}

	_, runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
