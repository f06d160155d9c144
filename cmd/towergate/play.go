package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/towergate/internal/config"
	"github.com/vovakirdan/towergate/internal/core"
	"github.com/vovakirdan/towergate/internal/games/towergate"
	"github.com/vovakirdan/towergate/internal/platform/tui"
	"github.com/vovakirdan/towergate/internal/registry"
	"github.com/vovakirdan/towergate/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a towergate run directly, skipping the menu.

Controls:
  WASD/Arrows - Move, or face a closed gate
  1-9, 0      - Select cards in your hand
  Tab         - Cycle reward / trade target type
  E/Enter     - Pay a gate / confirm a trade
  T           - Open the trade store
  B/Esc       - Close a panel
  R           - Restart (after the run ends)
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - More points, slower decay, more store uses, wider minimap
  normal - The standard run
  hard   - Fewer points, faster decay, tight store budget

Examples:
  towergate play
  towergate play --difficulty hard
  towergate play --config ./my-towergate.yaml
  towergate play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Point the game factory at the flags before creation
	towergate.SetConfigPath(flagConfig)
	towergate.SetDifficulty(config.DifficultyPreset(flagDifficulty))

	game, err := registry.Create("towergate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, flagDifficulty, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
