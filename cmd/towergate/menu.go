package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/towergate/internal/core"
	"github.com/vovakirdan/towergate/internal/games/towergate"
	"github.com/vovakirdan/towergate/internal/platform/tui"
	"github.com/vovakirdan/towergate/internal/registry"
	"github.com/vovakirdan/towergate/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start towergate in interactive menu mode.

Pick a difficulty, read the rules or browse the high scores.
After a run ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  towergate menu
  towergate menu --fps 30
  towergate menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHowto {
			if howtoErr := tui.RunHowto(cfg.ScreenW, cfg.ScreenH); howtoErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", howtoErr)
			}
			continue
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		towergate.SetDifficulty(menuResult.Difficulty)

		game, err := registry.Create("towergate")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		backToMenu, runErr := tui.Run(game, store, string(menuResult.Difficulty), cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
