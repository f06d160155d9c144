// towergate is a terminal room-escape puzzle game.
//
// Usage:
//
//	towergate play            - Start a run directly
//	towergate menu            - Interactive menu (difficulty, rules, scores)
//	towergate serve           - Start SSH server for remote play
//	towergate scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.towergate/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/towergate/internal/games/towergate"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "towergate",
	Short: "Towergate - escape the tower before your points run out",
	Long: `Towergate is a terminal puzzle game: you wake up in a tower of 100
themed rooms and must reach the exit. Every gate between rooms demands
cards of the right type and power, and your points drain every second.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with difficulty selection
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  towergate play
  towergate play --difficulty hard
  towergate menu
  towergate serve --ssh :2222
  towergate scores --difficulty normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.towergate/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
