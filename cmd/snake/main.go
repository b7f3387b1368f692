// snake is a terminal snake game.
//
// Usage:
//
//	snake                - Play a game
//	snake play           - Play a game
//	snake serve          - Start SSH server for remote play
//	snake config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Path to a custom snake.yaml
//	--seed <value>     - Set RNG seed for reproducible apple placement
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around the terminal",
	Long: `Snake is a terminal game. Steer the snake with w/a/s/d, eat apples
to grow, and avoid the walls and your own tail. Fill the board to win.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake config > ~/.snake/configs/snake.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the snake configuration named by --config. Problems with
// files on the search path are reported on stderr, outside the game screen.
func loadConfig() (config.SnakeConfig, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})
	return config.LoadSnake(flagConfig, logger)
}
