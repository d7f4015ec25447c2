// game is a 2D platformer with five levels, power-ups and a boss.
//
// Usage:
//
//	game play                 - Play the game
//	game replay <file>        - Re-simulate a recorded run
//	game scores               - Show the best finished runs
//
// Global flags:
//
//	--config <dir>  - Load tuning.json and levels.yaml from dir (default: embedded)
//	--db <path>     - Set database path (default: ~/.skyquest/skyquest.db)
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagDBPath    string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Sky Quest - a five-level platformer",
	Long: `Sky Quest is a platformer: collect coins, stomp enemies, find keys
and defeat the boss across five levels.

Examples:
  game play
  game play --record run.json
  game play --config ./configs --watch
  game replay run.json
  game scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Directory with tuning.json and levels.yaml (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyquest/skyquest.db", "Path to the settings and scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger
func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyquest",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newLoader reads from dir, or from the embedded defaults when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("config: failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadConfig loads and validates the full configuration
func loadConfig(dir string) (*config.GameConfig, *config.Loader, error) {
	loader, err := newLoader(dir)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	return cfg, loader, nil
}
