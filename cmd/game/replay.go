package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/skyquest/internal/application/replay"
	"github.com/younwookim/skyquest/internal/application/world"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Load a replay recorded with --record and re-run it without a window.
The simulation is deterministic, so the result matches the original run
as long as the same configuration is used.

Examples:
  game replay run.json
  game replay run.json --config ./configs --debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagDebug)

	cfg, _, err := loadConfig(flagConfigDir)
	if err != nil {
		return err
	}

	result, err := replayFile(args[0], cfg, world.WithLogger(logger))
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// replayFile loads a replay and re-simulates it
func replayFile(path string, cfg *config.GameConfig, opts ...world.Option) (replay.Result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, err
	}
	if data.Version != replay.Version {
		return replay.Result{}, fmt.Errorf("replay: unsupported version %q (want %q)", data.Version, replay.Version)
	}
	return replay.Run(*data, cfg.Tuning, cfg.Levels, opts...), nil
}

func printResult(w io.Writer, r replay.Result) {
	outcome := "incomplete"
	switch {
	case r.Won:
		outcome = "won"
	case r.GameOver:
		outcome = "game over"
	}

	titles := make([]string, 0, len(r.Achievements))
	for _, id := range r.Achievements {
		titles = append(titles, id.Title())
	}

	fmt.Fprintf(w, "Run:          %s\n", r.RunID)
	fmt.Fprintf(w, "Frames:       %d\n", r.Frames)
	fmt.Fprintf(w, "Outcome:      %s\n", outcome)
	fmt.Fprintf(w, "Level:        %d\n", r.Level)
	fmt.Fprintf(w, "Score:        %d\n", r.Score)
	fmt.Fprintf(w, "Health:       %d\n", r.Health)
	if len(titles) == 0 {
		fmt.Fprintln(w, "Achievements: none")
		return
	}
	fmt.Fprintf(w, "Achievements: %s\n", strings.Join(titles, ", "))
}
