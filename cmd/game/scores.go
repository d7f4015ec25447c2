package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/skyquest/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Args:  cobra.NoArgs,
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	printScores(cmd.OutOrStdout(), runs)
	return nil
}

func printScores(w io.Writer, runs []storage.Run) {
	fmt.Fprintln(w, "High Scores - Sky Quest")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w, "Play 'game play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-4s  %-5s  %s\n", "Rank", "Score", "Level", "Won", "Ach.", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-4s  %-5s  %s\n", "----", "-----", "-----", "---", "----", "----")
	for i, r := range runs {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-4s  %-5d  %s\n",
			i+1, r.Score, r.Level, won, r.Achievements, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
