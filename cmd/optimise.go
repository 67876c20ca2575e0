package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/whip-phylo/whip/optimiser"
)

var (
	optimiseExclude []string
	auditPath       string
)

var optimiseCmd = &cobra.Command{
	Use:     "optimise <job.xml>",
	Aliases: []string{"optimize"},
	Short:   "Estimate the job's runtime under every BEAGLE option and rank them",
	Long: "Runs beast once per available -beagle_CPU/-beagle_SSE/-beagle_GPU combination, " +
		"stopping each run at the first hours/million states figure, and prints the options fastest first.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exclude := cfg.Beagle.Exclude
		if cmd.Flags().Changed("exclude") {
			exclude = optimiseExclude
		}

		stream, closeAudit := openAudit(auditPath)
		defer closeAudit()

		ctx, stop := interruptible()
		defer stop()

		sweep := &optimiser.Sweep{
			Estimator: newEstimator(stream),
			Options:   newLister().Options,
			Stream:    stream,
		}
		runs, err := sweep.RunAll(ctx, args[0], exclude)
		if err != nil {
			closeAudit()
			logrus.Fatalf("Optimise failed: %v", err)
		}
		printRanking(cmd.OutOrStdout(), runs)
	},
}

// openAudit opens the audit sink; "" or "-" is stdout.
func openAudit(path string) (io.Writer, func()) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		logrus.Fatalf("Failed to open audit file: %v", err)
	}
	closed := false
	return f, func() {
		if closed {
			return
		}
		closed = true
		if err := f.Close(); err != nil {
			logrus.Warnf("closing audit file %s: %v", path, err)
		}
	}
}

func printRanking(w io.Writer, runs []optimiser.Run) {
	fmt.Fprintln(w, "=== BEAGLE options, fastest first ===")
	for i, r := range runs {
		fmt.Fprintf(w, "%2d. %-22s (generated in %s)  %s\n",
			i+1, r.Outcome, optimiser.FormatDuration(r.Elapsed.Hours()), r.Option)
	}
	sum := optimiser.Summarize(runs)
	if sum.Best == nil {
		fmt.Fprintf(w, "No option produced an estimate (%d tried)\n", sum.Runs)
		return
	}
	fmt.Fprintf(w, "Best: %s at %s; %d of %d options failed; benchmarking took %s\n",
		sum.Best.Option, sum.Best.Outcome, sum.FailedCount, sum.Runs,
		optimiser.FormatDuration(sum.TotalElapsed.Hours()))
}

func init() {
	optimiseCmd.Flags().StringArrayVar(&optimiseExclude, "exclude", nil, "Skip options containing this text (can be repeated)")
	optimiseCmd.Flags().StringVar(&auditPath, "audit", "", "Write beast output and estimates to this file instead of stdout")
}
