package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/whip-phylo/whip/optimiser"
)

var estimateFlags []string

var estimateCmd = &cobra.Command{
	Use:   "estimate <job.xml>",
	Short: "Estimate the job's total runtime with one set of beast flags",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stream, closeAudit := openAudit(auditPath)
		defer closeAudit()

		ctx, stop := interruptible()
		defer stop()

		hours, err := newEstimator(stream).Estimate(ctx, args[0], estimateFlags)
		if err != nil {
			closeAudit()
			var failure *optimiser.EstimationFailure
			if errors.As(err, &failure) {
				for _, line := range failure.Tail {
					logrus.Errorf("beast: %s", line)
				}
			}
			logrus.Fatalf("Estimate failed: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Estimated runtime: %s (%.4f hours)\n", optimiser.FormatDuration(hours), hours)
	},
}

func init() {
	estimateCmd.Flags().StringArrayVar(&estimateFlags, "beagle-flag", nil, "beast argument for this run, e.g. --beagle-flag=-beagle_SSE (can be repeated)")
	estimateCmd.Flags().StringVar(&auditPath, "audit", "", "Write beast output to this file instead of stdout")
}
