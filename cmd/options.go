package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the BEAGLE options optimise would benchmark on this host",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := interruptible()
		defer stop()

		options, err := newLister().Options(ctx)
		if err != nil {
			logrus.Fatalf("Listing options failed: %v", err)
		}
		for _, o := range options {
			fmt.Fprintln(cmd.OutOrStdout(), o)
		}
	},
}
