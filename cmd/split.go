package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/whip-phylo/whip/splitter"
)

var splitNodes int

var splitCmd = &cobra.Command{
	Use:   "split <job.xml>",
	Short: "Split a BEAST XML file into several files that can run in parallel",
	Long: "Divides the taxa and alignment of a BEAST XML file into contiguous groups and writes " +
		"split_<N>.xml next to it for each group, with dimension parameters and log file names adjusted.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nodes := cfg.Split.Nodes
		if cmd.Flags().Changed("nodes") || cmd.Flags().Changed("files") {
			nodes = splitNodes
		}
		written, err := splitter.Split(args[0], nodes)
		if err != nil {
			logrus.Fatalf("Split failed: %v", err)
		}
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	},
}

func init() {
	splitCmd.Flags().IntVar(&splitNodes, "nodes", 2, "How many xml files to produce; usually the number of computers to run on")
	splitCmd.Flags().IntVar(&splitNodes, "files", 2, "Alias for --nodes")
}
