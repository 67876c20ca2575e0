package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/whip-phylo/whip/beast"
	"github.com/whip-phylo/whip/optimiser"
	"github.com/whip-phylo/whip/optimiser/beagle"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Path to whip.yaml
	beastBin   string // beast executable, overrides beast.binary
	seed       int64  // beast -seed, overrides beast.seed

	// cfg is resolved from configPath and the override flags before any subcommand runs.
	cfg = DefaultConfig()
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "whip",
	Short: "Benchmark BEAGLE options for BEAST jobs and split BEAST XML across machines",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		loaded, err := resolveConfig(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
		// Only explicit flags override the file.
		if cmd.Flags().Changed("beast") {
			loaded.Beast.Binary = beastBin
		}
		if cmd.Flags().Changed("seed") {
			loaded.Beast.Seed = seed
		}
		cfg = loaded
		logrus.Debugf("Using beast=%s seed=%d extra_flags=%v", cfg.Beast.Binary, cfg.Beast.Seed, cfg.Beast.ExtraFlags)
	},
}

// newEstimator builds an Estimator from the resolved config.
func newEstimator(stream io.Writer) *optimiser.Estimator {
	e := optimiser.NewEstimator(stream)
	e.Tool = cfg.Beast.Binary
	e.Seed = cfg.Beast.Seed
	e.ExtraArgs = beast.ToolArgs(cfg.Beast.ExtraFlags)
	return e
}

// newLister builds the option source from the resolved config.
func newLister() *beagle.Lister {
	return &beagle.Lister{
		Tool:       cfg.Beast.Binary,
		Delimiters: cfg.Beagle.ResourceDelimiters,
		CPUCount:   cfg.Beagle.CPUCount,
	}
}

// interruptible returns a context cancelled on Ctrl-C so a running beast is killed.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", DefaultConfigPath, "Path to whip YAML config")
	rootCmd.PersistentFlags().StringVar(&beastBin, "beast", optimiser.DefaultTool, "beast executable")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", optimiser.DefaultSeed, "Seed passed to beast so all runs are comparable")

	rootCmd.AddCommand(optimiseCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(splitCmd)
}
