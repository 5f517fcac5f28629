// Package cli wires the cobra command surface of the zipfian binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexstat/zipfian/internal/logger"
)

var (
	cfgPath     string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "zipfian",
	Short: "Rank-frequency analysis of text documents",
	Long: `Zipfian computes word-frequency statistics for text documents and
fits the inverse-rank model F(r) = C/r to each document's vocabulary
by least squares, reporting the fitted constant, the residual error
and a cross-document comparison.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose logging to stderr")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
