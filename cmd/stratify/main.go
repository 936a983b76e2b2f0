// stratify balances the label distribution of CSV sample files.
//
// Usage:
//
//	stratify count   -i samples.csv --label 1
//	stratify balance -i samples.csv -o balanced.csv --mode down --seed 7 --ordered
//	stratify balance -i samples.csv --config balance.yaml
//
// Flags override values read from --config. Logs go to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "stratify",
		Short: "Balance class distributions of CSV sample files",
		Long: `stratify reads samples from CSV, groups them by a label column and
writes an up-sampled or down-sampled set with equal label frequencies.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Configuration file (JSON or YAML), resolved via home dir, current dir, literal path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(balanceCmd(opts))
	rootCmd.AddCommand(countCmd(opts))
	return rootCmd
}

// newLogger builds the stderr production logger; verbose lowers the level
// to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return logConfig.Build()
}
