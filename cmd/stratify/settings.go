package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/strata/config"
	"github.com/katalvlaran/strata/csvio"
)

// balanceFlags mirrors config.BalanceConfig on the command line.
type balanceFlags struct {
	input         string
	output        string
	label         int
	mode          string
	seed          int64
	ordered       bool
	orderedGroups bool
	orderedDraws  bool
	header        bool
	delimiter     string
	// balance is set for commands that resample and therefore need a mode.
	balance bool
}

func (f *balanceFlags) register(cmd *cobra.Command, withBalance bool) {
	defaults := config.DefaultBalanceConfig()
	f.balance = withBalance
	cmd.Flags().StringVarP(&f.input, "input", "i", "-", "Input CSV file, - for stdin")
	cmd.Flags().IntVarP(&f.label, "label", "l", defaults.LabelColumn, "Label column index, -1 for the last column")
	cmd.Flags().BoolVar(&f.header, "header", defaults.Header, "First CSV record holds column names")
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", defaults.Delimiter, "CSV field delimiter")
	if !withBalance {
		return
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "Output CSV file, - for stdout")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(defaults.Mode), "Balancing mode: up, down")
	cmd.Flags().Int64Var(&f.seed, "seed", defaults.Seed, "Random seed, 0 for the fixed default")
	cmd.Flags().BoolVar(&f.ordered, "ordered", false, "Shorthand for --ordered-groups --ordered-draws")
	cmd.Flags().BoolVar(&f.orderedGroups, "ordered-groups", defaults.OrderedGroups, "Down-sampling: emit labels in first-occurrence order")
	cmd.Flags().BoolVar(&f.orderedDraws, "ordered-draws", defaults.OrderedDraws, "Down-sampling: keep input order within a label")
}

// resolveConfig layers defaults, the optional config file and explicitly set
// flags, in that order, and validates the fields the command consumes.
func resolveConfig(cmd *cobra.Command, root *rootOptions, f *balanceFlags, logger *zap.Logger) (config.BalanceConfig, error) {
	cfg := config.DefaultBalanceConfig()
	if root.configFile != "" {
		path, err := config.LoadFromSearchPath(root.configFile, &cfg)
		if err != nil {
			return cfg, err
		}
		logger.Debug("Loaded configuration", zap.String("path", path))
	}

	flags := cmd.Flags()
	if flags.Changed("label") {
		cfg.LabelColumn = f.label
	}
	if flags.Changed("mode") {
		cfg.Mode = config.Mode(f.mode)
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("header") {
		cfg.Header = f.header
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = f.delimiter
	}
	if flags.Changed("ordered-groups") {
		cfg.OrderedGroups = f.orderedGroups
	}
	if flags.Changed("ordered-draws") {
		cfg.OrderedDraws = f.orderedDraws
	}
	if f.ordered {
		cfg.OrderedGroups, cfg.OrderedDraws = true, true
	}

	validate := cfg.ValidateInput
	if f.balance {
		validate = cfg.Validate
	}
	if err := validate(); err != nil {
		return cfg, fmt.Errorf("resolve settings: %w", err)
	}
	return cfg, nil
}

func csvOptions(cfg config.BalanceConfig) csvio.Options {
	return csvio.Options{Delimiter: cfg.DelimiterRune(), Header: cfg.Header}
}
