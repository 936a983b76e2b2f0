package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/strata/config"
	"github.com/katalvlaran/strata/csvio"
	"github.com/katalvlaran/strata/sampling"
)

func balanceCmd(root *rootOptions) *cobra.Command {
	f := &balanceFlags{}
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Write a label-balanced copy of a CSV sample file",
		Long: `Balance groups the input samples by label.

  up    replicates every label up to the most frequent one, then shuffles.
  down  draws from every label as many samples as the rarest one holds.

The same seed always produces the same output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(root.verbose)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			cfg, err := resolveConfig(cmd, root, f, logger)
			if err != nil {
				return err
			}
			in, closeIn, err := openInput(f.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			err = runBalance(in, &buf, cfg, logger)
			if cerr := closeIn(); err == nil && cerr != nil {
				err = fmt.Errorf("close input: %w", cerr)
			}
			if err != nil {
				return err
			}
			return writeOutput(f.output, cmd.OutOrStdout(), buf.Bytes())
		},
	}
	f.register(cmd, true)
	return cmd
}

// runBalance reads samples from in, balances them according to cfg and
// writes the result to out.
func runBalance(in io.Reader, out io.Writer, cfg config.BalanceConfig, logger *zap.Logger) error {
	header, samples, err := csvio.ReadSamples(in, csvOptions(cfg))
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("balance: %w", sampling.ErrEmptyInput)
	}
	labelCol := cfg.ResolveLabelColumn(len(samples[0]))

	counts, err := sampling.CountLabels(samples, labelCol)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	logger.Info("Read samples",
		zap.Int("samples", len(samples)),
		zap.Int("labels", len(counts)),
		zap.Int("label_column", labelCol))
	for label, c := range counts {
		logger.Debug("Label frequency", zap.Any("label", label), zap.Int("count", c))
	}

	rng := sampling.NewRand(cfg.Seed)
	var balanced []sampling.Sample
	switch cfg.Mode {
	case config.ModeUp:
		balanced, err = sampling.Upsample(samples, labelCol, rng)
	case config.ModeDown:
		balanced, err = sampling.Downsample(samples, labelCol, rng, sampling.DownsampleOptions{
			OrderedGroups: cfg.OrderedGroups,
			OrderedDraws:  cfg.OrderedDraws,
		})
	}
	if err != nil {
		return err
	}

	logger.Info("Balanced samples",
		zap.String("mode", string(cfg.Mode)),
		zap.Int64("seed", cfg.Seed),
		zap.Int("samples", len(balanced)))
	return csvio.WriteSamples(out, header, balanced, csvOptions(cfg))
}

// openInput returns stdin for "-" and the opened file otherwise.
func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "-" {
		return stdin, func() error { return nil }, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return fh, fh.Close, nil
}

// writeOutput writes data to stdout for "-" or to path. A file that could not
// be written completely is removed.
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		os.Remove(path) //nolint:errcheck
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
