package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/strata/config"
	"github.com/katalvlaran/strata/csvio"
	"github.com/katalvlaran/strata/sampling"
)

func countCmd(root *rootOptions) *cobra.Command {
	f := &balanceFlags{}
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print label frequencies of a CSV sample file",
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
			err = runCount(in, cmd.OutOrStdout(), cfg, logger)
			if cerr := closeIn(); err == nil && cerr != nil {
				err = fmt.Errorf("close input: %w", cerr)
			}
			return err
		},
	}
	f.register(cmd, false)
	return cmd
}

// runCount writes one "label<TAB>count" row per label, sorted by label text.
func runCount(in io.Reader, out io.Writer, cfg config.BalanceConfig, logger *zap.Logger) error {
	_, samples, err := csvio.ReadSamples(in, csvOptions(cfg))
	if err != nil {
		return err
	}
	labelCol := 0
	if len(samples) > 0 {
		labelCol = cfg.ResolveLabelColumn(len(samples[0]))
	}
	counts, err := sampling.CountLabels(samples, labelCol)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	logger.Debug("Counted labels", zap.Int("samples", counts.Total()), zap.Int("labels", len(counts)))

	rows := labelRows(counts)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tCOUNT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.text, r.count)
	}
	return tw.Flush()
}

// labelRow is one printed line of the count table.
type labelRow struct {
	text  string
	kind  string
	count int
}

// labelRows orders counts by label text, then by dynamic type, so labels that
// print alike (1 and "1") stay separate rows.
func labelRows(counts sampling.LabelCounts) []labelRow {
	rows := make([]labelRow, 0, len(counts))
	for label, c := range counts {
		rows = append(rows, labelRow{text: fmt.Sprint(label), kind: fmt.Sprintf("%T", label), count: c})
	}
	slices.SortFunc(rows, func(a, b labelRow) int {
		return cmp.Or(cmp.Compare(a.text, b.text), cmp.Compare(a.kind, b.kind))
	})
	return rows
}
