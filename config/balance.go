package config

import (
	"fmt"
	"unicode/utf8"
)

// Mode selects the balancing strategy.
type Mode string

const (
	// ModeUp replicates minority labels up to the majority size.
	ModeUp Mode = "up"
	// ModeDown subsamples majority labels down to the minority size.
	ModeDown Mode = "down"
)

// LastColumn as LabelColumn selects the last column of every sample.
const LastColumn = -1

// BalanceConfig describes one balancing run over a CSV sample file.
type BalanceConfig struct {
	// LabelColumn is the index of the label; LastColumn means the last one.
	LabelColumn int `json:"label_column" yaml:"label_column"`
	// Mode is ModeUp or ModeDown.
	Mode Mode `json:"mode" yaml:"mode"`
	// Seed feeds the random generator; 0 selects the fixed default seed.
	Seed int64 `json:"seed" yaml:"seed"`
	// OrderedGroups and OrderedDraws map onto sampling.DownsampleOptions.
	OrderedGroups bool `json:"ordered_groups" yaml:"ordered_groups"`
	OrderedDraws  bool `json:"ordered_draws" yaml:"ordered_draws"`
	// Header marks the first CSV record as column names.
	Header bool `json:"header" yaml:"header"`
	// Delimiter is the single-character CSV field separator.
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// DefaultBalanceConfig returns the defaults: label in the last column,
// up-sampling, default seed, comma-separated, no header.
func DefaultBalanceConfig() BalanceConfig {
	return BalanceConfig{
		LabelColumn: LastColumn,
		Mode:        ModeUp,
		Delimiter:   ",",
	}
}

// Validate checks the mode plus everything ValidateInput checks.
func (c BalanceConfig) Validate() error {
	switch c.Mode {
	case ModeUp, ModeDown:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	return c.ValidateInput()
}

// ValidateInput checks only the fields needed to read and label samples:
// label column and delimiter.
func (c BalanceConfig) ValidateInput() error {
	if c.LabelColumn < LastColumn {
		return fmt.Errorf("%w: label column %d", ErrInvalidConfig, c.LabelColumn)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter %q must be one character", ErrInvalidConfig, c.Delimiter)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune, ',' if unset.
func (c BalanceConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// ResolveLabelColumn turns LastColumn into a concrete index for the given
// sample arity.
func (c BalanceConfig) ResolveLabelColumn(arity int) int {
	if c.LabelColumn == LastColumn {
		return arity - 1
	}
	return c.LabelColumn
}
