// Package csvio reads and writes sample sets as CSV. Every record becomes a
// sampling.Sample whose elements are the raw field strings.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/strata/sampling"
)

// ErrRagged indicates a record whose field count differs from the first one.
var ErrRagged = errors.New("csvio: records have differing field counts")

// Options controls CSV parsing and rendering.
type Options struct {
	// Delimiter separates fields; ',' when zero.
	Delimiter rune
	// Header marks the first record as column names.
	Header bool
}

// DefaultOptions returns comma-separated options without header.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

func (o Options) comma() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// ReadSamples parses all records from r. With opts.Header the first record is
// returned as header and not as a sample. All records must have the same
// field count.
func ReadSamples(r io.Reader, opts Options) ([]string, []sampling.Sample, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.comma()
	cr.FieldsPerRecord = -1

	var (
		header  []string
		samples []sampling.Sample
		width   = -1
		line    int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csvio: read: %w", err)
		}
		line++
		if width < 0 {
			width = len(rec)
		} else if len(rec) != width {
			return nil, nil, fmt.Errorf("csvio: record %d has %d fields, want %d: %w", line, len(rec), width, ErrRagged)
		}
		if opts.Header && header == nil {
			header = rec
			continue
		}
		s := make(sampling.Sample, len(rec))
		for i, f := range rec {
			s[i] = f
		}
		samples = append(samples, s)
	}
	return header, samples, nil
}

// WriteSamples renders header (if non-empty) and samples to w. Elements are
// formatted with fmt.Sprint.
func WriteSamples(w io.Writer, header []string, samples []sampling.Sample, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.comma()

	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("csvio: write header: %w", err)
		}
	}
	rec := make([]string, 0)
	for i, s := range samples {
		rec = rec[:0]
		for _, e := range s {
			rec = append(rec, fmt.Sprint(e))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csvio: write sample %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvio: flush: %w", err)
	}
	return nil
}
