package output

// Package output renders composition results as tab-separated text. The
// table is the only thing written to the destination; diagnostics belong on
// stderr so the table stays machine-parseable.

import (
	"fmt"
	"io"
	"strings"

	"github.com/stsnsn/ASTUR/internal/compose"
	"github.com/stsnsn/ASTUR/internal/residue"
)

// Options controls the column set and formatting of the table.
type Options struct {
	AAComposition bool // add the 20 per-residue fractions and total length
	DecimalPlaces int  // digits after the decimal point (default 6)
	Header        bool
}

// Write renders results in input order. Results with Err set are omitted
// from the table; callers report them separately.
func Write(w io.Writer, results []compose.Result, opts Options) error {
	places := opts.DecimalPlaces
	if places <= 0 {
		places = 6
	}
	codes := residue.Codes()

	if opts.Header {
		cols := []string{"File", "N_ARSC", "C_ARSC", "S_ARSC", "AvgResMW"}
		if opts.AAComposition {
			for _, c := range codes {
				cols = append(cols, string(c))
			}
			cols = append(cols, "TotalAALength")
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}

	num := func(v float64) string { return fmt.Sprintf("%.*f", places, v) }
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		cols := []string{r.Genome, num(r.NARSC), num(r.CARSC), num(r.SARSC), num(r.AvgResMW)}
		if opts.AAComposition {
			for _, c := range codes {
				cols = append(cols, num(r.AAComposition[c]))
			}
			cols = append(cols, fmt.Sprintf("%d", r.TotalAALength))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	return nil
}
