package compose

// Package compose implements the per-proteome composition engine: it folds
// every residue of every FASTA record in one input file into running totals
// and derives the N/C/S-ARSC ratios and average residue molecular weight
// once at the end. Counts accumulate as integers; division to floating point
// happens only at derivation, so precision does not drift with proteome size.

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/stsnsn/ASTUR/internal/fasta"
	"github.com/stsnsn/ASTUR/internal/residue"
)

// Result holds the derived metrics for one input file. Err is set on read
// or decode failure; a Result with Err != "" carries zeroed metrics and is
// never included in tabular or summary output.
type Result struct {
	Genome        string
	NARSC         float64
	CARSC         float64
	SARSC         float64
	AvgResMW      float64
	AAComposition map[rune]float64
	TotalAALength uint64
	Skipped       uint64
	Err           string
}

// accumulator is the per-file running state. It is owned by exactly one
// worker for the lifetime of one ProcessReader call.
type accumulator struct {
	total   uint64
	counts  map[rune]uint64
	nAtoms  uint64
	cAtoms  uint64
	sAtoms  uint64
	mass    float64
	skipped uint64
}

func (a *accumulator) add(r rune) {
	c, ok := residue.Lookup(r)
	if !ok {
		// ambiguity codes, stop markers and gaps are skipped entirely:
		// they count toward neither the sums nor the reported length
		a.skipped++
		return
	}
	a.total++
	a.counts[r]++
	a.nAtoms += uint64(c.N)
	a.cAtoms += uint64(c.C)
	a.sAtoms += uint64(c.S)
	a.mass += c.Mass
}

func (a *accumulator) result(genome string, aaComposition bool) Result {
	res := Result{Genome: genome, TotalAALength: a.total, Skipped: a.skipped}
	if a.total > 0 {
		n := float64(a.total)
		res.NARSC = float64(a.nAtoms) / n
		res.CARSC = float64(a.cAtoms) / n
		res.SARSC = float64(a.sAtoms) / n
		res.AvgResMW = a.mass / n
	}
	if aaComposition {
		res.AAComposition = make(map[rune]float64, 20)
		for _, code := range residue.Codes() {
			if a.total > 0 {
				res.AAComposition[code] = float64(a.counts[code]) / float64(a.total)
			} else {
				res.AAComposition[code] = 0
			}
		}
	}
	return res
}

// ProcessReader folds a whole FASTA stream into one Result. The entire
// proteome shares one accumulator, so longer proteins contribute
// proportionally more weight. Zero records is a valid, zero-valued outcome.
func ProcessReader(genome string, r io.Reader, aaComposition bool) Result {
	records, err := fasta.Parse(r)
	if err != nil {
		return Result{Genome: genome, Err: fmt.Sprintf("read failure: %v", err)}
	}
	acc := accumulator{counts: make(map[rune]uint64, 20)}
	for _, rec := range records {
		for _, res := range rec.Sequence {
			acc.add(unicode.ToUpper(res))
		}
	}
	return acc.result(genome, aaComposition)
}

// ProcessFile opens path (plain or gzip) and runs ProcessReader on it. Any
// open or decompression failure is reported on the Result rather than
// returned, so one bad file never aborts a batch.
func ProcessFile(genome, path string, aaComposition bool) Result {
	rc, err := fasta.Open(path)
	if err != nil {
		return Result{Genome: genome, Err: fmt.Sprintf("read failure: %v", err)}
	}
	defer rc.Close()
	return ProcessReader(genome, rc, aaComposition)
}

// FilterByLength drops results whose TotalAALength falls outside [min, max].
// A negative bound is disabled. Error results pass through unconditionally.
func FilterByLength(results []Result, min, max int) []Result {
	kept := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Err != "" {
			kept = append(kept, r)
			continue
		}
		if min >= 0 && r.TotalAALength < uint64(min) {
			continue
		}
		if max >= 0 && r.TotalAALength > uint64(max) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// genome id is the file name with compression and FASTA extensions removed
func genomeID(name string) string {
	name = strings.TrimSuffix(name, ".gz")
	for _, ext := range []string{".faa", ".fasta", ".fa"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
