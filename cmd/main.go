package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/stsnsn/ASTUR/internal/compose"
	"github.com/stsnsn/ASTUR/internal/config"
	"github.com/stsnsn/ASTUR/internal/output"
	"github.com/stsnsn/ASTUR/internal/pool"
	"github.com/stsnsn/ASTUR/internal/stats"

	"github.com/charmbracelet/log"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "1.1.0"

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	total := n
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			break
		}
		ts := time.Now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return total, err
		}
	}
	return total, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries that
// inspect the file descriptor (for TTY detection) can work with wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

func main() {
	// CLI flags
	inputFlag := flag.String("in", "", "input .faa/.faa.gz file or directory (may also be given as positional argument)")
	outputFlag := flag.String("out", "", "output TSV file path (optional). If omitted, print to stdout")
	aaFlag := flag.Bool("aa-composition", false, "include amino acid composition ratios and total length in output")
	threadsFlag := flag.Int("threads", 0, "number of worker threads")
	decimalsFlag := flag.Int("decimal-places", 0, "number of decimal places for floating point values (default 6)")
	minLength := flag.Int("min-length", -1, "minimum amino acid length (filter results)")
	maxLength := flag.Int("max-length", -1, "maximum amino acid length (filter results)")
	statsFlag := flag.Bool("stats", false, "print summary statistics to stderr (directory input only)")
	noHeader := flag.Bool("no-header", false, "suppress header line in stdout output")
	configFlag := flag.String("config", "", "path to config.json (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("astur", version)
		return
	}

	// load config (optional file)
	cfg, cerr := config.LoadConfig(*configFlag)

	// merge CLI flags into config (flags override config when provided)
	if *inputFlag != "" {
		cfg.InputPath = *inputFlag
	}
	if *outputFlag != "" {
		cfg.OutputTSV = *outputFlag
	}
	if *aaFlag {
		cfg.AAComposition = true
	}
	if *threadsFlag > 0 {
		cfg.Threads = *threadsFlag
	}
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}
	if *decimalsFlag > 0 {
		cfg.DecimalPlaces = *decimalsFlag
	}
	if cfg.DecimalPlaces <= 0 {
		cfg.DecimalPlaces = 6
	}

	// configure logger output
	var loggerOut io.Writer = os.Stderr
	var logFileHandle *os.File
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			// write to both stderr and file so running interactively still shows logs
			loggerOut = io.MultiWriter(os.Stderr, f)
			logFileHandle = f
			defer func() { _ = logFileHandle.Close() }()
		}
	}
	// If stderr is a terminal-like device, force colors for libraries that honor FORCE_COLOR.
	if fi, err := os.Stderr.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice != 0 {
			_ = os.Setenv("FORCE_COLOR", "1")
		}
	}
	// create logger backed by the timestamping writer and expose Fd so charm.log can detect TTY
	tw := &timestampWriter{w: loggerOut}
	termW := &terminalWriter{w: tw, fd: os.Stderr.Fd()}
	logger := log.New(termW)

	// apply log level from flags/config (flags override config)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "info", "":
			logger.SetLevel(log.InfoLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
			logger.Warn("unknown log_level in config.json, defaulting to info", "provided", cfg.LogLevel)
		}
	}
	if cerr != nil {
		logger.Fatal("failed to parse config", "path", *configFlag, "err", cerr)
	}

	// resolve input: -in flag or a single positional argument, not both
	switch {
	case flag.NArg() > 1:
		logger.Fatal("too many positional arguments; expected one input file or directory")
	case flag.NArg() == 1 && *inputFlag != "":
		logger.Fatal("cannot specify both positional input and -in; use one or the other")
	case flag.NArg() == 1:
		cfg.InputPath = flag.Arg(0)
	}
	if cfg.InputPath == "" {
		logger.Fatal("missing input: provide a .faa/.faa.gz file or directory")
	}

	info, err := os.Stat(cfg.InputPath)
	if err != nil {
		logger.Fatal("cannot read input path", "path", cfg.InputPath, "err", err)
	}
	if *statsFlag && !info.IsDir() {
		logger.Fatal("-stats can only be used with directory input (not single file)")
	}

	inputs, err := compose.Collect(cfg.InputPath)
	if err != nil {
		logger.Fatal("input resolution failed", "err", err)
	}

	logger.Info("starting astur", "version", version, "input", cfg.InputPath, "files", len(inputs), "threads", cfg.Threads)
	logger.Debug("loaded config", "output_tsv", cfg.OutputTSV, "aa_composition", cfg.AAComposition, "decimal_places", cfg.DecimalPlaces, "log_file", cfg.LogFile)

	// parallel map: each worker owns exactly one file at a time; slot i of
	// results always belongs to inputs[i], so output order matches input
	// enumeration order no matter which worker finishes first
	start := time.Now()
	results := make([]compose.Result, len(inputs))
	pool.Map(cfg.Threads, len(inputs), func(i int) {
		results[i] = compose.ProcessFile(inputs[i].Genome, inputs[i].Path, cfg.AAComposition)
	})
	logger.Info("processing finished", "files", len(inputs), "duration_ms", time.Since(start).Milliseconds())

	for _, r := range results {
		if r.Err != "" {
			logger.Warn("file failed, excluded from output", "genome", r.Genome, "err", r.Err)
		} else if r.Skipped > 0 {
			logger.Debug("skipped non-standard residues", "genome", r.Genome, "skipped", r.Skipped, "counted", r.TotalAALength)
		}
	}

	results = compose.FilterByLength(results, *minLength, *maxLength)
	logger.Info("after filtering", "results", len(results))

	if *statsFlag {
		printStats(results, cfg.DecimalPlaces)
	}

	opts := output.Options{
		AAComposition: cfg.AAComposition,
		DecimalPlaces: cfg.DecimalPlaces,
		Header:        true,
	}
	if cfg.OutputTSV != "" {
		f, err := os.Create(cfg.OutputTSV)
		if err != nil {
			logger.Fatal("failed to create output file", "path", cfg.OutputTSV, "err", err)
		}
		if err := output.Write(f, results, opts); err != nil {
			f.Close()
			logger.Fatal("failed to write output", "path", cfg.OutputTSV, "err", err)
		}
		if err := f.Close(); err != nil {
			logger.Fatal("failed to close output file", "path", cfg.OutputTSV, "err", err)
		}
		logger.Info("output written", "path", cfg.OutputTSV)
	} else {
		opts.Header = !*noHeader
		if err := output.Write(os.Stdout, results, opts); err != nil {
			logger.Fatal("failed to write output", "err", err)
		}
	}
}

// printStats renders the four-metric summary table on stderr, away from the
// tabular result stream.
func printStats(results []compose.Result, places int) {
	rep, count := stats.Report(results)
	line := strings.Repeat("=", 70)
	fmt.Fprintln(os.Stderr, line)
	fmt.Fprintln(os.Stderr, center("SUMMARY STATISTICS", 70))
	fmt.Fprintln(os.Stderr, line)
	fmt.Fprintf(os.Stderr, "%-12s %-16s %-16s %-16s %-16s\n", "Metric", "Mean", "Stdev", "Min", "Max")
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 70))
	for _, name := range stats.MetricNames {
		s := rep[name]
		fmt.Fprintf(os.Stderr, "%-12s %-16.*f %-16.*f %-16.*f %-16.*f\n", name, places, s.Mean, places, s.Stdev, places, s.Min, places, s.Max)
	}
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 70))
	fmt.Fprintf(os.Stderr, "%-12s %-16d\n", "Count", count)
	fmt.Fprintln(os.Stderr, line)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
