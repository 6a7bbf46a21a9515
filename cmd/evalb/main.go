// Command evalb scores the bracketing of a test file against a gold file.
//
// Usage:
//
//	evalb [-dhuv] [-c n] [-e n] [-s n] [-j n] [-p param_file] gold-file test-file
//
// The exit status is the number of error sentences (at most 125), or 1
// when the run could not complete.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"

	evalb "github.com/jamesainslie/go-evalb"
	"github.com/jamesainslie/go-evalb/internal/config"
	"github.com/jamesainslie/go-evalb/internal/corpus"
	"github.com/jamesainslie/go-evalb/internal/logger"
	"github.com/jamesainslie/go-evalb/internal/report"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const maxExitErrors = 125

type options struct {
	ParamFile     string `short:"p" long:"params" value-name:"FILE" description:"parameter file (classic KEY value format, or .yaml)"`
	Debug         bool   `short:"d" long:"debug" description:"dump terminals and brackets for each sentence"`
	MaxErrors     *int   `short:"e" long:"max-errors" value-name:"N" description:"number of errors to kill (default 10)"`
	Cutoff        *int   `short:"c" long:"cutoff" value-name:"N" description:"cut-off length for statistics (default 40)"`
	Skip          int    `short:"s" long:"skip" value-name:"N" description:"skip the first N lines of both files"`
	Unlabeled     bool   `short:"u" long:"unlabeled" description:"compare spans only, ignoring labels"`
	Workers       int    `short:"j" long:"workers" value-name:"N" default:"1" description:"sentences compared in parallel"`
	ShowUnmatched bool   `long:"show-unmatched" description:"list spurious and unrecalled brackets after each sentence"`
	Format        string `short:"f" long:"format" choice:"text" choice:"json" choice:"proto" default:"text" description:"output format"`
	LogLevel      string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn" description:"log level"`
	Version       bool   `short:"v" long:"version" description:"display the version and exit"`

	Args struct {
		Gold string `positional-arg-name:"gold-file"`
		Test string `positional-arg-name:"test-file"`
	} `positional-args:"yes"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "evalb"
	parser.Usage = "[OPTIONS] gold-file test-file"

	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			_, _ = fmt.Fprintln(stdout, err)
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "evalb: %v\n", err)
		return 1
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "evalb %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	if opts.Args.Gold == "" || opts.Args.Test == "" {
		_, _ = fmt.Fprintln(stderr, "evalb: gold-file and test-file are required")
		parser.WriteHelp(stderr)
		return 1
	}

	log := logger.New(stderr, opts.LogLevel)

	cfg, err := loadConfig(&opts, log)
	if err != nil {
		log.Error("load parameters", "error", err)
		return 1
	}

	files, err := corpus.Open(opts.Args.Gold, opts.Args.Test)
	if err != nil {
		log.Error("open corpus", "error", err)
		return 1
	}
	defer func() { _ = files.Close() }()

	ev := evalb.New(cfg,
		evalb.WithWorkers(opts.Workers),
		evalb.WithSkip(opts.Skip),
		evalb.WithRetainTrees(opts.ShowUnmatched),
		evalb.WithLogger(log),
	)

	sum, err := score(ctx, ev, &opts, files, stdout)
	if err != nil {
		log.Error("scoring stopped", "error", err)
		return 1
	}
	return min(sum.Errors, maxExitErrors)
}

// loadConfig applies the parameter file and then any explicit flags.
func loadConfig(opts *options, log *slog.Logger) (evalb.Config, error) {
	cfg := evalb.DefaultConfig()
	if opts.ParamFile != "" {
		if err := config.Load(opts.ParamFile, &cfg, log); err != nil {
			return cfg, err
		}
	}

	if opts.Debug {
		cfg.Debug = true
	}
	if opts.MaxErrors != nil {
		cfg.MaxErrors = *opts.MaxErrors
	}
	if opts.Cutoff != nil {
		cfg.LengthCutoff = *opts.Cutoff
	}
	if opts.Unlabeled {
		cfg.Labeled = false
	}
	return cfg, nil
}

// score runs the evaluation and writes the report. The totals are
// written even when the run stops early.
func score(ctx context.Context, ev *evalb.Evaluator, opts *options, files *corpus.Files, w io.Writer) (*evalb.Summary, error) {
	if opts.Format != report.FormatText {
		var results []*evalb.SentenceResult
		sum, runErr := ev.Run(ctx, files.Gold, files.Test, func(r *evalb.SentenceResult) {
			results = append(results, r)
		})
		return sum, errors.Join(runErr, report.Export(w, opts.Format, sum, results))
	}

	rep := report.NewText(w)
	rep.Debug = ev.Config().Debug
	rep.ShowUnmatched = opts.ShowUnmatched

	rep.Header()
	sum, runErr := ev.Run(ctx, files.Gold, files.Test, rep.Sentence)
	rep.Totals(sum.All)
	rep.Summary(sum)
	return sum, errors.Join(runErr, rep.Err())
}
