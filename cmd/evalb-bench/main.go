// Command evalb-bench compares the bracketing of several systems against
// one gold file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"

	evalb "github.com/jamesainslie/go-evalb"
	"github.com/jamesainslie/go-evalb/internal/config"
	"github.com/jamesainslie/go-evalb/internal/corpus"
	"github.com/jamesainslie/go-evalb/internal/logger"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	Gold      string `short:"g" long:"gold" value-name:"FILE" description:"gold file (required)"`
	ParamFile string `short:"p" long:"params" value-name:"FILE" description:"parameter file"`
	Cutoff    *int   `short:"c" long:"cutoff" value-name:"N" description:"cut-off length for the len<=N columns (default 40)"`
	Skip      int    `short:"s" long:"skip" value-name:"N" description:"skip the first N lines of every file"`
	Unlabeled bool   `short:"u" long:"unlabeled" description:"compare spans only, ignoring labels"`
	Workers   int    `short:"j" long:"workers" value-name:"N" default:"1" description:"sentences compared in parallel"`
	Sweep     bool   `long:"sweep" description:"report every system at a range of length cutoffs"`
	SweepMin  int    `long:"sweep-min" value-name:"N" default:"10" description:"sweep minimum cutoff"`
	SweepMax  int    `long:"sweep-max" value-name:"N" default:"100" description:"sweep maximum cutoff"`
	SweepStep int    `long:"sweep-step" value-name:"N" default:"10" description:"sweep step"`
	LogLevel  string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn" description:"log level"`
	Version   bool   `short:"v" long:"version" description:"display the version and exit"`
}

// system is the scored output of one test file.
type system struct {
	Name    string
	Summary *evalb.Summary
	Results []*evalb.SentenceResult
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
	parser.Name = "evalb-bench"
	parser.Usage = "[OPTIONS] -g gold-file test-file..."

	tests, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			_, _ = fmt.Fprintln(stdout, err)
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "evalb-bench: %v\n", err)
		return 1
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "evalb-bench %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	if opts.Gold == "" || len(tests) == 0 {
		_, _ = fmt.Fprintln(stderr, "evalb-bench: -g and at least one test file required")
		parser.WriteHelp(stderr)
		return 1
	}

	log := logger.New(stderr, opts.LogLevel)

	cfg := evalb.DefaultConfig()
	if opts.ParamFile != "" {
		if err := config.Load(opts.ParamFile, &cfg, log); err != nil {
			log.Error("load parameters", "error", err)
			return 1
		}
	}
	if opts.Cutoff != nil {
		cfg.LengthCutoff = *opts.Cutoff
	}
	if opts.Unlabeled {
		cfg.Labeled = false
	}

	ev := evalb.New(cfg,
		evalb.WithWorkers(opts.Workers),
		evalb.WithSkip(opts.Skip),
		evalb.WithLogger(log),
	)

	var systems []system
	for _, path := range tests {
		sys, err := evaluate(ctx, ev, opts.Gold, path)
		if err != nil {
			log.Error("skipping system", "system", path, "error", err)
			continue
		}
		systems = append(systems, sys)
	}
	if len(systems) == 0 {
		return 1
	}

	if opts.Sweep {
		printSweep(stdout, systems, evalb.SweepCutoffs(opts.SweepMin, opts.SweepMax, opts.SweepStep))
	} else {
		printComparison(stdout, systems, cfg.LengthCutoff)
	}
	return 0
}

// evaluate scores one test file. Sentence errors are tolerated up to
// the configured maximum; anything that stops the run fails the system.
func evaluate(ctx context.Context, ev *evalb.Evaluator, gold, test string) (system, error) {
	files, err := corpus.Open(gold, test)
	if err != nil {
		return system{}, err
	}
	defer func() { _ = files.Close() }()

	var results []*evalb.SentenceResult
	sum, err := ev.Run(ctx, files.Gold, files.Test, func(r *evalb.SentenceResult) {
		results = append(results, r)
	})
	if err != nil {
		return system{}, err
	}

	return system{
		Name:    strings.TrimSuffix(filepath.Base(test), filepath.Ext(test)),
		Summary: sum,
		Results: results,
	}, nil
}

func printComparison(w io.Writer, systems []system, cutoff int) {
	_, _ = fmt.Fprintf(w, "System Comparison (len<=%d in brackets)\n", cutoff)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 86))
	_, _ = fmt.Fprintf(w, "%-20s %-6s %-8s %-8s %-16s %-8s %-8s %-6s\n",
		"System", "Sent.", "Recall", "Prec.", "F1", "Complete", "Tagging", "Errors")

	for _, s := range systems {
		all, cut := s.Summary.All, s.Summary.Cutoff
		_, _ = fmt.Fprintf(w, "%-20s %-6d %-8.2f %-8.2f %-16s %-8.2f %-8.2f %-6d\n",
			s.Name, all.Sentences, all.Recall(), all.Precision(),
			fmt.Sprintf("%.2f (%.2f)", all.FMeasure(), cut.FMeasure()),
			all.CompleteMatch(), all.TagAccuracy(), s.Summary.Errors)
	}

	_, _ = fmt.Fprintln(w, strings.Repeat("-", 86))
	best := lo.MaxBy(systems, func(a, b system) bool {
		return a.Summary.All.FMeasure() > b.Summary.All.FMeasure()
	})
	_, _ = fmt.Fprintf(w, "Best: %s (F1: %.2f)\n", best.Name, best.Summary.All.FMeasure())
}

func printSweep(w io.Writer, systems []system, cutoffs []int) {
	for i, s := range systems {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "Cutoff Sweep: %s\n", s.Name)
		_, _ = fmt.Fprintln(w, strings.Repeat("-", 50))
		_, _ = fmt.Fprintf(w, "%-8s %-6s %-8s %-8s %-8s %-8s\n", "Len<=", "Sent.", "Recall", "Prec.", "F1", "Cross")

		for _, r := range evalb.Sweep(s.Results, cutoffs) {
			a := r.Aggregate
			_, _ = fmt.Fprintf(w, "%-8d %-6d %-8.2f %-8.2f %-8.2f %-8.2f\n",
				r.Cutoff, a.Sentences, a.Recall(), a.Precision(), a.FMeasure(), a.AverageCrossing())
		}
	}
}
