package evalb

import (
	"log/slog"
)

// Option configures an Evaluator.
type Option func(*options)

type options struct {
	workers int
	skip    int
	retain  bool
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		workers: 1,
		logger:  slog.Default(),
	}
}

// WithWorkers sets how many sentence pairs are compared concurrently
// (default: 1). Results are still aggregated and reported in file order.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSkip skips the first n lines of both files (default: 0).
func WithSkip(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.skip = n
		}
	}
}

// WithRetainTrees keeps the parsed gold and test sentences on each
// SentenceResult, for debug dumps and unmatched-bracket listings.
func WithRetainTrees(retain bool) Option {
	return func(o *options) {
		o.retain = retain
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
