package evalb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/stream"

	"github.com/jamesainslie/go-evalb/internal/corpus"
	"github.com/jamesainslie/go-evalb/tree"
)

// Evaluator scores test bracketings against gold bracketings.
// Compare is safe for concurrent use; Config must not change afterwards.
type Evaluator struct {
	cfg     Config
	parser  *tree.Parser
	del     tree.LabelSet
	workers int
	skip    int
	retain  bool
	logger  *slog.Logger
}

// New creates an Evaluator for cfg.
func New(cfg Config, opts ...Option) *Evaluator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Evaluator{
		cfg:     cfg,
		parser:  cfg.parser(),
		del:     tree.NewLabelSet(cfg.DeleteLabels...),
		workers: o.workers,
		skip:    o.skip,
		retain:  o.retain || cfg.Debug,
		logger:  o.logger,
	}
}

// Config returns the scoring configuration.
func (e *Evaluator) Config() Config { return e.cfg }

// Compare scores one aligned line pair. Problems with the pair are
// reported through the result's Status and Err, never as a panic.
func (e *Evaluator) Compare(id int, goldLine, testLine string) *SentenceResult {
	r := &SentenceResult{ID: id}

	gold, err := e.parser.Parse(goldLine)
	if err != nil {
		r.Status = StatusError
		r.Err = fmt.Errorf("gold: %w", err)
		return r
	}
	r.Length = gold.Length

	test, err := e.parser.Parse(testLine)
	if err != nil {
		r.Status = StatusError
		r.Err = fmt.Errorf("test: %w", err)
		return r
	}

	if e.retain {
		r.Gold, r.Test = gold, test
	}

	if len(test.Terminals) == 0 {
		r.Status = StatusSkip
		return r
	}

	if len(gold.Terminals) != len(test.Terminals) {
		r.Status = StatusError
		r.Err = fmt.Errorf("%w (%d|%d)", ErrLengthMismatch, len(gold.Terminals), len(test.Terminals))
		return r
	}

	for i := range gold.Terminals {
		g, t := gold.Terminals[i].Word, test.Terminals[i].Word
		if !e.cfg.WordEquiv.Equal(g, t) {
			r.Status = StatusError
			r.Err = fmt.Errorf("%w (%s|%s)", ErrWordMismatch, g, t)
			return r
		}
	}

	r.GoldBrackets = Massage(gold.Brackets, e.del, e.cfg.LabelEquiv)
	r.TestBrackets = Massage(test.Brackets, e.del, e.cfg.LabelEquiv)
	r.Matched = Match(gold.Brackets, test.Brackets, e.cfg.Labeled, e.cfg.LabelEquiv)
	r.Crossing = Crossing(gold.Brackets, test.Brackets)
	r.Words = len(gold.Terminals)
	r.CorrectTags = Tag(gold.Terminals, test.Terminals, e.cfg.LabelEquiv)

	return r
}

// Run scores every aligned line pair from gold and test, calling fn (if
// non-nil) with each result in file order.
//
// The returned Summary is never nil and holds the totals of every
// sentence recorded before Run returned. Run stops with ErrTooManyErrors
// once more than Config.MaxErrors errors have been recorded, and with
// ErrCorpusMismatch when the inputs have different line counts.
func (e *Evaluator) Run(ctx context.Context, gold, test io.Reader, fn func(*SentenceResult)) (*Summary, error) {
	sum := NewSummary(e.cfg.LengthCutoff)
	r := corpus.NewReader(gold, test, e.skip)

	if e.workers > 1 {
		return sum, e.runConcurrent(ctx, r, sum, fn)
	}

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		pair, err := r.Next()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		if err != nil {
			return sum, e.fail(sum, err)
		}
		if err := e.record(sum, e.Compare(pair.Index, pair.Gold, pair.Test), fn); err != nil {
			return sum, err
		}
	}
}

// runConcurrent compares pairs on up to e.workers goroutines. Stream
// callbacks run serially in submission order, so the summary and fn see
// sentences exactly as the sequential loop would.
func (e *Evaluator) runConcurrent(ctx context.Context, r *corpus.Reader, sum *Summary, fn func(*SentenceResult)) error {
	s := stream.New().WithMaxGoroutines(e.workers)

	var (
		mu     sync.Mutex
		runErr error
	)
	stopped := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return runErr != nil
	}

	var readErr error
	for !stopped() {
		if err := ctx.Err(); err != nil {
			readErr = err
			break
		}
		pair, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			readErr = err
			break
		}
		s.Go(func() stream.Callback {
			res := e.Compare(pair.Index, pair.Gold, pair.Test)
			return func() {
				mu.Lock()
				defer mu.Unlock()
				if runErr != nil {
					return
				}
				runErr = e.record(sum, res, fn)
			}
		})
	}
	s.Wait()

	if runErr != nil {
		return runErr
	}
	if readErr != nil {
		if ctx.Err() != nil {
			return readErr
		}
		return e.fail(sum, readErr)
	}
	return nil
}

// record adds res to sum and applies the error threshold.
func (e *Evaluator) record(sum *Summary, res *SentenceResult, fn func(*SentenceResult)) error {
	sum.Add(res)
	if fn != nil {
		fn(res)
	}
	if res.Status != StatusError {
		return nil
	}

	sum.Errors++
	e.logger.Warn("sentence error", "sentence", res.ID, "error", res.Err)
	if sum.Errors > e.cfg.MaxErrors {
		return fmt.Errorf("%w: %d errors (max %d)", ErrTooManyErrors, sum.Errors, e.cfg.MaxErrors)
	}
	return nil
}

// fail records a corpus-level error.
func (e *Evaluator) fail(sum *Summary, err error) error {
	if errors.Is(err, ErrCorpusMismatch) {
		sum.Errors++
	}
	e.logger.Error("corpus error", "error", err)
	return err
}
