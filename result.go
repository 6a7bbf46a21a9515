package evalb

import "github.com/jamesainslie/go-evalb/tree"

// Status is the outcome of comparing one sentence pair. The numeric
// values are the codes printed in the report's Stat. column.
type Status int

const (
	StatusOK    Status = 0
	StatusError Status = 1
	StatusSkip  Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// SentenceResult holds the scores for one sentence pair. For Error and
// Skip sentences every count except ID and Length is zero.
type SentenceResult struct {
	ID     int
	Status Status
	// Err explains an Error status.
	Err error
	// Length is the gold sentence length used for the cutoff statistics.
	Length       int
	Words        int
	GoldBrackets int
	TestBrackets int
	Matched      int
	Crossing     int
	CorrectTags  int

	// Gold and Test are set only when the Evaluator retains trees.
	Gold *tree.Sentence
	Test *tree.Sentence
}

// Recall returns 100·matched/gold, or 0 with no gold brackets.
func (r *SentenceResult) Recall() float64 { return percent(r.Matched, r.GoldBrackets) }

// Precision returns 100·matched/test, or 0 with no test brackets.
func (r *SentenceResult) Precision() float64 { return percent(r.Matched, r.TestBrackets) }

// FMeasure returns the harmonic mean of recall and precision.
func (r *SentenceResult) FMeasure() float64 { return fMeasure(r.Recall(), r.Precision()) }

// TagAccuracy returns 100·correct tags/words, or 0 with no words.
func (r *SentenceResult) TagAccuracy() float64 { return percent(r.CorrectTags, r.Words) }

// Complete reports whether every gold and test bracket was matched.
func (r *SentenceResult) Complete() bool {
	return r.GoldBrackets == r.TestBrackets && r.TestBrackets == r.Matched
}

func percent(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return 100 * float64(n) / float64(d)
}

func fMeasure(recall, precision float64) float64 {
	if recall+precision > 0 {
		return 2 * recall * precision / (recall + precision)
	}
	return 0
}
