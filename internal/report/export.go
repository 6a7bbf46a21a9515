package report

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	evalb "github.com/jamesainslie/go-evalb"
)

// Export formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatProto = "proto"
)

// ErrUnknownFormat is returned for an export format other than json or proto.
var ErrUnknownFormat = errors.New("report: unknown format")

// Struct converts a summary and its sentence results into a
// google.protobuf.Struct. results may be nil.
func Struct(s *evalb.Summary, results []*evalb.SentenceResult) (*structpb.Struct, error) {
	sentences := make([]any, 0, len(results))
	for _, r := range results {
		sentences = append(sentences, sentenceFields(r))
	}

	st, err := structpb.NewStruct(map[string]any{
		"cutoff_length": s.CutoffLength,
		"errors":        s.Errors,
		"all":           aggregateFields(s.All),
		"cutoff":        aggregateFields(s.Cutoff),
		"sentences":     sentences,
	})
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return st, nil
}

// Export writes the summary and results to w as protojson ("json") or
// binary protobuf ("proto").
func Export(w io.Writer, format string, s *evalb.Summary, results []*evalb.SentenceResult) error {
	st, err := Struct(s, results)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
		data = append(data, '\n')
	case FormatProto:
		data, err = proto.Marshal(st)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

func aggregateFields(a evalb.Aggregate) map[string]any {
	return map[string]any{
		"sentences":            a.Sentences,
		"error_sentences":      a.ErrorSentences,
		"skip_sentences":       a.SkipSentences,
		"valid_sentences":      a.ValidSentences(),
		"gold_brackets":        a.GoldBrackets,
		"test_brackets":        a.TestBrackets,
		"matched_brackets":     a.Matched,
		"words":                a.Words,
		"correct_tags":         a.CorrectTags,
		"recall":               a.Recall(),
		"precision":            a.Precision(),
		"f_measure":            a.FMeasure(),
		"complete_match":       a.CompleteMatch(),
		"average_crossing":     a.AverageCrossing(),
		"no_crossing":          a.NoCrossingRate(),
		"two_or_less_crossing": a.TwoOrLessCrossingRate(),
		"tagging_accuracy":     a.TagAccuracy(),
	}
}

func sentenceFields(r *evalb.SentenceResult) map[string]any {
	m := map[string]any{
		"id":            r.ID,
		"status":        r.Status.String(),
		"length":        r.Length,
		"words":         r.Words,
		"gold_brackets": r.GoldBrackets,
		"test_brackets": r.TestBrackets,
		"matched":       r.Matched,
		"crossing":      r.Crossing,
		"correct_tags":  r.CorrectTags,
		"recall":        r.Recall(),
		"precision":     r.Precision(),
		"f_measure":     r.FMeasure(),
	}
	if r.Err != nil {
		m["error"] = r.Err.Error()
	}
	return m
}
