package evalb

// Aggregate accumulates sentence results. All fields are plain counters,
// so aggregates can be merged in any order.
type Aggregate struct {
	Sentences         int
	ErrorSentences    int
	SkipSentences     int
	GoldBrackets      int
	TestBrackets      int
	Matched           int
	CompleteSentences int
	Crossing          int
	NoCrossing        int
	TwoOrLessCrossing int
	Words             int
	CorrectTags       int
}

// Add folds one sentence into the aggregate. Error and Skip sentences
// only count toward the sentence totals.
func (a *Aggregate) Add(r *SentenceResult) {
	a.Sentences++
	switch r.Status {
	case StatusError:
		a.ErrorSentences++
		return
	case StatusSkip:
		a.SkipSentences++
		return
	}

	a.GoldBrackets += r.GoldBrackets
	a.TestBrackets += r.TestBrackets
	a.Matched += r.Matched
	if r.Complete() {
		a.CompleteSentences++
	}
	a.Words += r.Words
	a.Crossing += r.Crossing
	if r.Crossing == 0 {
		a.NoCrossing++
	}
	if r.Crossing <= 2 {
		a.TwoOrLessCrossing++
	}
	a.CorrectTags += r.CorrectTags
}

// Merge adds the counters of b.
func (a *Aggregate) Merge(b Aggregate) {
	a.Sentences += b.Sentences
	a.ErrorSentences += b.ErrorSentences
	a.SkipSentences += b.SkipSentences
	a.GoldBrackets += b.GoldBrackets
	a.TestBrackets += b.TestBrackets
	a.Matched += b.Matched
	a.CompleteSentences += b.CompleteSentences
	a.Crossing += b.Crossing
	a.NoCrossing += b.NoCrossing
	a.TwoOrLessCrossing += b.TwoOrLessCrossing
	a.Words += b.Words
	a.CorrectTags += b.CorrectTags
}

// ValidSentences excludes error and skip sentences.
func (a Aggregate) ValidSentences() int {
	return a.Sentences - a.ErrorSentences - a.SkipSentences
}

func (a Aggregate) Recall() float64    { return percent(a.Matched, a.GoldBrackets) }
func (a Aggregate) Precision() float64 { return percent(a.Matched, a.TestBrackets) }
func (a Aggregate) FMeasure() float64  { return fMeasure(a.Recall(), a.Precision()) }

func (a Aggregate) CompleteMatch() float64 {
	return percent(a.CompleteSentences, a.ValidSentences())
}

// AverageCrossing returns crossing brackets per valid sentence.
func (a Aggregate) AverageCrossing() float64 {
	if n := a.ValidSentences(); n > 0 {
		return float64(a.Crossing) / float64(n)
	}
	return 0
}

func (a Aggregate) NoCrossingRate() float64 {
	return percent(a.NoCrossing, a.ValidSentences())
}

func (a Aggregate) TwoOrLessCrossingRate() float64 {
	return percent(a.TwoOrLessCrossing, a.ValidSentences())
}

func (a Aggregate) TagAccuracy() float64 { return percent(a.CorrectTags, a.Words) }

// Summary is the corpus-level outcome of a run.
type Summary struct {
	// All covers every sentence.
	All Aggregate
	// Cutoff covers sentences with Length <= CutoffLength.
	Cutoff       Aggregate
	CutoffLength int
	// Errors counts error sentences plus corpus-level errors.
	Errors int
}

// NewSummary creates an empty Summary for the given cutoff.
func NewSummary(cutoff int) *Summary {
	return &Summary{CutoffLength: cutoff}
}

// Add folds one sentence into both views.
func (s *Summary) Add(r *SentenceResult) {
	s.All.Add(r)
	if r.Length <= s.CutoffLength {
		s.Cutoff.Add(r)
	}
}
