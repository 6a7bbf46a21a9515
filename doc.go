// Package evalb scores bracketed constituency parses against a gold
// treebank: labeled bracket recall and precision, crossing brackets,
// complete matches and tagging accuracy, per sentence and per corpus.
//
// # Quick Start
//
//	cfg := evalb.DefaultConfig()
//	cfg.DeleteLabels = []string{"TOP", "-NONE-", ",", ":", "``", "''", "."}
//	ev := evalb.New(cfg)
//
//	r := ev.Compare(1,
//	    "(S (NP (NN this)) (VP (VBZ is) (NP (DT a) (NN pen))) (. .))",
//	    "(S (NP (NN this)) (VP (VBZ is) (NP (DT a) (NN pen))) (. .))")
//	fmt.Printf("recall %.2f precision %.2f\n", r.Recall(), r.Precision())
//
// # Corpus Runs
//
// Run reads one tree per line from a gold and a test stream and folds
// every sentence into a Summary with two views: all sentences, and
// sentences no longer than Config.LengthCutoff. Sentence errors (length
// or word mismatches, unbalanced brackets) are counted; the run stops
// once more than Config.MaxErrors have been seen.
//
// # Thread Safety
//
// Compare is safe for concurrent use. Run compares sentences on
// WithWorkers goroutines but always aggregates them in file order.
package evalb
