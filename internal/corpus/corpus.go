// Package corpus reads line-aligned gold and test files.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLen bounds a single tree line.
const maxLineLen = 16 << 20

// ErrLineCountMismatch indicates one file has more non-blank lines than the other.
var ErrLineCountMismatch = errors.New("corpus: number of lines unmatch")

// Pair is one gold line and the aligned test line.
type Pair struct {
	Index int // 1-based, counted after skipped lines
	Gold  string
	Test  string
}

// Reader yields aligned Pairs from two line streams.
type Reader struct {
	gold  *bufio.Scanner
	test  *bufio.Scanner
	skip  int
	index int
	done  bool
}

// NewReader creates a Reader that skips the first skip lines of both streams.
func NewReader(gold, test io.Reader, skip int) *Reader {
	return &Reader{
		gold: newScanner(gold),
		test: newScanner(test),
		skip: skip,
	}
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	return sc
}

// Next returns the next aligned pair, io.EOF when both streams are
// exhausted, or ErrLineCountMismatch when only one is. Trailing blank
// lines on the longer stream are ignored. Skipped lines count toward
// the comparison, so a stream that runs out while skipping is still
// checked against the other.
func (r *Reader) Next() (Pair, error) {
	if r.done {
		return Pair{}, io.EOF
	}
	for ; r.skip > 0; r.skip-- {
		hasGold, hasTest, err := r.scan()
		if err != nil {
			return Pair{}, err
		}
		if !hasGold || !hasTest {
			r.skip = 0
			return Pair{}, r.end(hasGold, hasTest)
		}
	}

	hasGold, hasTest, err := r.scan()
	if err != nil {
		return Pair{}, err
	}
	if !hasGold || !hasTest {
		return Pair{}, r.end(hasGold, hasTest)
	}
	r.index++
	return Pair{Index: r.index, Gold: r.gold.Text(), Test: r.test.Text()}, nil
}

func (r *Reader) scan() (bool, bool, error) {
	hasGold := r.gold.Scan()
	if err := r.gold.Err(); err != nil {
		return false, false, fmt.Errorf("read gold: %w", err)
	}
	hasTest := r.test.Scan()
	if err := r.test.Err(); err != nil {
		return false, false, fmt.Errorf("read test: %w", err)
	}
	return hasGold, hasTest, nil
}

// end finishes the reader once at least one stream is exhausted.
func (r *Reader) end(hasGold, hasTest bool) error {
	r.done = true
	switch {
	case hasGold && !restBlank(r.gold, r.gold.Text()):
		return fmt.Errorf("%w (too many lines in gold file)", ErrLineCountMismatch)
	case hasTest && !restBlank(r.test, r.test.Text()):
		return fmt.Errorf("%w (too many lines in test file)", ErrLineCountMismatch)
	}
	return io.EOF
}

func restBlank(sc *bufio.Scanner, current string) bool {
	if strings.TrimSpace(current) != "" {
		return false
	}
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			return false
		}
	}
	return true
}

// Files holds the open gold and test files.
type Files struct {
	Gold *os.File
	Test *os.File
}

// Open opens both files.
func Open(goldPath, testPath string) (*Files, error) {
	gold, err := os.Open(goldPath)
	if err != nil {
		return nil, fmt.Errorf("can't open gold file: %w", err)
	}
	test, err := os.Open(testPath)
	if err != nil {
		_ = gold.Close()
		return nil, fmt.Errorf("can't open test file: %w", err)
	}
	return &Files{Gold: gold, Test: test}, nil
}

// Close closes both files.
func (f *Files) Close() error {
	return errors.Join(f.Gold.Close(), f.Test.Close())
}
