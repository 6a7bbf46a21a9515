package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	penGold    = "(S (NP (NNX this)) (VP (VBX is) (NP (DT a) (NNX pen))) (SYM .))"
	penShifted = "(S (NP (NNX this) (VBX is)) (NP (DT a) (NNX pen)) (SYM .))"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Text(t *testing.T) {
	dir := t.TempDir()
	gold := writeFile(t, dir, "sample.gld", penGold, penGold, penGold)
	test := writeFile(t, dir, "sample.tst", penGold, penShifted, "(S (NN a))")

	code, out, logs := runCLI(t, gold, test)

	assert.Equal(t, 1, code, "one error sentence")
	assert.Contains(t, out, " ID  Len.  Stat. Recal  Prec.")
	assert.Contains(t, out, "   2    5    0   50.00  66.67")
	assert.Contains(t, out, "   3    5    1    0.00   0.00")
	assert.Contains(t, out, "=== Summary ===")
	assert.Contains(t, out, "Number of Error sentence  =      1\n")
	assert.Contains(t, out, "Bracketing Recall         =  75.00\n")
	assert.Contains(t, logs, "length unmatch")
}

func TestRun_Flags(t *testing.T) {
	dir := t.TempDir()
	long := "(S " + strings.Repeat("(NN w) ", 12) + ")"
	gold := writeFile(t, dir, "g", "header", penGold, long)
	test := writeFile(t, dir, "t", "header", penShifted, long)

	t.Run("cutoff and skip", func(t *testing.T) {
		code, out, _ := runCLI(t, "-s", "1", "-c", "10", gold, test)
		require.Equal(t, 0, code)
		assert.Contains(t, out, "\n-- len<=10 --\nNumber of sentence        =      1\n")
		assert.True(t, strings.Contains(out, "\n   1    5    0"), "ids restart after skipped lines")
	})

	t.Run("unlabeled", func(t *testing.T) {
		code, out, _ := runCLI(t, "-s", "1", "-u", gold, test)
		require.Equal(t, 0, code)
		assert.Contains(t, out, "   1    5    0   50.00  66.67")
	})

	t.Run("show unmatched", func(t *testing.T) {
		_, out, _ := runCLI(t, "-s", "1", "--show-unmatched", gold, test)
		assert.Contains(t, out, "produced spurious bracket NP 0 1\n")
		assert.Contains(t, out, "didn't recall gold bracket VP 1 3\n")
	})

	t.Run("debug", func(t *testing.T) {
		_, out, _ := runCLI(t, "-s", "1", "-d", gold, test)
		assert.Contains(t, out, "-<1>---(wn1=  5, bn1=  4)-")
	})

	t.Run("workers", func(t *testing.T) {
		_, seq, _ := runCLI(t, "-s", "1", gold, test)
		_, par, _ := runCLI(t, "-s", "1", "-j", "4", gold, test)
		assert.Equal(t, seq, par)
	})
}

func TestRun_ParamFile(t *testing.T) {
	dir := t.TempDir()
	gold := writeFile(t, dir, "g", "(S (NP-SBJ (-NONE- *)) (VP (VB go) (PRT (RP home))))")
	test := writeFile(t, dir, "t", "(S (VP (VB go) (ADVP (RP home))))")
	prm := writeFile(t, dir, "p.prm",
		"LABELED 1",
		"DELETE_LABEL -NONE-",
		"EQ_LABEL ADVP PRT",
	)

	code, out, _ := runCLI(t, "-p", prm, gold, test)

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Bracketing Recall         = 100.00\n")
	assert.Contains(t, out, "Bracketing Precision      = 100.00\n")
}

func TestRun_TooManyErrors(t *testing.T) {
	dir := t.TempDir()
	gold := writeFile(t, dir, "g", penGold, penGold, penGold)
	test := writeFile(t, dir, "t", "(S (NN a))", "(S (NN a))", penGold)

	code, out, logs := runCLI(t, "-e", "1", gold, test)

	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "too many errors")
	assert.Contains(t, out, "=== Summary ===")
	assert.NotContains(t, out, "\n   3 ")
}

func TestRun_JSON(t *testing.T) {
	dir := t.TempDir()
	gold := writeFile(t, dir, "g", penGold, penGold)
	test := writeFile(t, dir, "t", penGold, penShifted)

	code, out, _ := runCLI(t, "-f", "json", gold, test)
	require.Equal(t, 0, code)

	var st structpb.Struct
	require.NoError(t, protojson.Unmarshal([]byte(out), &st))
	all := st.AsMap()["all"].(map[string]any)
	assert.InDelta(t, 2, all["sentences"], 0)
	assert.InDelta(t, 75.0, all["recall"], 1e-9)
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"help", []string{"-h"}, 0, "gold-file test-file", ""},
		{"version", []string{"-v"}, 0, "evalb dev", ""},
		{"missing files", nil, 1, "", "gold-file and test-file are required"},
		{"bad flag", []string{"--nope", "a", "b"}, 1, "", "unknown flag"},
		{"bad format", []string{"-f", "xml", "a", "b"}, 1, "", "Invalid value"},
		{"missing gold", []string{"/nonexistent/gold", "/nonexistent/test"}, 1, "", "can't open gold file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, logs := runCLI(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(t, logs, tt.wantErr)
			}
		})
	}
}

func TestRun_LineCountMismatch(t *testing.T) {
	dir := t.TempDir()
	gold := writeFile(t, dir, "g", penGold, penGold)
	test := writeFile(t, dir, "t", penGold)

	code, out, logs := runCLI(t, gold, test)

	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "number of lines unmatch")
	assert.Contains(t, out, "Number of sentence        =      1\n")
}

func TestRun_Testdata(t *testing.T) {
	for _, params := range []string{"COLLINS.prm", "params.yaml"} {
		t.Run(params, func(t *testing.T) {
			code, out, _ := runCLI(t,
				"-p", filepath.Join("..", "..", "testdata", params),
				filepath.Join("..", "..", "testdata", "sample.gld"),
				filepath.Join("..", "..", "testdata", "sample.tst"))

			require.Equal(t, 0, code)
			assert.Contains(t, out, "   1    7    0  100.00 100.00     5      5    5      0      6     6   100.00\n")
			assert.Contains(t, out, "   2    5    0  100.00 100.00     4      4    4      0      4     4   100.00\n")
			assert.Contains(t, out, "Number of Valid sentence  =      5\n")
			assert.Contains(t, out, "Bracketing Recall         =  91.67\n")
			assert.Contains(t, out, "Bracketing Precision      = 100.00\n")
			assert.Contains(t, out, "Bracketing FMeasure       =  95.65\n")
			assert.Contains(t, out, "Complete match            =  60.00\n")
			assert.Contains(t, out, "Tagging accuracy          = 100.00\n")
		})
	}
}
