package corpus

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) ([]Pair, error) {
	t.Helper()
	var pairs []Pair
	for {
		p, err := r.Next()
		if errors.Is(err, io.EOF) {
			return pairs, nil
		}
		if err != nil {
			return pairs, err
		}
		pairs = append(pairs, p)
	}
}

func TestReader_Next(t *testing.T) {
	tests := []struct {
		name    string
		gold    string
		test    string
		skip    int
		want    []Pair
		wantErr error
	}{
		{
			name: "aligned",
			gold: "g1\ng2\n",
			test: "t1\nt2\n",
			want: []Pair{{Index: 1, Gold: "g1", Test: "t1"}, {Index: 2, Gold: "g2", Test: "t2"}},
		},
		{
			name: "no trailing newline",
			gold: "g1\ng2",
			test: "t1\nt2\n",
			want: []Pair{{Index: 1, Gold: "g1", Test: "t1"}, {Index: 2, Gold: "g2", Test: "t2"}},
		},
		{
			name: "empty test line kept",
			gold: "g1\ng2\n",
			test: "\nt2\n",
			want: []Pair{{Index: 1, Gold: "g1", Test: ""}, {Index: 2, Gold: "g2", Test: "t2"}},
		},
		{
			name: "skip",
			gold: "h\ng1\ng2\n",
			test: "h\nt1\nt2\n",
			skip: 1,
			want: []Pair{{Index: 1, Gold: "g1", Test: "t1"}, {Index: 2, Gold: "g2", Test: "t2"}},
		},
		{
			name: "both shorter than skip",
			gold: "h1\nh2\n",
			test: "h1\nh2\n",
			skip: 5,
		},
		{
			name:    "test longer while skipping",
			gold:    "h1\n",
			test:    "h1\nh2\n",
			skip:    5,
			wantErr: ErrLineCountMismatch,
		},
		{
			name:    "gold longer while skipping",
			gold:    "h1\nh2\ng1\n",
			test:    "h1\n",
			skip:    2,
			wantErr: ErrLineCountMismatch,
		},
		{
			name: "trailing blank lines ignored",
			gold: "g1\n\n\n",
			test: "t1\n",
			want: []Pair{{Index: 1, Gold: "g1", Test: "t1"}},
		},
		{
			name:    "too many gold lines",
			gold:    "g1\ng2\n",
			test:    "t1\n",
			want:    []Pair{{Index: 1, Gold: "g1", Test: "t1"}},
			wantErr: ErrLineCountMismatch,
		},
		{
			name:    "too many test lines",
			gold:    "g1\n",
			test:    "t1\n\nt3\n",
			want:    []Pair{{Index: 1, Gold: "g1", Test: "t1"}},
			wantErr: ErrLineCountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.gold), strings.NewReader(tt.test), tt.skip)
			got, err := readAll(t, r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			// Exhausted readers keep returning EOF.
			_, err = r.Next()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestReader_SkipReadError(t *testing.T) {
	r := NewReader(iotest.ErrReader(errors.New("disk gone")), strings.NewReader("t1\n"), 1)

	_, err := r.Next()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read gold: disk gone")
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	gold := filepath.Join(dir, "a.gld")
	test := filepath.Join(dir, "a.tst")
	require.NoError(t, os.WriteFile(gold, []byte("(S (X a))\n"), 0644))
	require.NoError(t, os.WriteFile(test, []byte("(S (X a))\n"), 0644))

	f, err := Open(gold, test)
	require.NoError(t, err)

	pairs, err := readAll(t, NewReader(f.Gold, f.Test, 0))
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
	assert.NoError(t, f.Close())

	_, err = Open(filepath.Join(dir, "missing.gld"), test)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(gold, filepath.Join(dir, "missing.tst"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
