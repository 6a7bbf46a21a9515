package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	evalb "github.com/jamesainslie/go-evalb"
)

const collins = `##------------------------------------------##
## Debug mode                               ##
##------------------------------------------##
DEBUG 0

MAX_ERROR 10
CUTOFF_LEN 40

LABELED 1

DELETE_LABEL TOP
DELETE_LABEL -NONE-
DELETE_LABEL ,
DELETE_LABEL :
DELETE_LABEL_FOR_LENGTH -NONE-

EQ_LABEL ADVP PRT
EQ_WORD  Mr. Mister
`

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestReadParams(t *testing.T) {
	var logs bytes.Buffer
	cfg := evalb.Config{}

	err := ReadParams(strings.NewReader(collins), &cfg, quietLogger(&logs))
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 10, cfg.MaxErrors)
	assert.Equal(t, 40, cfg.LengthCutoff)
	assert.True(t, cfg.Labeled)
	assert.Equal(t, []string{"TOP", "-NONE-", ",", ":"}, cfg.DeleteLabels)
	assert.Equal(t, []string{"-NONE-"}, cfg.DeleteLabelsForLength)
	assert.True(t, cfg.LabelEquiv.Equal("PRT", "ADVP"))
	assert.True(t, cfg.WordEquiv.Equal("Mister", "Mr."))
	assert.Empty(t, logs.String())
}

func TestReadParams_KeepsUnsetValues(t *testing.T) {
	cfg := evalb.DefaultConfig()

	err := ReadParams(strings.NewReader("CUTOFF_LEN 25\n"), &cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.LengthCutoff)
	assert.Equal(t, evalb.DefaultMaxErrors, cfg.MaxErrors)
	assert.True(t, cfg.Labeled)
}

func TestReadParams_BadLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		log  string
	}{
		{"unknown key", "COLOR blue", "unknown keyword"},
		{"bad number", "MAX_ERROR ten", "invalid number"},
		{"eq with one value", "EQ_LABEL ADVP", "requires two values"},
		{"eq with three values", "EQ_WORD a b c", "requires two values"},
		{"missing value", "LABELED", "empty value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			cfg := evalb.DefaultConfig()

			err := ReadParams(strings.NewReader(tt.line+"\n"), &cfg, quietLogger(&logs))
			require.NoError(t, err)

			assert.Contains(t, logs.String(), tt.log)
			assert.Contains(t, logs.String(), "line=1")
		})
	}
}

func TestReadParams_SkipsShortLinesAndComments(t *testing.T) {
	var logs bytes.Buffer
	cfg := evalb.DefaultConfig()

	input := "#LABELED 0\nX\n\n  \nLABELED 0\n"
	err := ReadParams(strings.NewReader(input), &cfg, quietLogger(&logs))
	require.NoError(t, err)

	assert.False(t, cfg.Labeled)
	assert.Empty(t, logs.String())
}

func TestReadYAML(t *testing.T) {
	input := `
debug: true
max_error: 3
cutoff_len: 30
labeled: false
delete_label: [TOP, "-NONE-"]
delete_label_for_length: ["-NONE-"]
eq_label:
  - [ADVP, PRT]
eq_word:
  - [Mr., Mister]
`
	cfg := evalb.DefaultConfig()

	require.NoError(t, ReadYAML(strings.NewReader(input), &cfg))

	assert.True(t, cfg.Debug)
	assert.Equal(t, 3, cfg.MaxErrors)
	assert.Equal(t, 30, cfg.LengthCutoff)
	assert.False(t, cfg.Labeled)
	assert.Equal(t, []string{"TOP", "-NONE-"}, cfg.DeleteLabels)
	assert.Equal(t, []string{"-NONE-"}, cfg.DeleteLabelsForLength)
	assert.True(t, cfg.LabelEquiv.Equal("ADVP", "PRT"))
	assert.True(t, cfg.WordEquiv.Equal("Mr.", "Mister"))
}

func TestReadYAML_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "colour: blue\n"},
		{"bad pair", "eq_label:\n  - [ADVP]\n"},
		{"wrong type", "max_error: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := evalb.DefaultConfig()
			assert.Error(t, ReadYAML(strings.NewReader(tt.input), &cfg))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	prm := filepath.Join(dir, "COLLINS.prm")
	require.NoError(t, os.WriteFile(prm, []byte(collins), 0o600))

	yml := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("cutoff_len: 12\n"), 0o600))

	t.Run("classic", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

		cfg := evalb.DefaultConfig()
		require.NoError(t, Load(prm, &cfg, logger))
		assert.Equal(t, []string{"TOP", "-NONE-", ",", ":"}, cfg.DeleteLabels)
		assert.Contains(t, logs.String(), "loaded parameters")
		assert.Contains(t, logs.String(), "ADVP=PRT")
		assert.Contains(t, logs.String(), "Mister=Mr.")
	})

	t.Run("yaml", func(t *testing.T) {
		cfg := evalb.DefaultConfig()
		require.NoError(t, Load(yml, &cfg, nil))
		assert.Equal(t, 12, cfg.LengthCutoff)
	})

	t.Run("missing", func(t *testing.T) {
		cfg := evalb.DefaultConfig()
		err := Load(filepath.Join(dir, "nope.prm"), &cfg, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
