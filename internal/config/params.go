// Package config loads scoring parameters from parameter files.
//
// Two formats are read. The classic format has one "KEY value" per line:
//
//	# comment
//	LABELED            1
//	CUTOFF_LEN         40
//	DELETE_LABEL       TOP
//	DELETE_LABEL       -NONE-
//	EQ_LABEL           ADVP PRT
//
// Files ending in .yaml or .yml are read as YAML with the same keys in
// lower case (see File).
package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"

	evalb "github.com/jamesainslie/go-evalb"
	"github.com/jamesainslie/go-evalb/equiv"
)

// Load reads the parameter file at path into cfg, choosing the format
// by extension. Values not present in the file are left unchanged.
func Load(path string, cfg *evalb.Config, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("can't open parameter file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = ReadYAML(f, cfg)
	default:
		err = ReadParams(f, cfg, logger)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("loaded parameters",
		"path", path,
		"labeled", cfg.Labeled,
		"cutoff_len", cfg.LengthCutoff,
		"max_error", cfg.MaxErrors,
		"delete_label", cfg.DeleteLabels,
		"eq_label", pairStrings(cfg.LabelEquiv),
		"eq_word", pairStrings(cfg.WordEquiv),
	)
	return nil
}

func pairStrings(r *equiv.Registry) []string {
	return lo.Map(r.Pairs(), func(p equiv.Pair, _ int) string {
		return p.A + "=" + p.B
	})
}

// ReadParams reads the classic parameter format. Unknown keys and bad
// values are logged and skipped; only read errors are returned.
func ReadParams(r io.Reader, cfg *evalb.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	ensureRegistries(cfg)

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRightFunc(sc.Text(), isSpace)
		if strings.HasPrefix(text, "#") || len(text) < 3 {
			continue
		}

		key, value := text, ""
		if i := strings.IndexFunc(text, isSpace); i >= 0 {
			key, value = text[:i], strings.TrimLeftFunc(text[i:], isSpace)
		}
		log := logger.With("line", line, "key", key)
		if value == "" {
			log.Warn("empty value in parameter file")
			continue
		}

		if err := setParam(cfg, key, value); err != nil {
			log.Warn("ignoring parameter", "error", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read parameters: %w", err)
	}
	return nil
}

func setParam(cfg *evalb.Config, key, value string) error {
	switch key {
	case "DEBUG":
		n, err := atoi(value)
		if err != nil {
			return err
		}
		cfg.Debug = n != 0
	case "MAX_ERROR":
		n, err := atoi(value)
		if err != nil {
			return err
		}
		cfg.MaxErrors = n
	case "CUTOFF_LEN":
		n, err := atoi(value)
		if err != nil {
			return err
		}
		cfg.LengthCutoff = n
	case "LABELED":
		n, err := atoi(value)
		if err != nil {
			return err
		}
		cfg.Labeled = n != 0
	case "DELETE_LABEL":
		cfg.DeleteLabels = append(cfg.DeleteLabels, value)
	case "DELETE_LABEL_FOR_LENGTH":
		cfg.DeleteLabelsForLength = append(cfg.DeleteLabelsForLength, value)
	case "EQ_LABEL":
		a, b, err := pair(key, value)
		if err != nil {
			return err
		}
		cfg.LabelEquiv.Add(a, b)
	case "EQ_WORD":
		a, b, err := pair(key, value)
		if err != nil {
			return err
		}
		cfg.WordEquiv.Add(a, b)
	default:
		return fmt.Errorf("unknown keyword %q", key)
	}
	return nil
}

func pair(key, value string) (string, string, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("%s requires two values, got %d", key, len(fields))
	}
	return fields[0], fields[1], nil
}

func atoi(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return n, nil
}

func ensureRegistries(cfg *evalb.Config) {
	if cfg.LabelEquiv == nil {
		cfg.LabelEquiv = equiv.New()
	}
	if cfg.WordEquiv == nil {
		cfg.WordEquiv = equiv.New()
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
