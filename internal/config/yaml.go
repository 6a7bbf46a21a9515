package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	evalb "github.com/jamesainslie/go-evalb"
)

// File is the YAML form of a parameter file. Unset fields keep their
// current values.
type File struct {
	Debug                *bool      `yaml:"debug"`
	MaxError             *int       `yaml:"max_error"`
	CutoffLen            *int       `yaml:"cutoff_len"`
	Labeled              *bool      `yaml:"labeled"`
	DeleteLabel          []string   `yaml:"delete_label"`
	DeleteLabelForLength []string   `yaml:"delete_label_for_length"`
	EqLabel              [][]string `yaml:"eq_label"`
	EqWord               [][]string `yaml:"eq_word"`
}

// ReadYAML reads a YAML parameter file into cfg.
func ReadYAML(r io.Reader, cfg *evalb.Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read parameters: %w", err)
	}

	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return f.apply(cfg)
}

func (f *File) apply(cfg *evalb.Config) error {
	for _, p := range append(f.EqLabel, f.EqWord...) {
		if len(p) != 2 {
			return fmt.Errorf("equivalence %v: want two values, got %d", p, len(p))
		}
	}
	ensureRegistries(cfg)

	if f.Debug != nil {
		cfg.Debug = *f.Debug
	}
	if f.MaxError != nil {
		cfg.MaxErrors = *f.MaxError
	}
	if f.CutoffLen != nil {
		cfg.LengthCutoff = *f.CutoffLen
	}
	if f.Labeled != nil {
		cfg.Labeled = *f.Labeled
	}
	cfg.DeleteLabels = append(cfg.DeleteLabels, f.DeleteLabel...)
	cfg.DeleteLabelsForLength = append(cfg.DeleteLabelsForLength, f.DeleteLabelForLength...)
	for _, p := range f.EqLabel {
		cfg.LabelEquiv.Add(p[0], p[1])
	}
	for _, p := range f.EqWord {
		cfg.WordEquiv.Add(p[0], p[1])
	}
	return nil
}
