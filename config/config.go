// Package config loads the per-parser tunables the CLI needs from a YAML
// file, the way the reference CLI resolves its settings from tocalls.yaml
// at startup: read once, unmarshal into typed structs, let the caller
// override individual fields afterward.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ionparse/dualthresh"
	"ionparse/segsplit"
	"ionparse/snakebase"
	"ionparse/thresholdparse"
)

// File is the top-level shape of an ionparse YAML configuration file. Any
// section left absent keeps the corresponding parser's DefaultConfig.
type File struct {
	Splitter  *SplitterSection  `yaml:"splitter"`
	Threshold *ThresholdSection `yaml:"threshold"`
	Snakebase *SnakebaseSection `yaml:"snakebase"`
	DualThresh *DualThreshSection `yaml:"dual_threshold"`
}

// SplitterSection mirrors segsplit.Config's YAML-facing fields.
type SplitterSection struct {
	MinWidth         *int     `yaml:"min_width"`
	MaxWidth         *int     `yaml:"max_width"`
	WindowWidth      *int     `yaml:"window_width"`
	MinGainPerSample *float64 `yaml:"min_gain_per_sample"`
	UseLog           *bool    `yaml:"use_log"`
	Splitter         *string  `yaml:"splitter"`
}

// ThresholdSection mirrors thresholdparse.Config's YAML-facing fields.
type ThresholdSection struct {
	Threshold *float64 `yaml:"threshold"`
}

// SnakebaseSection mirrors snakebase.Config's YAML-facing fields.
type SnakebaseSection struct {
	Threshold    *float64 `yaml:"threshold"`
	MergerThresh *float64 `yaml:"merger_threshold"`
}

// DualThreshSection mirrors dualthresh.Config's YAML-facing fields.
type DualThreshSection struct {
	LowThresh    *float64 `yaml:"low_threshold"`
	HighThresh   *float64 `yaml:"high_threshold"`
	MergerThresh *float64 `yaml:"merger_threshold"`
}

// Load reads and parses a YAML configuration file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &f, nil
}

// SplitterConfig builds a segsplit.Config starting from segsplit.
// DefaultConfig and overriding whichever fields the YAML file set.
func (f *File) SplitterConfig() (segsplit.Config, error) {
	cfg := segsplit.DefaultConfig()
	if f == nil || f.Splitter == nil {
		return cfg, nil
	}
	s := f.Splitter
	opts := map[string]any{}
	if s.MinWidth != nil {
		opts["min_width"] = *s.MinWidth
	}
	if s.MaxWidth != nil {
		opts["max_width"] = *s.MaxWidth
	}
	if s.WindowWidth != nil {
		opts["window_width"] = *s.WindowWidth
	}
	if s.MinGainPerSample != nil {
		opts["min_gain_per_sample"] = *s.MinGainPerSample
	}
	if s.UseLog != nil {
		opts["use_log"] = *s.UseLog
	}
	if s.Splitter != nil {
		opts["splitter"] = *s.Splitter
	}
	if len(opts) == 0 {
		return cfg, nil
	}
	return cfg.Configure(opts)
}

// ThresholdConfig builds a thresholdparse.Config from thresholdparse.
// DefaultConfig, overriding the threshold when the YAML file set one.
func (f *File) ThresholdConfig() thresholdparse.Config {
	cfg := thresholdparse.DefaultConfig()
	if f == nil || f.Threshold == nil {
		return cfg
	}
	if f.Threshold.Threshold != nil {
		cfg.Threshold = *f.Threshold.Threshold
		cfg.Rules = thresholdparse.DefaultRules(cfg.Threshold)
	}
	return cfg
}

// SnakebaseConfig builds a snakebase.Config from snakebase.DefaultConfig,
// overriding whichever fields the YAML file set.
func (f *File) SnakebaseConfig() snakebase.Config {
	cfg := snakebase.DefaultConfig()
	if f == nil || f.Snakebase == nil {
		return cfg
	}
	if f.Snakebase.Threshold != nil {
		cfg.Threshold = *f.Snakebase.Threshold
	}
	if f.Snakebase.MergerThresh != nil {
		cfg.MergerThresh = *f.Snakebase.MergerThresh
	}
	return cfg
}

// DualThreshConfig builds a dualthresh.Config from dualthresh.
// DefaultConfig, overriding whichever fields the YAML file set.
func (f *File) DualThreshConfig() dualthresh.Config {
	cfg := dualthresh.DefaultConfig()
	if f == nil || f.DualThresh == nil {
		return cfg
	}
	if f.DualThresh.LowThresh != nil {
		cfg.LowThresh = *f.DualThresh.LowThresh
	}
	if f.DualThresh.HighThresh != nil {
		cfg.HighThresh = *f.DualThresh.HighThresh
	}
	if f.DualThresh.MergerThresh != nil {
		cfg.MergerThresh = *f.DualThresh.MergerThresh
	}
	return cfg
}
