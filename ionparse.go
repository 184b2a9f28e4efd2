// Package ionparse is the top-level family of ionic-current segmentation
// parsers: a small set of tagged-variant constructors, each returning a
// Parser backed by one of the concrete implementations in the sibling
// packages.
package ionparse

import (
	"ionparse/dualthresh"
	"ionparse/memoryparse"
	"ionparse/segment"
	"ionparse/segsplit"
	"ionparse/snakebase"
	"ionparse/thresholdparse"
)

// Parser decomposes a signal into an ordered, non-overlapping list of
// Segments.
type Parser interface {
	Parse(signal []float64) ([]segment.Segment, error)
}

// NewStepwiseSplitter returns a recursive statistical splitter fitting a
// constant-mean model to each candidate segment.
func NewStepwiseSplitter(cfg segsplit.Config) (Parser, error) {
	cfg.SplitterKind = segsplit.Stepwise
	return segsplit.New(cfg)
}

// NewSlantedSplitter returns a recursive statistical splitter fitting a
// linear-trend-with-Gaussian-residual model to each candidate segment.
func NewSlantedSplitter(cfg segsplit.Config) (Parser, error) {
	cfg.SplitterKind = segsplit.Slanted
	return segsplit.New(cfg)
}

// NewThresholdParser returns a below-threshold event parser.
func NewThresholdParser(cfg thresholdparse.Config) Parser {
	return thresholdparse.New(cfg)
}

// NewSnakebaseParser returns the peak-to-peak state parser.
func NewSnakebaseParser(cfg snakebase.Config) Parser {
	return snakebase.New(cfg)
}

// NewDualThresholdParser returns the dual-threshold derivative parser.
func NewDualThresholdParser(cfg dualthresh.Config) Parser {
	return dualthresh.New(cfg)
}

// NewMemoryParser returns a parser that replays a fixed list of
// (start, end) spans rather than discovering them.
func NewMemoryParser(starts, ends []int) (Parser, error) {
	return memoryparse.New(starts, ends)
}
