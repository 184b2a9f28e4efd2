// Package snakebase implements the peak-to-peak state parser: a
// derivative-cumsum state detector that resets its running sum wherever
// the derivative goes quiet, then splits on a threshold crossing and
// prunes indistinguishable neighbors with the merger.
package snakebase

import (
	"math"

	"ionparse/merger"
	"ionparse/segment"
)

// Config holds the tunables for the peak-to-peak state parser.
type Config struct {
	Threshold    float64
	MergerThresh float64
}

// DefaultConfig matches the reference parser's defaults.
func DefaultConfig() Config {
	return Config{Threshold: 1.5, MergerThresh: 2.0}
}

// Parser is a configured instance of the peak-to-peak state parser.
type Parser struct {
	cfg Config
}

// New returns a ready-to-use Parser.
func New(cfg Config) *Parser { return &Parser{cfg: cfg} }

// Parse locates state transitions by tracking the cumulative absolute
// derivative, resetting it wherever the derivative goes quiet, and
// splitting where the running sum crosses Threshold.
func (p *Parser) Parse(signal []float64) ([]segment.Segment, error) {
	n := len(signal)
	if n < 2 {
		return nil, nil
	}

	deriv := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		deriv[i] = math.Abs(signal[i+1] - signal[i])
	}

	quietTics := []int{0}
	for i, d := range deriv {
		if d < 1e-3 {
			quietTics = append(quietTics, i)
		}
	}
	quietTics = append(quietTics, len(deriv))

	cumsum := make([]float64, len(deriv))
	for i := 0; i+1 < len(quietTics); i++ {
		a, b := quietTics[i], quietTics[i+1]
		running := 0.0
		for j := a; j < b; j++ {
			running += deriv[j]
			cumsum[j] = running
		}
	}

	// Unlike the threshold parser's tics, split points here are bare edge
	// positions with no leading/trailing sentinel: the reference feeds
	// exactly these into the merger and reads its output back in
	// odd-indexed pairs, with no [0, ..., n] bookend.
	var splitTics []int
	above := cumsum[0] > p.cfg.Threshold
	for i := 1; i < len(cumsum); i++ {
		isAbove := cumsum[i] > p.cfg.Threshold
		if isAbove != above {
			splitTics = append(splitTics, i)
			above = isAbove
		}
	}

	merged := merger.Merge(splitTics, signal, p.cfg.MergerThresh)

	var out []segment.Segment
	for i := 1; i+1 < len(merged); i += 2 {
		a, b := merged[i], merged[i+1]
		out = append(out, segment.New(signal[a:b], a))
	}
	return out, nil
}
