// Package dualthresh implements the dual-threshold derivative parser: a
// low-pass mask finds candidate transition blocks, a high-pass threshold
// keeps only the blocks with a genuine spike, and the merger prunes
// indistinguishable neighboring states.
package dualthresh

import (
	"math"

	"ionparse/merger"
	"ionparse/segment"
)

// Config holds the tunables for the dual-threshold derivative parser.
type Config struct {
	LowThresh    float64
	HighThresh   float64
	MergerThresh float64
}

// DefaultConfig matches the reference parser's defaults.
func DefaultConfig() Config {
	return Config{LowThresh: 1, HighThresh: 2, MergerThresh: 2.0}
}

// Parser is a configured instance of the dual-threshold derivative parser.
type Parser struct {
	cfg Config
}

// New returns a ready-to-use Parser.
func New(cfg Config) *Parser { return &Parser{cfg: cfg} }

// Parse finds candidate blocks with a low-pass mask on the absolute
// derivative, keeps only those whose peak derivative clears HighThresh,
// then prunes indistinguishable neighboring blocks with the merger.
//
// Deviation from the reference: the reference computes merged tics via
// merger.merge and then immediately discards them, replacing tics with
// the unmerged split points before building segments — a defeats-the-
// purpose bug that leaves the merger's work unused. This parser instead
// carries the merged tics through to segment construction, and compares
// the block's maximum derivative itself against HighThresh rather than
// the index of that maximum (the reference's np.argmax(segment) >
// high_thresh compares a position, not a magnitude).
func (p *Parser) Parse(signal []float64) ([]segment.Segment, error) {
	n := len(signal)
	if n < 2 {
		return nil, nil
	}

	deriv := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		deriv[i] = math.Abs(signal[i+1] - signal[i])
	}

	above := make([]bool, len(deriv))
	for i, d := range deriv {
		above[i] = d > p.cfg.LowThresh
	}

	tics := []int{0}
	for i := 1; i < len(above); i++ {
		if above[i] != above[i-1] {
			tics = append(tics, i)
		}
	}
	tics = append(tics, len(deriv))

	// Blocks above LowThresh start at tics[0] when the derivative starts
	// high and at tics[1] otherwise.
	first := 0
	if !above[0] {
		first = 1
	}
	var splitPoints []int
	for i := first; i+1 < len(tics); i += 2 {
		a, b := tics[i], tics[i+1]
		if a >= b {
			continue
		}
		block := deriv[a:b]
		maxDeriv := block[0]
		for _, v := range block[1:] {
			if v > maxDeriv {
				maxDeriv = v
			}
		}
		if maxDeriv > p.cfg.HighThresh {
			splitPoints = append(splitPoints, a, b)
		}
	}

	merged := merger.Merge(splitPoints, signal, p.cfg.MergerThresh)

	bookended := make([]int, 0, len(merged)+2)
	bookended = append(bookended, 0)
	bookended = append(bookended, merged...)
	bookended = append(bookended, n)

	var out []segment.Segment
	for i := 0; i+1 < len(bookended); i += 2 {
		a, b := bookended[i], bookended[i+1]
		if a >= b {
			continue
		}
		out = append(out, segment.New(signal[a:b], a))
	}
	return out, nil
}
