// Package segsplit implements the recursive statistical splitter: the core
// of the ionparse library. Given a signal range, it recursively locates
// breakpoints such that every resulting segment is well explained by one
// of two Gaussian models (constant mean, "stepwise"; or linear trend with
// Gaussian residuals, "slanted"), subject to a minimum per-sample gain and
// min/max width bounds.
package segsplit

import (
	"ionparse/moments"
	"ionparse/segment"
)

// Splitter is a configured instance of the recursive statistical splitter.
// It owns no state beyond its Config; all scratch state (the cumulative
// moments table) is confined to a single Parse call.
type Splitter struct {
	cfg Config
}

// New validates cfg and returns a ready-to-use Splitter. Invalid
// configuration is reported here, not at Parse time.
func New(cfg Config) (*Splitter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Splitter{cfg: cfg}, nil
}

// Config returns the splitter's active configuration.
func (sp *Splitter) Config() Config { return sp.cfg }

// Parse segments the full signal.
func (sp *Splitter) Parse(signal []float64) ([]segment.Segment, error) {
	return sp.ParseRange(signal, 0, -1)
}

// ParseRange segments signal[start:end]. Negative start/end count from the
// end of the signal using the n+1 convention of the reference
// implementation (so end=-1 means the full length n); out-of-range values
// are clipped into [0, n].
func (sp *Splitter) ParseRange(signal []float64, start, end int) ([]segment.Segment, error) {
	n := len(signal)
	if start < 0 {
		start += n + 1
	}
	if end < 0 {
		end += n + 1
	}
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if start >= end {
		return nil, nil
	}

	table := moments.Build(signal, sp.cfg.SplitterKind == Slanted)
	breaks := sp.segmentCumulative(table, start, end)

	bounds := make([]int, 0, len(breaks)+2)
	bounds = append(bounds, start)
	bounds = append(bounds, breaks...)
	bounds = append(bounds, end)

	segments := make([]segment.Segment, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		a, b := bounds[i], bounds[i+1]
		segments = append(segments, segment.New(signal[a:b], a))
	}
	return segments, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// segmentCumulative returns the interior breakpoints for signal[start:end],
// scanning overlapping windows of width WindowWidth to localize each split
// rather than scanning the whole range.
func (sp *Splitter) segmentCumulative(table *moments.Table, start, end int) []int {
	cfg := sp.cfg
	step := cfg.WindowWidth / 2
	if step < 1 {
		step = 1
	}

	splitAt := -1
	for pseudostart := start; pseudostart < end-2*cfg.MinWidth; pseudostart += step {
		if pseudostart > start+cfg.MaxWidth {
			// Scanned a long way with no split: force one at max_width and
			// recurse only on the suffix. The prefix becomes a terminal
			// segment no longer than max_width by construction; it is not
			// recursed into again (load-bearing for the width invariant).
			forced := min(start+cfg.MaxWidth, end-cfg.MinWidth)
			if cfg.OnForcedSplit != nil {
				cfg.OnForcedSplit()
			}
			right := sp.segmentCumulative(table, forced, end)
			out := make([]int, 0, len(right)+1)
			out = append(out, forced)
			out = append(out, right...)
			return out
		}

		pseudoend := min(end, pseudostart+cfg.WindowWidth)
		if x, ok := sp.bestSplit(table, pseudostart, pseudoend); ok {
			splitAt = x
			break
		}
	}

	if splitAt < 0 {
		if end-start <= cfg.MaxWidth {
			return nil
		}
		splitAt = min(start+cfg.MaxWidth, end-cfg.MinWidth)
		if cfg.OnForcedSplit != nil {
			cfg.OnForcedSplit()
		}
	}

	left := sp.segmentCumulative(table, start, splitAt)
	right := sp.segmentCumulative(table, splitAt, end)
	out := make([]int, 0, len(left)+1+len(right))
	out = append(out, left...)
	out = append(out, splitAt)
	out = append(out, right...)
	return out
}

// bestSplit scans every candidate cut in [a+MinWidth, b-MinWidth] and
// returns the one maximizing gain over cost(a,b), if any beats the
// absolute gain threshold MinGainPerSample*WindowWidth. Ties are broken in
// favor of the earlier candidate, since only a strictly greater gain
// replaces the running best.
func (sp *Splitter) bestSplit(table *moments.Table, a, b int) (x int, ok bool) {
	if b-a < 2*sp.cfg.MinWidth {
		return 0, false
	}
	minGain := sp.cfg.MinGainPerSample * float64(sp.cfg.WindowWidth)
	costWhole := sp.segmentCost(table, a, b)

	bestGain := minGain
	bestX := -1
	for cut := a + sp.cfg.MinWidth; cut <= b-sp.cfg.MinWidth; cut++ {
		gain := costWhole - sp.segmentCost(table, a, cut) - sp.segmentCost(table, cut, b)
		if gain > bestGain {
			bestGain = gain
			bestX = cut
		}
	}
	if bestX < 0 {
		return 0, false
	}
	return bestX, true
}

// segmentCost computes length * f(variance), where variance is the
// constant-mean residual variance for the stepwise model or the linear-fit
// residual variance for the slanted model, and f is the natural log when
// UseLog is set, or the identity otherwise.
func (sp *Splitter) segmentCost(table *moments.Table, a, b int) float64 {
	if a >= b {
		return 0
	}
	var v float64
	if sp.cfg.SplitterKind == Slanted {
		v = table.LR(a, b).VarResid
	} else {
		v = table.Variance(a, b)
	}
	length := float64(b - a)
	if sp.cfg.UseLog {
		return length * moments.LogCost(v)
	}
	return length * v
}
