// Package moments implements the cumulative-statistics table that makes
// O(1) segment mean/variance/regression queries possible over a fixed
// signal. It is scratch state: build it once per parse call, query it
// freely, discard it at the end of the call.
package moments

import "math"

// Table holds prefix sums over a signal of length n, each of length n+1, so
// that any sum over a half-open range [a,b) is cum[b]-cum[a].
type Table struct {
	n      int
	cum    []float64 // cum[i]   = sum_{k<i} s[k]
	cum2   []float64 // cum2[i]  = sum_{k<i} s[k]^2
	cumCT  []float64 // cumCT[i] = sum_{k<i} k*s[k]; only built when withCT
	withCT bool
}

// Build constructs a Table over signal. withLinearTrend additionally builds
// the k*s[k] prefix sum required by LR, at the cost of one more pass; the
// slanted splitter needs it, the stepwise splitter does not.
func Build(signal []float64, withLinearTrend bool) *Table {
	n := len(signal)
	t := &Table{
		n:      n,
		cum:    make([]float64, n+1),
		cum2:   make([]float64, n+1),
		withCT: withLinearTrend,
	}
	for i, v := range signal {
		t.cum[i+1] = t.cum[i] + v
		t.cum2[i+1] = t.cum2[i] + v*v
	}
	if withLinearTrend {
		t.cumCT = make([]float64, n+1)
		for i, v := range signal {
			t.cumCT[i+1] = t.cumCT[i] + float64(i)*v
		}
	}
	return t
}

// Len returns the signal length the Table was built over.
func (t *Table) Len() int { return t.n }

// Mean returns the arithmetic mean of signal[a:b]. Returns 0 for an empty
// range (a >= b).
func (t *Table) Mean(a, b int) float64 {
	if a >= b {
		return 0
	}
	return (t.cum[b] - t.cum[a]) / float64(b-a)
}

// Mean2 returns the mean of the squared samples over signal[a:b].
func (t *Table) Mean2(a, b int) float64 {
	if a >= b {
		return 0
	}
	return (t.cum2[b] - t.cum2[a]) / float64(b-a)
}

// Variance returns the population variance of signal[a:b], floored at 0 to
// guard against tiny negative values produced by floating-point
// cancellation in mean2 - mean^2.
func (t *Table) Variance(a, b int) float64 {
	if a >= b {
		return 0
	}
	m := t.Mean(a, b)
	v := t.Mean2(a, b) - m*m
	if v < 0 {
		return 0
	}
	return v
}

// MeanCT returns the mean of k*signal[k] over k in [a,b). Requires the
// Table to have been built with withLinearTrend.
func (t *Table) MeanCT(a, b int) float64 {
	if a >= b || !t.withCT {
		return 0
	}
	return (t.cumCT[b] - t.cumCT[a]) / float64(b-a)
}

// MeanT returns the mean index over [a,b): a + (b-a-1)/2.
func (t *Table) MeanT(a, b int) float64 {
	return float64(a) + float64(b-a-1)/2
}

// MeanT2 returns the mean of k^2 over k in [a,b).
func (t *Table) MeanT2(a, b int) float64 {
	af, bf := float64(a), float64(b)
	return (2*bf*bf + bf*(2*af-3) + 2*af*af - 3*af + 1) / 6
}

// Regression is the result of an ordinary least squares fit of signal[a:b]
// against its sample index: signal[k] =~ Alpha + Beta*k.
type Regression struct {
	Alpha, Beta float64
	VarResid    float64
}

// LR performs an O(1) least-squares fit of signal[a:b] against the sample
// index from the prefix sums, returning alpha, beta, and the mean squared residual
// (floored at 0). Requires the Table to have been built with
// withLinearTrend; returns the zero Regression otherwise.
func (t *Table) LR(a, b int) Regression {
	if a >= b || !t.withCT {
		return Regression{}
	}
	xyBar := t.MeanCT(a, b)
	yBar := t.Mean(a, b)
	xBar := t.MeanT(a, b)
	x2Bar := t.MeanT2(a, b)

	denom := x2Bar - xBar*xBar
	var beta float64
	if denom != 0 {
		beta = (xyBar - xBar*yBar) / denom
	}
	alpha := yBar - beta*xBar

	y2Bar := t.Mean2(a, b)
	varResid := y2Bar - 2*alpha*yBar - 2*beta*xyBar + alpha*alpha + 2*alpha*beta*xBar + beta*beta*x2Bar
	if varResid < 0 {
		varResid = 0
	}
	return Regression{Alpha: alpha, Beta: beta, VarResid: varResid}
}

// LogCost replaces log(v) for a non-positive variance with a large negative
// constant, guaranteeing that a split whose residual variance collapsed to
// zero (e.g. a perfectly flat sub-segment) is never penalized against by
// the log-cost comparison, while a genuinely zero-gain split is still
// rejected by the gain threshold. The constant is a power of two, so
// length*LogCost(0) is exact for any integer length and the sentinel terms
// of a split whose parts all have zero variance cancel to exactly zero gain.
func LogCost(v float64) float64 {
	if v <= 0 {
		return -0x1p900
	}
	return math.Log(v)
}
