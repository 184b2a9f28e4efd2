// Package segment defines the immutable Segment value type shared by every
// parser in the ionparse family.
package segment

import (
	"math"
)

// SampleRate is the fixed acquisition rate, in Hz, used to convert a sample
// count into a duration in seconds.
const SampleRate = 100_000

// Segment is an immutable record describing a contiguous half-open range of
// a signal, [Start, Start+len(Current)). The sample data is copied at
// construction so a Segment's lifetime is independent of the source signal
// and it is safe to share across goroutines. Derived summaries are computed
// once at construction and are cheap to read afterward.
type Segment struct {
	start   int
	current []float64

	min, max float64
	mean     float64
	std      float64
}

// New builds a Segment from a slice of the signal starting at sample index
// start. The slice is defensively copied.
func New(current []float64, start int) Segment {
	cp := make([]float64, len(current))
	copy(cp, current)
	seg := Segment{start: start, current: cp}
	seg.computeStats()
	return seg
}

// Start returns the inclusive starting sample index.
func (s Segment) Start() int { return s.start }

// Length returns the number of samples in the segment.
func (s Segment) Length() int { return len(s.current) }

// End returns the exclusive ending sample index.
func (s Segment) End() int { return s.start + len(s.current) }

// Duration returns the elapsed time of the segment in seconds.
func (s Segment) Duration() float64 { return float64(len(s.current)) / SampleRate }

// Current returns a copy of the segment's sample range. Callers may mutate
// the returned slice without affecting the Segment.
func (s Segment) Current() []float64 {
	cp := make([]float64, len(s.current))
	copy(cp, s.current)
	return cp
}

func (s *Segment) computeStats() {
	n := len(s.current)
	if n == 0 {
		return
	}
	s.min, s.max = s.current[0], s.current[0]
	sum := 0.0
	for _, v := range s.current {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
		sum += v
	}
	s.mean = sum / float64(n)

	if n > 1 {
		sumSq := 0.0
		for _, v := range s.current {
			d := v - s.mean
			sumSq += d * d
		}
		s.std = math.Sqrt(sumSq / float64(n))
	}
}

// Min returns the minimum sample value in the segment.
func (s Segment) Min() float64 { return s.min }

// Max returns the maximum sample value in the segment.
func (s Segment) Max() float64 { return s.max }

// Mean returns the arithmetic mean of the segment's samples.
func (s Segment) Mean() float64 { return s.mean }

// Std returns the population standard deviation of the segment's samples.
func (s Segment) Std() float64 { return s.std }
