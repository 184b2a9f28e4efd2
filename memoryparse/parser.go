// Package memoryparse implements the memory-replay parser: segment
// boundaries are supplied up front rather than discovered, which makes it
// useful for replaying a previously computed or hand-labeled split.
package memoryparse

import (
	"fmt"

	"ionparse/segment"
)

// Parser replays a fixed list of [start, end) boundary pairs against
// whatever signal it is given.
type Parser struct {
	starts []int
	ends   []int
}

// New returns a Parser that will emit one segment per (starts[i], ends[i])
// pair, in order. It returns an error if the two slices differ in length.
func New(starts, ends []int) (*Parser, error) {
	if len(starts) != len(ends) {
		return nil, fmt.Errorf("memoryparse: starts and ends must have equal length, got %d and %d", len(starts), len(ends))
	}
	s := make([]int, len(starts))
	e := make([]int, len(ends))
	copy(s, starts)
	copy(e, ends)
	return &Parser{starts: s, ends: e}, nil
}

// Parse replays the recorded boundary pairs against signal. Boundaries
// outside [0, len(signal)] are clamped; a pair where start >= end after
// clamping is skipped.
func (p *Parser) Parse(signal []float64) ([]segment.Segment, error) {
	n := len(signal)
	out := make([]segment.Segment, 0, len(p.starts))
	for i := range p.starts {
		a, b := clamp(p.starts[i], n), clamp(p.ends[i], n)
		if a >= b {
			continue
		}
		out = append(out, segment.New(signal[a:b], a))
	}
	return out, nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
