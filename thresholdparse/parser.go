// Package thresholdparse implements the below-threshold event parser: a
// 0/1 mask on the signal, edge detection to find candidate regions, and a
// rule-based filter to keep only the regions that look like real events.
package thresholdparse

import "ionparse/segment"

// Config holds the tunables for the below-threshold event parser.
type Config struct {
	Threshold float64
	Rules     []Rule
}

// DefaultConfig matches the reference parser's defaults: threshold=90 with
// the three default rules from DefaultRules.
func DefaultConfig() Config {
	return Config{Threshold: 90, Rules: DefaultRules(90)}
}

// Parser masks the signal below Threshold, detects edges, and keeps only
// the candidate segments for which every Rule holds.
type Parser struct {
	cfg Config
}

// New returns a ready-to-use Parser. Rules default to DefaultRules(cfg.
// Threshold) when cfg.Rules is nil.
func New(cfg Config) *Parser {
	if cfg.Rules == nil {
		cfg.Rules = DefaultRules(cfg.Threshold)
	}
	return &Parser{cfg: cfg}
}

// Parse masks the signal below Threshold, walks the mask's edges to find
// candidate regions, and keeps only the regions for which every Rule holds.
func (p *Parser) Parse(signal []float64) ([]segment.Segment, error) {
	n := len(signal)
	if n == 0 {
		return nil, nil
	}

	tics := []int{0}
	below := signal[0] < p.cfg.Threshold
	for i := 1; i < n; i++ {
		isBelow := signal[i] < p.cfg.Threshold
		if isBelow != below {
			tics = append(tics, i)
			below = isBelow
		}
	}
	tics = append(tics, n)

	var out []segment.Segment
	for i := 0; i+1 < len(tics); i++ {
		a, b := tics[i], tics[i+1]
		seg := segment.New(signal[a:b], a)
		if p.passesAll(seg) {
			out = append(out, seg)
		}
	}
	return out, nil
}

func (p *Parser) passesAll(s segment.Segment) bool {
	for _, rule := range p.cfg.Rules {
		if !rule(s) {
			return false
		}
	}
	return true
}
