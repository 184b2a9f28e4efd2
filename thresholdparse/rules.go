package thresholdparse

import "ionparse/segment"

// Rule is a named predicate over a candidate Segment. A Segment is kept
// only if every configured Rule returns true for it (logical AND).
type Rule func(segment.Segment) bool

// MinDuration keeps segments whose duration exceeds seconds.
func MinDuration(seconds float64) Rule {
	return func(s segment.Segment) bool { return s.Duration() > seconds }
}

// MaxDuration keeps segments whose duration is below seconds.
func MaxDuration(seconds float64) Rule {
	return func(s segment.Segment) bool { return s.Duration() < seconds }
}

// MinCurrent keeps segments whose minimum sample exceeds v.
func MinCurrent(v float64) Rule {
	return func(s segment.Segment) bool { return s.Min() > v }
}

// MaxCurrent keeps segments whose maximum sample is below v.
func MaxCurrent(v float64) Rule {
	return func(s segment.Segment) bool { return s.Max() < v }
}

// DefaultRules mirrors the reference implementation's defaults: events
// longer than one second, with current never dropping below -0.5 and
// never reaching the masking threshold.
func DefaultRules(threshold float64) []Rule {
	return []Rule{
		MinDuration(1),
		MinCurrent(-0.5),
		MaxCurrent(threshold),
	}
}
