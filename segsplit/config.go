package segsplit

import (
	"fmt"
)

// Kind selects which Gaussian model the splitter fits to each candidate
// segment: a constant mean ("stepwise") or a linear trend with Gaussian
// residuals ("slanted").
type Kind string

const (
	Stepwise Kind = "stepwise"
	Slanted  Kind = "slanted"
)

// ErrInvalidConfig is wrapped by configuration errors raised at
// construction time; it is fatal to the offending Splitter instance.
var ErrInvalidConfig = fmt.Errorf("segsplit: invalid configuration")

// Config holds the tunables for the recursive statistical splitter: the
// width bounds and window size driving the recursion, the per-sample gain
// threshold a split must clear to be accepted, and which Gaussian model to
// fit.
type Config struct {
	MinWidth         int
	MaxWidth         int
	WindowWidth      int
	MinGainPerSample float64
	UseLog           bool
	SplitterKind     Kind

	// OnForcedSplit, if set, is called once per split that segmentCumulative
	// makes because a window exceeded MaxWidth rather than because of gain.
	// Used by callers that want to instrument how often width forcing
	// kicks in (see internal/metrics); nil is a valid no-op.
	OnForcedSplit func()
}

// DefaultConfig mirrors the reference implementation's constructor
// defaults (min_width=1000, max_width=1_000_000, window_width=10_000,
// min_gain_per_sample=0.03, use_log=True, splitter="stepwise").
func DefaultConfig() Config {
	return Config{
		MinWidth:         1000,
		MaxWidth:         1_000_000,
		WindowWidth:      10_000,
		MinGainPerSample: 0.03,
		UseLog:           true,
		SplitterKind:     Stepwise,
	}
}

// validate checks the width/window ordering and splitter-kind invariants,
// returning a wrapped ErrInvalidConfig describing the first violation found.
func (c Config) validate() error {
	if c.MinWidth < 1 {
		return fmt.Errorf("%w: min_width must be >= 1, got %d", ErrInvalidConfig, c.MinWidth)
	}
	if c.MaxWidth < c.MinWidth {
		return fmt.Errorf("%w: max_width (%d) must be >= min_width (%d)", ErrInvalidConfig, c.MaxWidth, c.MinWidth)
	}
	if c.WindowWidth < 2*c.MinWidth {
		return fmt.Errorf("%w: window_width (%d) must be >= 2*min_width (%d)", ErrInvalidConfig, c.WindowWidth, 2*c.MinWidth)
	}
	switch c.SplitterKind {
	case Stepwise, Slanted:
	default:
		return fmt.Errorf("%w: unknown splitter kind %q", ErrInvalidConfig, c.SplitterKind)
	}
	return nil
}

// Configure applies recognized keys from opts onto a copy of c, mirroring
// the reference implementation's dict-driven configure(opts) entry point.
// Recognized keys: "min_width", "max_width", "window_width",
// "min_gain_per_sample", "use_log", "splitter".
func (c Config) Configure(opts map[string]any) (Config, error) {
	out := c
	for k, v := range opts {
		switch k {
		case "min_width":
			n, err := asInt(v)
			if err != nil {
				return c, fmt.Errorf("%w: min_width: %v", ErrInvalidConfig, err)
			}
			out.MinWidth = n
		case "max_width":
			n, err := asInt(v)
			if err != nil {
				return c, fmt.Errorf("%w: max_width: %v", ErrInvalidConfig, err)
			}
			out.MaxWidth = n
		case "window_width":
			n, err := asInt(v)
			if err != nil {
				return c, fmt.Errorf("%w: window_width: %v", ErrInvalidConfig, err)
			}
			out.WindowWidth = n
		case "min_gain_per_sample":
			f, err := asFloat(v)
			if err != nil {
				return c, fmt.Errorf("%w: min_gain_per_sample: %v", ErrInvalidConfig, err)
			}
			out.MinGainPerSample = f
		case "use_log":
			b, ok := v.(bool)
			if !ok {
				return c, fmt.Errorf("%w: use_log must be a bool", ErrInvalidConfig)
			}
			out.UseLog = b
		case "splitter":
			s, ok := v.(string)
			if !ok {
				return c, fmt.Errorf("%w: splitter must be a string", ErrInvalidConfig)
			}
			out.SplitterKind = Kind(s)
		default:
			return c, fmt.Errorf("%w: unrecognized key %q", ErrInvalidConfig, k)
		}
	}
	if err := out.validate(); err != nil {
		return c, err
	}
	return out, nil
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
