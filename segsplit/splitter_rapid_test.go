package segsplit_test

import (
	"testing"

	"pgregory.net/rapid"

	"ionparse/segsplit"
)

// genSignal produces a signal with a mix of flat runs and small jitter, the
// kind of input the splitter must handle without violating its structural
// invariants regardless of statistical content.
func genSignal(t *rapid.T) []float64 {
	n := rapid.IntRange(0, 4000).Draw(t, "n")
	sig := make([]float64, n)
	level := 0.0
	for i := range sig {
		if i%rapid.IntRange(50, 400).Draw(t, "runlen") == 0 {
			level = rapid.Float64Range(-10, 10).Draw(t, "level")
		}
		sig[i] = level + rapid.Float64Range(-0.01, 0.01).Draw(t, "jitter")
	}
	return sig
}

func genConfig(t *rapid.T) segsplit.Config {
	minWidth := rapid.IntRange(10, 200).Draw(t, "minWidth")
	windowWidth := rapid.IntRange(2*minWidth, 4*minWidth).Draw(t, "windowWidth")
	maxWidth := rapid.IntRange(minWidth, 10*minWidth).Draw(t, "maxWidth")
	kind := segsplit.Stepwise
	if rapid.Bool().Draw(t, "slanted") {
		kind = segsplit.Slanted
	}
	return segsplit.Config{
		MinWidth:         minWidth,
		MaxWidth:         maxWidth,
		WindowWidth:      windowWidth,
		MinGainPerSample: rapid.Float64Range(0, 0.5).Draw(t, "minGainPerSample"),
		UseLog:           rapid.Bool().Draw(t, "useLog"),
		SplitterKind:     kind,
	}
}

func TestSegmentsCoverRangeExactlyAndContiguously(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sig := genSignal(t)
		cfg := genConfig(t)
		sp, err := segsplit.New(cfg)
		if err != nil {
			t.Fatalf("unexpected invalid config: %v", err)
		}

		segs, err := sp.Parse(sig)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		if len(sig) == 0 {
			if len(segs) != 0 {
				t.Fatalf("expected empty segment list for empty signal")
			}
			return
		}

		if segs[0].Start() != 0 {
			t.Fatalf("first segment must start at 0, got %d", segs[0].Start())
		}
		if segs[len(segs)-1].End() != len(sig) {
			t.Fatalf("last segment must end at len(signal), got %d", segs[len(segs)-1].End())
		}
		for i := 0; i+1 < len(segs); i++ {
			if segs[i].End() != segs[i+1].Start() {
				t.Fatalf("segments %d,%d are not contiguous: %d != %d", i, i+1, segs[i].End(), segs[i+1].Start())
			}
		}
	})
}

func TestSegmentWidthsRespectBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sig := genSignal(t)
		cfg := genConfig(t)
		sp, err := segsplit.New(cfg)
		if err != nil {
			t.Fatalf("unexpected invalid config: %v", err)
		}

		segs, err := sp.Parse(sig)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		if len(segs) == 0 {
			return
		}
		tooShort := len(sig) < cfg.MinWidth
		for i, seg := range segs {
			isEdge := i == 0 || i == len(segs)-1
			if seg.Length() < cfg.MinWidth && !(isEdge && tooShort) {
				t.Fatalf("segment %d length %d below min_width %d", i, seg.Length(), cfg.MinWidth)
			}
			if seg.Length() > cfg.MaxWidth {
				t.Fatalf("segment %d length %d exceeds max_width %d", i, seg.Length(), cfg.MaxWidth)
			}
		}
	})
}

func TestReducingMinGainNeverDecreasesSegmentCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sig := genSignal(t)
		cfg := genConfig(t)
		lower := cfg
		lower.MinGainPerSample = rapid.Float64Range(0, cfg.MinGainPerSample).Draw(t, "lowerMinGain")

		spHigh, err := segsplit.New(cfg)
		if err != nil {
			t.Fatalf("unexpected invalid config: %v", err)
		}
		spLow, err := segsplit.New(lower)
		if err != nil {
			t.Fatalf("unexpected invalid config: %v", err)
		}

		highSegs, err := spHigh.Parse(sig)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		lowSegs, err := spLow.Parse(sig)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		if len(lowSegs) < len(highSegs) {
			t.Fatalf("lowering min_gain_per_sample from %v to %v decreased segment count: %d -> %d",
				cfg.MinGainPerSample, lower.MinGainPerSample, len(highSegs), len(lowSegs))
		}
	})
}

func TestIncreasingMaxWidthNeverIncreasesForcedSplits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sig := genSignal(t)
		cfg := genConfig(t)
		wider := cfg
		wider.MaxWidth = rapid.IntRange(cfg.MaxWidth, cfg.MaxWidth*3+1).Draw(t, "widerMaxWidth")

		narrowForced := 0
		cfg.OnForcedSplit = func() { narrowForced++ }
		spNarrow, err := segsplit.New(cfg)
		if err != nil {
			t.Fatalf("unexpected invalid config: %v", err)
		}
		if _, err := spNarrow.Parse(sig); err != nil {
			t.Fatalf("parse error: %v", err)
		}

		widerForced := 0
		wider.OnForcedSplit = func() { widerForced++ }
		spWider, err := segsplit.New(wider)
		if err != nil {
			t.Fatalf("unexpected invalid config: %v", err)
		}
		if _, err := spWider.Parse(sig); err != nil {
			t.Fatalf("parse error: %v", err)
		}

		if widerForced > narrowForced {
			t.Fatalf("increasing max_width from %d to %d increased forced splits: %d -> %d",
				cfg.MaxWidth, wider.MaxWidth, narrowForced, widerForced)
		}
	})
}

func TestParseIsDeterministicAcrossCalls(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sig := genSignal(t)
		cfg := genConfig(t)
		sp, err := segsplit.New(cfg)
		if err != nil {
			t.Fatalf("unexpected invalid config: %v", err)
		}

		a, err := sp.Parse(sig)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		b, err := sp.Parse(sig)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		if len(a) != len(b) {
			t.Fatalf("non-deterministic segment count: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Start() != b[i].Start() || a[i].Length() != b[i].Length() {
				t.Fatalf("non-deterministic boundaries at segment %d", i)
			}
		}
	})
}
