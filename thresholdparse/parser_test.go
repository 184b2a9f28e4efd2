package thresholdparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ionparse/thresholdparse"
)

func TestThresholdParserAcceptsLongBelowThresholdEvent(t *testing.T) {
	sig := make([]float64, 0, 5+200_000+5)
	for i := 0; i < 5; i++ {
		sig = append(sig, 100.0)
	}
	for i := 0; i < 200_000; i++ {
		sig = append(sig, 50.0)
	}
	for i := 0; i < 5; i++ {
		sig = append(sig, 100.0)
	}

	p := thresholdparse.New(thresholdparse.DefaultConfig())
	segs, err := p.Parse(sig)
	require.NoError(t, err)

	require.Len(t, segs, 1)
	require.Equal(t, 5, segs[0].Start())
	require.Equal(t, 200_005, segs[0].End())
}

func TestThresholdParserEmptySignal(t *testing.T) {
	p := thresholdparse.New(thresholdparse.DefaultConfig())
	segs, err := p.Parse(nil)
	require.NoError(t, err)
	require.Empty(t, segs)
}

func TestThresholdParserCustomRules(t *testing.T) {
	sig := make([]float64, 300)
	for i := range sig {
		sig[i] = 10.0
	}
	cfg := thresholdparse.Config{
		Threshold: 90,
		Rules:     []thresholdparse.Rule{thresholdparse.MinDuration(0.001)},
	}
	p := thresholdparse.New(cfg)
	segs, err := p.Parse(sig)
	require.NoError(t, err)
	require.Len(t, segs, 1)
}
