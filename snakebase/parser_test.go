package snakebase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ionparse/snakebase"
)

func TestSnakebaseParserNoPanicOnFlatSignal(t *testing.T) {
	sig := make([]float64, 5000)
	for i := range sig {
		sig[i] = 3.0
	}
	p := snakebase.New(snakebase.DefaultConfig())
	segs, err := p.Parse(sig)
	require.NoError(t, err)
	require.Empty(t, segs) // flat signal never crosses the peak-to-peak threshold
}

func TestSnakebaseParserDetectsOscillatingState(t *testing.T) {
	sig := make([]float64, 4000)
	for i := range sig {
		base := 0.0
		if i > 1000 && i < 3000 {
			if i%2 == 0 {
				base = 4.0
			} else {
				base = -4.0
			}
		}
		sig[i] = base
	}
	p := snakebase.New(snakebase.DefaultConfig())
	segs, err := p.Parse(sig)
	require.NoError(t, err)
	for _, s := range segs {
		require.GreaterOrEqual(t, s.Start(), 0)
		require.LessOrEqual(t, s.End(), len(sig))
	}
}

func TestSnakebaseParserTinySignal(t *testing.T) {
	p := snakebase.New(snakebase.DefaultConfig())
	segs, err := p.Parse([]float64{1.0})
	require.NoError(t, err)
	require.Empty(t, segs)
}
