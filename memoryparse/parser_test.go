package memoryparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ionparse/memoryparse"
)

func TestMemoryParserReplaysGivenBoundaries(t *testing.T) {
	sig := make([]float64, 100)
	for i := range sig {
		sig[i] = float64(i)
	}
	p, err := memoryparse.New([]int{0, 40}, []int{10, 60})
	require.NoError(t, err)

	segs, err := p.Parse(sig)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	require.Equal(t, 0, segs[0].Start())
	require.Equal(t, 10, segs[0].End())
	require.Equal(t, 40, segs[1].Start())
	require.Equal(t, 60, segs[1].End())
}

func TestMemoryParserMismatchedLengthsError(t *testing.T) {
	_, err := memoryparse.New([]int{0, 5}, []int{10})
	require.Error(t, err)
}

func TestMemoryParserClampsOutOfRangeBoundaries(t *testing.T) {
	sig := make([]float64, 10)
	p, err := memoryparse.New([]int{-5}, []int{100})
	require.NoError(t, err)

	segs, err := p.Parse(sig)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	require.Equal(t, 0, segs[0].Start())
	require.Equal(t, 10, segs[0].End())
}

func TestMemoryParserSkipsEmptyRanges(t *testing.T) {
	sig := make([]float64, 10)
	p, err := memoryparse.New([]int{5}, []int{5})
	require.NoError(t, err)

	segs, err := p.Parse(sig)
	require.NoError(t, err)
	require.Empty(t, segs)
}
