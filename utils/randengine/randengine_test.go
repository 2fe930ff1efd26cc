package randengine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/montecarlo-sim/utils/randengine"
)

func TestCumulativeWeights(t *testing.T) {
	cdf, err := randengine.CumulativeWeights([]float64{1, 0, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 3.5}, cdf)
}

func TestCumulativeWeightsRejectsInvalid(t *testing.T) {
	cases := [][]float64{
		{},
		{0, 0, 0},
		{1, -1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
	}
	for _, weights := range cases {
		_, err := randengine.CumulativeWeights(weights)
		assert.ErrorIs(t, err, randengine.ErrInvalidWeights, "weights %v", weights)
	}
}

func TestSampleCumulativeSkipsZeroWeights(t *testing.T) {
	e := randengine.New(7)
	cdf, err := randengine.CumulativeWeights([]float64{0, 1, 0})
	require.NoError(t, err)
	for k := 0; k < 1000; k++ {
		assert.Equal(t, 1, e.SampleCumulative(cdf))
	}
}

func TestSampleCumulativeDeterministic(t *testing.T) {
	cdf, err := randengine.CumulativeWeights([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	e1 := randengine.New(42)
	e2 := randengine.New(42)
	for k := 0; k < 100; k++ {
		assert.Equal(t, e1.SampleCumulative(cdf), e2.SampleCumulativeSafe(cdf))
	}
}

func TestDiscreteDistributionFrequency(t *testing.T) {
	e := randengine.New(12345)
	counts := make([]int, 3)
	const trials = 30000
	for k := 0; k < trials; k++ {
		i, err := e.DiscreteDistribution([]float64{7, 2, 1})
		require.NoError(t, err)
		counts[i]++
	}
	assert.InDelta(t, 0.7, float64(counts[0])/trials, 0.03)
	assert.InDelta(t, 0.2, float64(counts[1])/trials, 0.03)
	assert.InDelta(t, 0.1, float64(counts[2])/trials, 0.03)

	_, err := e.DiscreteDistribution([]float64{0})
	assert.ErrorIs(t, err, randengine.ErrInvalidWeights)
}
