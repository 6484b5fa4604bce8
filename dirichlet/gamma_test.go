package dirichlet

import (
	"testing"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UTC().UnixNano())))
}

func namedGammaSamplers() map[string]gammaSampler {
	return map[string]gammaSampler{
		"gonum":           gonumGammaSampler{},
		"marsaglia-tsang": marsagliaTsangSampler{},
		"ahrens-dieter":   ahrensDieterSampler{},
	}
}

// Gamma(shape, 1) has mean shape and variance shape; every sampler
// must reproduce both, including the shape < 1 regimes where the
// boosting (marsaglia-tsang) and GS rejection (ahrens-dieter) paths
// are exercised.
func TestGammaSamplers_MatchTheoreticalMoments(t *testing.T) {
	n := 200000
	rng := testRNG()

	for name, sampler := range namedGammaSamplers() {
		for _, shape := range []float64{0.3, 1, 2.5, 9} {
			variates, err := sampler.sample(shape, 1, n, rng)
			require.NoErrorf(t, err, "expected %s sampler to draw shape %v without error", name, shape)
			require.Len(t, variates, n)

			for i, v := range variates {
				require.GreaterOrEqualf(t, v, float64(0), "expected %s variate %d to be non-negative; got %v", name, i, v)
			}

			mean, err := stats.Mean(variates)
			require.NoError(t, err)
			variance, err := stats.Variance(variates)
			require.NoError(t, err)

			assert.InEpsilonf(t, shape, mean, 0.05, "expected %s sampler mean near %v for shape %v; got %v", name, shape, shape, mean)
			assert.InEpsilonf(t, shape, variance, 0.1, "expected %s sampler variance near %v for shape %v; got %v", name, shape, shape, variance)
		}
	}
}

func TestGammaSamplers_ScaleMultipliesMoments(t *testing.T) {
	shape, scale := 2.0, 3.0
	n := 200000
	rng := testRNG()

	for name, sampler := range namedGammaSamplers() {
		variates, err := sampler.sample(shape, scale, n, rng)
		require.NoError(t, err)

		mean, err := stats.Mean(variates)
		require.NoError(t, err)
		variance, err := stats.Variance(variates)
		require.NoError(t, err)

		assert.InEpsilonf(t, shape*scale, mean, 0.05, "expected %s sampler mean near %v; got %v", name, shape*scale, mean)
		assert.InEpsilonf(t, shape*scale*scale, variance, 0.1, "expected %s sampler variance near %v; got %v", name, shape*scale*scale, variance)
	}
}

func TestGammaSamplers_RejectInvalidArguments(t *testing.T) {
	rng := testRNG()

	for name, sampler := range namedGammaSamplers() {
		tests := []struct {
			shape float64
			scale float64
			n     int
		}{
			{shape: 0, scale: 1, n: 10},
			{shape: -1, scale: 1, n: 10},
			{shape: 1, scale: 0, n: 10},
			{shape: 1, scale: 1, n: 0},
		}

		for _, tt := range tests {
			variates, err := sampler.sample(tt.shape, tt.scale, tt.n, rng)
			assert.Nilf(t, variates, "expected %s sampler to return no variates for shape %v, scale %v, n %d", name, tt.shape, tt.scale, tt.n)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		}
	}
}
