package dirichlet

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func column(samples [][]float64, k int) []float64 {
	col := make([]float64, len(samples))
	for i, row := range samples {
		col[i] = row[k]
	}
	return col
}

func TestSample_RowsLieOnSimplex(t *testing.T) {
	alpha := []float64{0.5, 1.5, 3}
	n := 1000

	samples, err := Sample(alpha, n)
	require.NoError(t, err)
	require.Len(t, samples, n)

	for i, row := range samples {
		require.Lenf(t, row, len(alpha), "expected row %d to have %d components; got %d", i, len(alpha), len(row))
		assert.InDeltaf(t, 1, floats.Sum(row), 1e-9, "expected row %d to sum to 1; got %v", i, floats.Sum(row))
		for k, v := range row {
			assert.GreaterOrEqualf(t, v, float64(0), "expected samples[%d][%d] to be non-negative; got %v", i, k, v)
		}
	}
}

func TestSample_SingleComponentIsAlwaysOne(t *testing.T) {
	samples, err := Sample([]float64{5}, 100)
	require.NoError(t, err)

	for i, row := range samples {
		require.Len(t, row, 1)
		assert.InDeltaf(t, 1, row[0], 1e-12, "expected samples[%d][0] = 1 for a single component; got %v", i, row[0])
	}
}

func TestSample_UniformAlphaHasMeanOneOverK(t *testing.T) {
	alpha := []float64{1, 1, 1, 1}
	n := 100000

	samples, err := Sample(alpha, n)
	require.NoError(t, err)

	for k := range alpha {
		mean, err := stats.Mean(column(samples, k))
		require.NoError(t, err)
		assert.InDeltaf(t, 0.25, mean, 0.01, "expected coordinate %d of Dirichlet(1,1,1,1) to have mean 0.25; got %v", k, mean)
	}
}

func TestSample_LargeConcentrationDominatesMass(t *testing.T) {
	samples, err := Sample([]float64{1000, 1}, 10000)
	require.NoError(t, err)

	mean, err := stats.Mean(column(samples, 0))
	require.NoError(t, err)
	assert.InDeltaf(t, 1000.0/1001.0, mean, 0.005, "expected dominant coordinate mean near 1000/1001; got %v", mean)
}

func TestSample_InvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		alpha []float64
		n     int
	}{
		{name: "empty alpha", alpha: []float64{}, n: 10},
		{name: "negative alpha entry", alpha: []float64{1, -2, 3}, n: 10},
		{name: "zero alpha entry", alpha: []float64{1, 0, 3}, n: 10},
		{name: "zero sample count", alpha: []float64{1, 2}, n: 0},
		{name: "negative sample count", alpha: []float64{1, 2}, n: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := Sample(tt.alpha, tt.n)
			assert.Nil(t, samples)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSampleWithMethod_UnknownMethodIsRejected(t *testing.T) {
	samples, err := SampleWithMethod([]float64{1, 2}, 10, Method(42))
	assert.Nil(t, samples)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// All methods sample the same theoretical distribution, so their
// empirical means and covariances must agree with the Dirichlet
// moments: mean_k = a_k/a0, var_k = a_k(a0-a_k)/(a0^2(a0+1)) and
// cov_jk = -a_j*a_k/(a0^2(a0+1)) for j != k, where a0 = sum(alpha).
func TestSampleWithMethod_StrategiesAgreeOnMoments(t *testing.T) {
	alpha := []float64{2, 5, 3}
	total := floats.Sum(alpha)
	n := 50000

	for _, method := range []Method{MethodGonum, MethodMarsagliaTsang, MethodAhrensDieter} {
		samples, err := SampleWithMethod(alpha, n, method)
		require.NoErrorf(t, err, "expected method %v to sample without error", method)

		columns := make([][]float64, len(alpha))
		for k := range alpha {
			columns[k] = column(samples, k)
		}

		for k, a := range alpha {
			mean, err := stats.Mean(columns[k])
			require.NoError(t, err)
			assert.InDeltaf(t, a/total, mean, 0.01, "expected method %v coordinate %d mean near %v; got %v", method, k, a/total, mean)

			variance, err := stats.Variance(columns[k])
			require.NoError(t, err)
			wantVariance := a * (total - a) / (total * total * (total + 1))
			assert.InDeltaf(t, wantVariance, variance, 0.002, "expected method %v coordinate %d variance near %v; got %v", method, k, wantVariance, variance)
		}

		for j := range alpha {
			for k := j + 1; k < len(alpha); k++ {
				covariance, err := stats.Covariance(columns[j], columns[k])
				require.NoError(t, err)
				wantCovariance := -alpha[j] * alpha[k] / (total * total * (total + 1))
				assert.InDeltaf(t, wantCovariance, covariance, 0.002, "expected method %v covariance of coordinates %d and %d near %v; got %v", method, j, k, wantCovariance, covariance)
			}
		}
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{in: "gonum", want: MethodGonum},
		{in: "GONUM", want: MethodGonum},
		{in: "marsaglia-tsang", want: MethodMarsagliaTsang},
		{in: "MarsagliaTsang", want: MethodMarsagliaTsang},
		{in: " ahrens-dieter ", want: MethodAhrensDieter},
		{in: "AHRENSDIETER", want: MethodAhrensDieter},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		require.NoErrorf(t, err, "expected %q to parse", tt.in)
		assert.Equalf(t, tt.want, got, "expected %q to parse to %v; got %v", tt.in, tt.want, got)
	}

	_, err := ParseMethod("box-muller")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
