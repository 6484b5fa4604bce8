package dirichlet

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument is wrapped by all errors caused by callers passing
// arguments which violate the sampler's preconditions. Use errors.Is to
// distinguish caller errors from upstream generator failures.
var ErrInvalidArgument = errors.New("invalid argument")

// Sample draws n independent vectors from the Dirichlet distribution
// parameterised by the concentration vector alpha, using the default
// Gamma-variate method. The result is an n-by-len(alpha) row-major
// matrix where every row is non-negative and sums to one.
func Sample(alpha []float64, n int) ([][]float64, error) {
	return SampleWithMethod(alpha, n, DefaultMethod)
}

// SampleWithMethod is Sample with an explicit Gamma-variate method.
func SampleWithMethod(alpha []float64, n int, method Method) ([][]float64, error) {
	if len(alpha) == 0 {
		return nil, fmt.Errorf("%w: alpha must contain at least one concentration parameter", ErrInvalidArgument)
	}
	for k, a := range alpha {
		if a <= 0 {
			return nil, fmt.Errorf("%w: alpha[%d] = %v; want > 0", ErrInvalidArgument, k, a)
		}
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n = %d; want >= 1", ErrInvalidArgument, n)
	}
	sampler, err := method.gammaSampler()
	if err != nil {
		return nil, err
	}

	// Set the random seed to the current time for sufficient uniqueness.
	// Each call owns its generator, so concurrent calls do not share
	// generator state.
	rng := rand.New(rand.NewSource(uint64(time.Now().UTC().UnixNano())))

	// If X_1..X_K are independent Gamma(alpha_k, theta) variates with a
	// common scale theta, then (X_1/sum, ..., X_K/sum) is
	// Dirichlet(alpha_1, ..., alpha_K)-distributed, independent of
	// theta. Scale 1 is used throughout.
	columns := make([][]float64, len(alpha))
	for k, a := range alpha {
		column, err := sampler.sample(a, 1, n, rng)
		if err != nil {
			return nil, fmt.Errorf("gamma sampling failed for component %d (alpha = %v): %w", k, a, err)
		}
		columns[k] = column
	}

	samples := make([][]float64, n)
	for i := range samples {
		row := make([]float64, len(alpha))
		for k := range alpha {
			row[k] = columns[k][i]
		}
		sum := floats.Sum(row)
		for k := range row {
			row[k] /= sum
		}
		samples[i] = row
	}
	return samples, nil
}
