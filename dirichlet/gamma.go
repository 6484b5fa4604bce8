package dirichlet

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// gammaSampler draws n independent Gamma(shape, scale) variates from
// rng. Implementations must be distributionally equivalent; the Method
// enum selects between them.
type gammaSampler interface {
	sample(shape, scale float64, n int, rng *rand.Rand) ([]float64, error)
}

func checkGammaArgs(shape, scale float64, n int) error {
	if shape <= 0 {
		return fmt.Errorf("%w: gamma shape = %v; want > 0", ErrInvalidArgument, shape)
	}
	if scale <= 0 {
		return fmt.Errorf("%w: gamma scale = %v; want > 0", ErrInvalidArgument, scale)
	}
	if n < 1 {
		return fmt.Errorf("%w: gamma sample count = %d; want >= 1", ErrInvalidArgument, n)
	}
	return nil
}

// gonumGammaSampler delegates to gonum's distuv.Gamma.
type gonumGammaSampler struct{}

func (gonumGammaSampler) sample(shape, scale float64, n int, rng *rand.Rand) ([]float64, error) {
	if err := checkGammaArgs(shape, scale, n); err != nil {
		return nil, err
	}

	// distuv parameterises by rate, the reciprocal of scale.
	dist := distuv.Gamma{
		Alpha: shape,
		Beta:  1 / scale,
		Src:   rng,
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}

// marsagliaTsangSampler implements the squeeze method of Marsaglia and
// Tsang, "A simple method for generating gamma variables", ACM TOMS
// 26(3), 2000. Shapes below 1 are boosted to shape+1 and corrected by
// U^(1/shape).
type marsagliaTsangSampler struct{}

func (marsagliaTsangSampler) sample(shape, scale float64, n int, rng *rand.Rand) ([]float64, error) {
	if err := checkGammaArgs(shape, scale, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = marsagliaTsang(shape, rng) * scale
	}
	return out, nil
}

func marsagliaTsang(shape float64, rng *rand.Rand) float64 {
	d := shape - 1.0/3.0
	boost := 1.0
	if shape < 1 {
		d += 1.0
		boost = math.Pow(rng.Float64(), 1/shape)
	}
	c := 1 / (3 * math.Sqrt(d))

	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*(x*x)*(x*x) {
			return boost * d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return boost * d * v
		}
	}
}

// ahrensDieterSampler consumes only uniform variates: the integer part
// of the shape is a sum of unit exponentials, and the fractional part
// uses the Ahrens-Dieter GS rejection algorithm. Slower than the other
// samplers; provided as a portability fallback.
type ahrensDieterSampler struct{}

func (ahrensDieterSampler) sample(shape, scale float64, n int, rng *rand.Rand) ([]float64, error) {
	if err := checkGammaArgs(shape, scale, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = ahrensDieter(shape, rng) * scale
	}
	return out, nil
}

func ahrensDieter(shape float64, rng *rand.Rand) float64 {
	q := math.Floor(shape)
	frac := shape - q

	var x float64
	for i := 0; i < int(q); i++ {
		x -= math.Log(1 - rng.Float64())
	}
	if frac == 0 {
		return x
	}
	return x + gammaGS(frac, rng)
}

// gammaGS samples Gamma(shape, 1) for 0 < shape < 1 using algorithm GS
// of Ahrens and Dieter, "Computer methods for sampling from gamma,
// beta, poisson and binomial distributions", Computing 12, 1974.
func gammaGS(shape float64, rng *rand.Rand) float64 {
	b := (math.E + shape) / math.E
	for {
		p := b * rng.Float64()
		if p <= 1 {
			x := math.Pow(p, 1/shape)
			if rng.Float64() <= math.Exp(-x) {
				return x
			}
		} else {
			x := -math.Log((b - p) / shape)
			if rng.Float64() <= math.Pow(x, shape-1) {
				return x
			}
		}
	}
}
