package dirichlet

import (
	"fmt"
	"strings"
)

// Method selects the strategy used to generate the underlying
// Gamma-variate columns. All methods sample the same Gamma(shape, 1)
// law; they differ only in speed and dependency footprint.
type Method int

const (
	// MethodGonum delegates to gonum's distuv.Gamma sampler.
	MethodGonum Method = iota
	// MethodMarsagliaTsang uses the Marsaglia-Tsang squeeze method,
	// implemented locally without a statistics library.
	MethodMarsagliaTsang
	// MethodAhrensDieter uses only uniform variates, as a portability
	// fallback where normal variates are unavailable or suspect.
	MethodAhrensDieter
)

// DefaultMethod is used by Sample and wherever a method is left
// unspecified.
const DefaultMethod = MethodMarsagliaTsang

func (m Method) String() string {
	switch m {
	case MethodGonum:
		return "gonum"
	case MethodMarsagliaTsang:
		return "marsaglia-tsang"
	case MethodAhrensDieter:
		return "ahrens-dieter"
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

// MethodNames lists the strings ParseMethod recognises, in enum order.
func MethodNames() []string {
	return []string{MethodGonum.String(), MethodMarsagliaTsang.String(), MethodAhrensDieter.String()}
}

// ParseMethod converts a method name to a Method. Matching is
// case-insensitive and tolerates a missing hyphen. An unrecognised name
// is an ErrInvalidArgument error, never a silent default.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gonum":
		return MethodGonum, nil
	case "marsaglia-tsang", "marsagliatsang":
		return MethodMarsagliaTsang, nil
	case "ahrens-dieter", "ahrensdieter":
		return MethodAhrensDieter, nil
	}
	return 0, fmt.Errorf("%w: unknown method %q; want one of {%s}", ErrInvalidArgument, s, strings.Join(MethodNames(), ", "))
}

func (m Method) gammaSampler() (gammaSampler, error) {
	switch m {
	case MethodGonum:
		return gonumGammaSampler{}, nil
	case MethodMarsagliaTsang:
		return marsagliaTsangSampler{}, nil
	case MethodAhrensDieter:
		return ahrensDieterSampler{}, nil
	}
	return nil, fmt.Errorf("%w: unknown method %d", ErrInvalidArgument, int(m))
}
