package initializers

import "github.com/pashkovdenis/thoughtmodel/mathutil"

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG to generate the weights. There is no
// scaling beyond that of the RNG; the fan-in is ignored.
func Random(g RNG) random {
	return random{g}
}

// Weight is the implementation of thoughtmodel.Initializer
func (r random) Weight(fanIn int) (float64, error) {
	return r.Gen(), nil
}

type uniformInit struct {
	src          Source
	lower, upper float64
}

// Uniform returns an Initializer that draws from a uniform random sample within a range, which
// can be set by Range. Zero is never returned. The defaults ("uniform-lower" and
// "uniform-upper") can be set by SetDefault.
func Uniform(src Source) *uniformInit {
	return &uniformInit{src, defaultValue["uniform-lower"], defaultValue["uniform-upper"]}
}

// Range sets the Range of a Uniform Initializer, returning the same Initializer
func (u *uniformInit) Range(lower, upper float64) *uniformInit {
	u.lower = lower
	u.upper = upper
	return u
}

// Weight is the implementation of thoughtmodel.Initializer. A range of exactly [0, 0] gives
// mathutil.InvalidArgumentError, since every draw would be zero.
func (u *uniformInit) Weight(fanIn int) (float64, error) {
	lower, upper := u.lower, u.upper
	if lower > upper {
		lower, upper = upper, lower
	}

	if lower == 0 && upper == 0 {
		return 0, mathutil.InvalidArgumentError{Func: "Uniform", Arg: "range", Value: 0}
	}

	for {
		// discard and try again
		if w := u.src.Float64()*(upper-lower) + lower; w != 0 {
			return w, nil
		}
	}
}

type constant float64

// Constant returns an Initializer that sets every weight to value.
func Constant(value float64) constant {
	return constant(value)
}

// Weight is the implementation of thoughtmodel.Initializer
func (c constant) Weight(fanIn int) (float64, error) {
	return float64(c), nil
}
