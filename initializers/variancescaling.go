package initializers

import (
	"math"

	"github.com/pashkovdenis/thoughtmodel/mathutil"
)

type varianceScaling struct {
	src    Source
	factor float64
}

// VarianceScaling returns an Initializer that draws from a truncated normal distribution with a
// standard deviation of sqrt(factor / fanIn). The factor defaults to "varscl-factor" and can be
// set by Factor.
func VarianceScaling(src Source) *varianceScaling {
	return &varianceScaling{src, defaultValue["varscl-factor"]}
}

// Factor sets the scaling factor to be used for the Initializer.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// Weight is the implementation of thoughtmodel.Initializer. A fanIn <= 0 gives
// mathutil.InvalidArgumentError.
func (v *varianceScaling) Weight(fanIn int) (float64, error) {
	if fanIn <= 0 {
		return 0, mathutil.InvalidArgumentError{Func: "VarianceScaling", Arg: "fanIn", Value: float64(fanIn)}
	}

	return TruncNormalRNG(v.src).SD(math.Sqrt(v.factor / float64(fanIn))).Gen(), nil
}

// He is VarianceScaling with a factor of 2.
func He(src Source) *varianceScaling {
	return VarianceScaling(src).Factor(2)
}

// LeCun is VarianceScaling with a factor of 1.
func LeCun(src Source) *varianceScaling {
	return VarianceScaling(src).Factor(1)
}

type estimate struct {
	src mathutil.Source
}

// Estimate returns the Initializer used by default. Each weight is the result of
// mathutil.RandomNormalEstimate with the given fan-in, which is positive and scaled by
// sqrt(2 / fanIn). A fanIn <= 0 gives mathutil.InvalidArgumentError.
func Estimate(src mathutil.Source) estimate {
	return estimate{src}
}

// Weight is the implementation of thoughtmodel.Initializer
func (e estimate) Weight(fanIn int) (float64, error) {
	return mathutil.RandomNormalEstimate(e.src, fanIn)
}
