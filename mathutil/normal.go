package mathutil

import "math"

// Source provides uniformly random values in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// Abramowitz & Stegun, formula 7.1.26
const (
	phiA1 float64 = 0.254829592
	phiA2 float64 = -0.284496736
	phiA3 float64 = 1.421413741
	phiA4 float64 = -1.453152027
	phiA5 float64 = 1.061405429
	phiP  float64 = 0.3275911
)

// Phi approximates the standard normal cumulative distribution function. The approximation is
// symmetric: Phi(-x) == 1 - Phi(x).
func Phi(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1
	}

	x = math.Abs(x) / math.Sqrt2

	t := 1 / (1 + phiP*x)
	y := 1 - (((((phiA5*t+phiA4)*t)+phiA3)*t+phiA2)*t+phiA1)*t*math.Exp(-x*x)

	return 0.5 * (1 + sign*y)
}

// RandomNormalEstimate produces a starting weight for something with n inputs. It draws 2n
// uniform samples from src, maps each through Phi, scales them by sqrt(2/n) and returns their
// mean.
//
// The result is a heuristic rather than a true normal sample: since every draw is in [0, 1),
// every mapped value is in [0.5, 0.85) and the estimate is always positive.
//
// An InvalidArgumentError is returned if n <= 0.
func RandomNormalEstimate(src Source, n int) (float64, error) {
	if n <= 0 {
		return 0, InvalidArgumentError{"RandomNormalEstimate", "n", float64(n)}
	}

	std := math.Sqrt(2 / float64(n))
	samples := 2 * n

	var sum float64
	for i := 0; i < samples; i++ {
		sum += Phi(src.Float64()) * std
	}

	return sum / float64(samples), nil
}
