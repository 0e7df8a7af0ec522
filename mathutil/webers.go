package mathutil

import "math"

const (
	distanceMultiplier float64 = 0.01
	distanceThreshold  float64 = 0.222
)

// WebersForce returns the perceived strength of a stimulus under the Weber-Fechner law:
//
//	multiplier * log10(force / low)
//
// where low is the threshold below which the stimulus isn't perceived. Both force and low must
// be positive; otherwise an InvalidArgumentError is returned instead of NaN or -Inf.
func WebersForce(multiplier, force, low float64) (float64, error) {
	if !(force > 0) {
		return 0, InvalidArgumentError{"WebersForce", "force", force}
	} else if !(low > 0) {
		return 0, InvalidArgumentError{"WebersForce", "low", low}
	}

	return multiplier * math.Log10(force/low), nil
}

// DistanceRegression maps a distance onto a force, with fixed multiplier and threshold.
func DistanceRegression(distance float64) (float64, error) {
	return WebersForce(distanceMultiplier, distance, distanceThreshold)
}
