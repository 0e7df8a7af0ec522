package mathutil

import "math"

// Sigmoid returns the logistic function of x: 1 / (1 + e^-x)
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns y * (1 - y). It expects y to already be the output of Sigmoid, so
// SigmoidDerivative(Sigmoid(x)) is the slope of Sigmoid at x. Passing a raw input gives a
// different (but still well-defined) number.
func SigmoidDerivative(y float64) float64 {
	return y * (1 - y)
}
