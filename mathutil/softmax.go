package mathutil

import "math"

// Softmax normalizes values into a probability distribution: e^v[i] / Σ e^v[j]. The inputs are
// not shifted by their maximum first, so large values overflow.
//
// Softmax returns ErrEmptyInput if given no values.
func Softmax(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(values))

	var sum float64
	for i := range values {
		out[i] = math.Exp(values[i])
		sum += out[i]
	}

	for i := range out {
		out[i] /= sum
	}

	return out, nil
}
