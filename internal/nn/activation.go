package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/chewxy/math32"
)

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Sigmoid squashes values to the range (0, 1). For large-magnitude inputs
// the result saturates following IEEE-754 float32 semantics: exp(-x)
// overflows to +Inf for x below about -88, giving exactly 0, and underflows
// toward 0 for large positive x, giving exactly 1. It never returns NaN for
// a non-NaN input.
func Sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// SigmoidPrime returns the sigmoid derivative expressed through its output:
// given s = σ(x), dσ/dx = s * (1 - s).
func SigmoidPrime(s float32) float32 {
	return s * (1 - s)
}

// ApplySigmoid replaces every element x of m with σ(x).
func ApplySigmoid(m *matrix.Matrix[float32]) {
	m.ApplyInPlace(Sigmoid)
}
