package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// bceEpsilon keeps predictions away from 0 and 1 so log and the gradient
// stay finite when a sigmoid output saturates.
const bceEpsilon = 1e-7

// BCELoss computes binary cross-entropy for sigmoid outputs.
//
// Loss = -mean(t·log(p) + (1-t)·log(1-p))
//
// Predictions are clamped to [ε, 1-ε] before taking logarithms.
type BCELoss struct{}

// NewBCELoss creates a new binary cross-entropy loss.
func NewBCELoss() *BCELoss {
	return &BCELoss{}
}

// Forward computes the mean binary cross-entropy.
//
// Returns matrix.ErrShape if the shapes differ.
func (b *BCELoss) Forward(predictions, targets *matrix.Matrix[float32]) (float32, error) {
	if !predictions.SameShape(targets) {
		return 0, errors.Wrapf(matrix.ErrShape, "BCELoss: predictions %dx%d, targets %dx%d",
			predictions.Rows(), predictions.Cols(), targets.Rows(), targets.Cols())
	}

	tData := targets.Data()
	var sum float32
	for i, p := range predictions.Data() {
		p = clampProb(p)
		t := tData[i]
		sum -= t*math32.Log(p) + (1-t)*math32.Log(1-p)
	}
	return sum / float32(predictions.Size()), nil
}

// Backward returns (p - t) / (p·(1-p)) / n with p clamped.
func (b *BCELoss) Backward(predictions, targets *matrix.Matrix[float32]) (*matrix.Matrix[float32], error) {
	if !predictions.SameShape(targets) {
		return nil, errors.Wrapf(matrix.ErrShape, "BCELoss: predictions %dx%d, targets %dx%d",
			predictions.Rows(), predictions.Cols(), targets.Rows(), targets.Cols())
	}

	grad := predictions.Clone()
	n := float32(grad.Size())
	tData := targets.Data()
	data := grad.Data()
	for i, p := range data {
		p = clampProb(p)
		data[i] = (p - tData[i]) / (p * (1 - p)) / n
	}
	return grad, nil
}

func clampProb(p float32) float32 {
	return math32.Min(math32.Max(p, bceEpsilon), 1-bceEpsilon)
}
