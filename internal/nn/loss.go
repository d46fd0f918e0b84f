package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Loss measures the error of a prediction against a target and provides
// the gradient used to start backpropagation.
//
// Predictions and targets are [output_size, 1] columns.
type Loss interface {
	// Forward returns the scalar loss.
	Forward(predictions, targets *matrix.Matrix[float32]) (float32, error)

	// Backward returns ∂loss/∂predictions, same shape as predictions.
	Backward(predictions, targets *matrix.Matrix[float32]) (*matrix.Matrix[float32], error)
}

// LossKind selects a Loss in TrainConfig.
type LossKind int

// Supported losses.
const (
	// MSE is the mean squared error. It is the default.
	MSE LossKind = iota
	// BinaryCrossEntropy is the mean binary cross-entropy; targets should be
	// in [0, 1].
	BinaryCrossEntropy
)

// String returns the loss name.
func (k LossKind) String() string {
	switch k {
	case MSE:
		return "mse"
	case BinaryCrossEntropy:
		return "bce"
	default:
		return "unknown"
	}
}

// ParseLossKind converts a name produced by LossKind.String back to a LossKind.
func ParseLossKind(name string) (LossKind, error) {
	switch name {
	case "mse", "":
		return MSE, nil
	case "bce":
		return BinaryCrossEntropy, nil
	default:
		return 0, errors.Errorf("unknown loss %q (want mse or bce)", name)
	}
}

// New returns the Loss implementation for k.
//
// Panics for values outside the declared constants.
func (k LossKind) New() Loss {
	switch k {
	case MSE:
		return NewMSELoss()
	case BinaryCrossEntropy:
		return NewBCELoss()
	default:
		exceptions.Panicf("nn: unknown LossKind %d", int(k))
		return nil
	}
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss, err := mse.Forward(predictions, targets)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes mean((predictions - targets)²).
//
// Returns matrix.ErrShape if the shapes differ.
func (m *MSELoss) Forward(predictions, targets *matrix.Matrix[float32]) (float32, error) {
	diff, err := matrix.Sub(predictions, targets)
	if err != nil {
		return 0, errors.Wrap(err, "MSELoss")
	}

	var sum float32
	for _, v := range diff.All() {
		sum += v * v
	}
	return sum / float32(diff.Size()), nil
}

// Backward returns 2 * (predictions - targets) / n.
func (m *MSELoss) Backward(predictions, targets *matrix.Matrix[float32]) (*matrix.Matrix[float32], error) {
	diff, err := matrix.Sub(predictions, targets)
	if err != nil {
		return nil, errors.Wrap(err, "MSELoss")
	}
	diff.ScaleInPlace(2 / float32(diff.Size()))
	return diff, nil
}
