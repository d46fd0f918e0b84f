package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/pkg/errors"
)

// Layer is a fully connected layer with sigmoid activation.
//
// Performs the transformation: a = σ(W × x + b)
// where:
//   - x is the input column with shape [in_features, 1]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias column with shape [out_features, 1]
//   - a is the output column with shape [out_features, 1]
//
// Example:
//
//	layer, err := nn.NewLayer(2, 3)
//	output, err := layer.Activate(input) // input [2,1] -> output [3,1]
type Layer struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [out_features, 1]
}

var _ Module = (*Layer)(nil)

// NewLayer creates a Layer mapping prev inputs to current outputs.
//
// Weights and biases are zero-initialized; use Network.Randomize or
// Uniform/Xavier to seed them. Returns matrix.ErrCreate if either size is
// not strictly positive.
func NewLayer(prev, current int) (*Layer, error) {
	w, err := matrix.New[float32](current, prev)
	if err != nil {
		return nil, errors.Wrap(err, "weights")
	}
	b, err := matrix.New[float32](current, 1)
	if err != nil {
		return nil, errors.Wrap(err, "biases")
	}

	return &Layer{
		inFeatures:  prev,
		outFeatures: current,
		weight:      NewParameter("weight", w),
		bias:        NewParameter("bias", b),
	}, nil
}

// Activate computes σ(W × input + b) as a new [out_features, 1] column.
//
// input must have shape [in_features, 1]; otherwise matrix.ErrShape is
// returned. Neither input nor the layer is modified.
func (l *Layer) Activate(input *matrix.Matrix[float32]) (*matrix.Matrix[float32], error) {
	_, a, err := l.forward(input)
	return a, err
}

// Forward is Activate; it makes Layer a Module.
func (l *Layer) Forward(input *matrix.Matrix[float32]) (*matrix.Matrix[float32], error) {
	return l.Activate(input)
}

// forward returns both the pre-activation z = W × input + b and the
// activation a = σ(z).
func (l *Layer) forward(input *matrix.Matrix[float32]) (z, a *matrix.Matrix[float32], err error) {
	if input.Rows() != l.inFeatures || input.Cols() != 1 {
		return nil, nil, errors.Wrapf(matrix.ErrShape,
			"Layer.Activate: expected input [%d,1], got [%d,%d]", l.inFeatures, input.Rows(), input.Cols())
	}

	wx, err := matrix.Mul(l.weight.Value(), input)
	if err != nil {
		return nil, nil, err
	}
	z, err = matrix.Add(wx, l.bias.Value())
	if err != nil {
		return nil, nil, err
	}

	a = z.Clone()
	ApplySigmoid(a)
	return z, a, nil
}

// Parameters returns [weight, bias].
func (l *Layer) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weights returns the weight matrix [out_features, in_features].
func (l *Layer) Weights() *matrix.Matrix[float32] {
	return l.weight.Value()
}

// Biases returns the bias column [out_features, 1].
func (l *Layer) Biases() *matrix.Matrix[float32] {
	return l.bias.Value()
}

// InFeatures returns the number of input features.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}

// String renders the weights and biases for debugging.
func (l *Layer) String() string {
	return fmt.Sprintf("Weights:\n%s\nBiases:\n%s", l.Weights(), l.Biases())
}
