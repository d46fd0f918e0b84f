package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/optim"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter pairs a value matrix (a weight or bias) with a gradient
// accumulator of the same shape. Backpropagation adds into the gradient;
// optimizers read it and update the value in place.
//
// Example:
//
//	weight := nn.NewParameter("layer0.weight", w)
//	w := weight.Value()
//	g := weight.Grad()
type Parameter struct {
	name  string                  // Parameter name (e.g., "layer0.weight")
	value *matrix.Matrix[float32] // The parameter matrix
	grad  *matrix.Matrix[float32] // Gradient accumulator, same shape as value
}

var _ optim.Param = (*Parameter)(nil)

// NewParameter creates a new trainable parameter owning value.
//
// The gradient accumulator is allocated zero-filled with value's shape.
func NewParameter(name string, value *matrix.Matrix[float32]) *Parameter {
	grad, err := matrix.New[float32](value.Shape())
	if err != nil {
		// value is a constructed matrix, so its shape is valid.
		panic(err)
	}
	return &Parameter{
		name:  name,
		value: value,
		grad:  grad,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix[float32] {
	return p.value
}

// Grad returns the gradient accumulator.
func (p *Parameter) Grad() *matrix.Matrix[float32] {
	return p.grad
}

// ZeroGrad resets the gradient accumulator to zero.
func (p *Parameter) ZeroGrad() {
	p.grad.Fill(0)
}
