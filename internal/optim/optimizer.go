// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Param interface: a named parameter matrix paired with its gradient
//   - Optimizer interface: base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read gradients from Param.Grad(), which the caller accumulates
// (e.g. by backpropagation) before calling Step.
//
// Example usage:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{LR: 0.5})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    backpropagate(model, data) // accumulates into every Param.Grad()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Param is a trainable parameter: a value matrix and a same-shaped gradient
// accumulator.
type Param interface {
	// Name identifies the parameter, e.g. "layer0.weight".
	Name() string

	// Value returns the parameter matrix. Optimizers update it in place.
	Value() *matrix.Matrix[float32]

	// Grad returns the gradient accumulator, same shape as Value.
	Grad() *matrix.Matrix[float32]
}

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update parameter values in place from their accumulated
// gradients to minimize the loss function during training.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad resets every parameter gradient to zero.
	//
	// Call it before accumulating gradients for the next update.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR updates the learning rate, e.g. for scheduling.
	SetLR(lr float32)
}

// zeroGrads clears the gradient of every parameter.
func zeroGrads(params []Param) {
	for _, p := range params {
		p.Grad().Fill(0)
	}
}

// zerosLike allocates a zero matrix with p's shape.
func zerosLike(p Param) *matrix.Matrix[float32] {
	m, err := matrix.New[float32](p.Value().Shape())
	if err != nil {
		// A Param always holds a valid, non-empty matrix.
		panic(err)
	}
	return m
}
