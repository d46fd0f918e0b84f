// Package nn implements a feedforward neural network on top of the matrix package.
//
// This package provides building blocks for constructing and training networks:
//   - Module interface: base interface for Layer and Network
//   - Parameter: trainable matrices with gradient accumulators
//   - Layer: weight matrix + bias column with sigmoid activation
//   - Network: ordered stack of layers built from a size list
//   - Dataset: labeled examples packed as matrix rows
//   - Losses: MSE, binary cross-entropy
//   - Training: backpropagation with SGD or Adam
//
// All computation is single-threaded and synchronous.
package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Module is the base interface for network components.
//
// Every module must implement:
//   - Forward: compute output from a column-vector input
//   - Parameters: return all trainable parameters
type Module interface {
	// Forward computes the module output for a column matrix input.
	//
	// Returns matrix.ErrShape if the input does not have the expected
	// number of rows or is not a single column.
	Forward(input *matrix.Matrix[float32]) (*matrix.Matrix[float32], error)

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter
}
