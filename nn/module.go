// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/nn"
)

// Module is the base interface for all network components.
//
// Every module must implement:
//   - Forward: Compute an output column from an input column
//   - Parameters: Return all trainable parameters
//
// Both Layer and Network satisfy Module:
//
//	var m nn.Module = net
//	out, err := m.Forward(input)
type Module = nn.Module

// Parameter is a trainable matrix paired with its gradient accumulator.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
//
// The gradient is allocated zero-filled with the value's shape.
func NewParameter(name string, value *Matrix) *Parameter {
	return nn.NewParameter(name, value)
}
