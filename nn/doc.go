// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a feedforward sigmoid network and its training loop.
//
// # Overview
//
// This package contains:
//   - Layers: Layer (weights, biases, sigmoid activation)
//   - Networks: Network, built from a list of layer sizes
//   - Data: Dataset, Case, WithSkip
//   - Loss functions: MSELoss, BCELoss
//   - Training: backpropagation with SGD (optional momentum) or Adam
//   - Initialization: Uniform, Xavier
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/mlp/matrix"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    net, _ := nn.NewNetwork([]int{2, 2, 1})
//	    net.Randomize(rand.New(rand.NewPCG(1, 2)))
//
//	    table, _ := matrix.FromSlice(4, 3, []float32{
//	        0, 0, 0,
//	        0, 1, 1,
//	        1, 0, 1,
//	        1, 1, 0,
//	    })
//	    ds, _ := net.Dataset(table)
//
//	    history, err := net.Train(ds, 10_000, nn.TrainConfig{})
//	    preds, err := net.Evaluate(ds)
//	    nn.Report(os.Stdout, preds)
//	}
//
// # Shapes
//
// Inputs and outputs are column matrices. A layer mapping prev inputs to
// current outputs holds weights [current, prev] and biases [current, 1].
//
// # Errors
//
// Shape mismatches return errors wrapping matrix.ErrShape; invalid
// construction returns errors wrapping matrix.ErrCreate.
package nn
