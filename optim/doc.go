// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - Param interface implemented by *nn.Parameter
//
// Network.Train builds one of these from TrainConfig. Use the package
// directly to drive a custom loop.
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(net.OptimParams(), optim.SGDConfig{LR: 0.5})
//	for epoch := range numEpochs {
//	    for _, c := range ds.Cases() {
//	        // 1. Zero gradients
//	        optimizer.ZeroGrad()
//
//	        // 2. Accumulate gradients into each Param.Grad()
//	        //    (backpropagation)
//
//	        // 3. Update values
//	        optimizer.Step()
//	    }
//	}
//
// # Learning Rate
//
//	lr := optimizer.GetLR()
//	optimizer.SetLR(lr * 0.5)
package optim
