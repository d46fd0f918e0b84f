// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/mlp/internal/optim"
)

// Param is anything an optimizer can update: a named value matrix and its
// gradient. *nn.Parameter implements it.
type Param = optim.Param

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	net, _ := nn.NewNetwork([]int{2, 2, 1})
//	optimizer := optim.NewSGD(
//	    net.OptimParams(),
//	    optim.SGDConfig{
//	        LR:       0.5,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []Param, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	net, _ := nn.NewNetwork([]int{2, 2, 1})
//	optimizer := optim.NewAdam(
//	    net.OptimParams(),
//	    optim.AdamConfig{
//	        LR:    0.05,
//	        Betas: [2]float32{0.9, 0.999},
//	    },
//	)
func NewAdam(params []Param, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
