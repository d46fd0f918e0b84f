// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Matrix is the float32 matrix every layer computes on.
type Matrix = matrix.Matrix[float32]

// Layers

// Layer is one fully connected layer with sigmoid activation.
type Layer = nn.Layer

// NewLayer creates a zero-initialized layer mapping prev inputs to current
// outputs.
//
// Example:
//
//	layer, err := nn.NewLayer(2, 3) // weights [3,2], biases [3,1]
//	out, err := layer.Activate(input)
func NewLayer(prev, current int) (*Layer, error) {
	return nn.NewLayer(prev, current)
}

// Network is an ordered stack of sigmoid layers.
type Network = nn.Network

// NewNetwork creates a zero-initialized network from a list of layer sizes.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 2, 1})
//	net.Randomize(rand.New(rand.NewPCG(1, 2)))
//	out, err := net.Infer(input) // [2,1] -> [1,1]
func NewNetwork(sizes []int) (*Network, error) {
	return nn.NewNetwork(sizes)
}

// Activations

// Sigmoid returns 1 / (1 + e^(-x)).
func Sigmoid(x float32) float32 {
	return nn.Sigmoid(x)
}

// SigmoidPrime returns the sigmoid derivative given its output s.
func SigmoidPrime(s float32) float32 {
	return nn.SigmoidPrime(s)
}

// Initialization

// Sampler is a uniform random source over [0, 1).
type Sampler = nn.Sampler

// Uniform fills m with independent draws from src in [0, 1).
func Uniform(m *Matrix, src Sampler) {
	nn.Uniform(m, src)
}

// Xavier fills m with Xavier/Glorot uniform values.
func Xavier(m *Matrix, fanIn, fanOut int, src Sampler) {
	nn.Xavier(m, fanIn, fanOut, src)
}

// Datasets

// Case is one labeled example.
type Case = nn.Case

// Dataset is a set of labeled examples packed as matrix rows.
type Dataset = nn.Dataset

// DatasetOption configures NewDataset.
type DatasetOption = nn.DatasetOption

// NewDataset splits the rows of m into inputSize features and outputSize labels.
//
// Example:
//
//	ds, err := nn.NewDataset(table, 2, 1)
//	ds, err := nn.NewDataset(flagged, 2, 1, nn.WithSkip(1))
func NewDataset(m *Matrix, inputSize, outputSize int, opts ...DatasetOption) (*Dataset, error) {
	return nn.NewDataset(m, inputSize, outputSize, opts...)
}

// WithSkip ignores the first n columns of every row.
func WithSkip(n int) DatasetOption {
	return nn.WithSkip(n)
}

// Loss Functions

// Loss measures prediction error and its gradient.
type Loss = nn.Loss

// LossKind selects a loss in TrainConfig.
type LossKind = nn.LossKind

// Supported losses.
const (
	MSE                = nn.MSE
	BinaryCrossEntropy = nn.BinaryCrossEntropy
)

// ParseLossKind converts "mse" or "bce" to a LossKind.
func ParseLossKind(name string) (LossKind, error) {
	return nn.ParseLossKind(name)
}

// MSELoss is the mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// BCELoss is the binary cross-entropy for sigmoid outputs.
type BCELoss = nn.BCELoss

// NewBCELoss creates a new binary cross-entropy loss.
func NewBCELoss() *BCELoss {
	return nn.NewBCELoss()
}

// Training

// TrainConfig holds the training hyperparameters.
type TrainConfig = nn.TrainConfig

// History records the mean loss of every training epoch.
type History = nn.History

// UpdateMode selects when parameters are updated.
type UpdateMode = nn.UpdateMode

// Update modes.
const (
	Stochastic = nn.Stochastic
	Batch      = nn.Batch
)

// ParseUpdateMode converts "stochastic" or "batch" to an UpdateMode.
func ParseUpdateMode(name string) (UpdateMode, error) {
	return nn.ParseUpdateMode(name)
}

// OptimizerKind selects the optimizer in TrainConfig.
type OptimizerKind = nn.OptimizerKind

// Optimizers.
const (
	SGD  = nn.SGD
	Adam = nn.Adam
)

// ParseOptimizerKind converts "sgd" or "adam" to an OptimizerKind.
func ParseOptimizerKind(name string) (OptimizerKind, error) {
	return nn.ParseOptimizerKind(name)
}

// Default learning rates.
const (
	DefaultSGDLearningRate  = nn.DefaultSGDLearningRate
	DefaultAdamLearningRate = nn.DefaultAdamLearningRate
)

// Evaluation

// Prediction pairs a network output with its expected label.
type Prediction = nn.Prediction

// Report writes one "Case/Result/Expected" block per prediction to w.
func Report(w io.Writer, preds []Prediction) error {
	return nn.Report(w, preds)
}
