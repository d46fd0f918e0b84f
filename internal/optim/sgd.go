package optim

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(net.OptimParams(), optim.SGDConfig{
//	    LR:       0.5,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []Param
	lr         float32
	momentum   float32
	velocities map[Param]*matrix.Matrix[float32]
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Parameters:
//   - params: Model parameters to optimize
//   - config: SGD configuration (LR, Momentum)
//
// Returns a new SGD optimizer.
func NewSGD(params []Param, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[Param]*matrix.Matrix[float32]),
	}
}

// Step performs a single optimization step.
//
// Applies gradient descent update to all parameters:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
func (s *SGD) Step() {
	for _, param := range s.params {
		if s.momentum == 0 {
			s.updateParameter(param)
		} else {
			s.updateParameterWithMomentum(param)
		}
	}
}

// updateParameter performs simple SGD update without momentum.
func (s *SGD) updateParameter(param Param) {
	value := param.Value().Data()
	for i, g := range param.Grad().Data() {
		value[i] -= s.lr * g
	}
}

// updateParameterWithMomentum performs SGD update with momentum.
func (s *SGD) updateParameterWithMomentum(param Param) {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = zerosLike(param)
		s.velocities[param] = velocity
	}

	v := velocity.Data()
	value := param.Value().Data()
	for i, g := range param.Grad().Data() {
		v[i] = s.momentum*v[i] + g
		value[i] -= s.lr * v[i]
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}
