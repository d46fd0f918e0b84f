package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// UpdateMode selects when parameters are updated during an epoch.
type UpdateMode int

const (
	// Stochastic updates parameters after every case. It is the default.
	Stochastic UpdateMode = iota
	// Batch averages gradients over all cases and updates once per epoch.
	Batch
)

// String returns the mode name.
func (m UpdateMode) String() string {
	switch m {
	case Stochastic:
		return "stochastic"
	case Batch:
		return "batch"
	default:
		return "unknown"
	}
}

// ParseUpdateMode converts a name produced by UpdateMode.String back to an UpdateMode.
func ParseUpdateMode(name string) (UpdateMode, error) {
	switch name {
	case "stochastic", "":
		return Stochastic, nil
	case "batch":
		return Batch, nil
	default:
		return 0, errors.Errorf("unknown update mode %q (want stochastic or batch)", name)
	}
}

// OptimizerKind selects the optimizer in TrainConfig.
type OptimizerKind int

const (
	// SGD is gradient descent with optional momentum. It is the default.
	SGD OptimizerKind = iota
	// Adam is the Adam optimizer.
	Adam
)

// String returns the optimizer name.
func (k OptimizerKind) String() string {
	switch k {
	case SGD:
		return "sgd"
	case Adam:
		return "adam"
	default:
		return "unknown"
	}
}

// ParseOptimizerKind converts a name produced by OptimizerKind.String back to an OptimizerKind.
func ParseOptimizerKind(name string) (OptimizerKind, error) {
	switch name {
	case "sgd", "":
		return SGD, nil
	case "adam":
		return Adam, nil
	default:
		return 0, errors.Errorf("unknown optimizer %q (want sgd or adam)", name)
	}
}

// Default learning rates applied when TrainConfig.LearningRate is zero.
const (
	DefaultSGDLearningRate  = 0.5
	DefaultAdamLearningRate = 0.05
)

// TrainConfig holds the training hyperparameters.
//
// The zero value trains with stochastic SGD at DefaultSGDLearningRate on
// the MSE loss.
type TrainConfig struct {
	LearningRate float32       // Step size (default depends on Optimizer)
	Momentum     float32       // SGD momentum factor, ignored by Adam (default: 0)
	Loss         LossKind      // Loss function (default: MSE)
	Mode         UpdateMode    // Stochastic or Batch (default: Stochastic)
	Optimizer    OptimizerKind // SGD or Adam (default: SGD)

	// OnEpoch, if set, is called synchronously after every epoch with the
	// zero-based epoch index and that epoch's mean loss.
	OnEpoch func(epoch int, loss float32)
}

func (c TrainConfig) withDefaults() TrainConfig {
	if c.LearningRate == 0 {
		if c.Optimizer == Adam {
			c.LearningRate = DefaultAdamLearningRate
		} else {
			c.LearningRate = DefaultSGDLearningRate
		}
	}
	return c
}

// newOptimizer builds the configured optimizer over params.
func (c TrainConfig) newOptimizer(params []optim.Param) optim.Optimizer {
	switch c.Optimizer {
	case SGD:
		return optim.NewSGD(params, optim.SGDConfig{LR: c.LearningRate, Momentum: c.Momentum})
	case Adam:
		return optim.NewAdam(params, optim.AdamConfig{LR: c.LearningRate})
	default:
		exceptions.Panicf("nn: unknown OptimizerKind %d", int(c.Optimizer))
		return nil
	}
}

// History records the mean loss of every training epoch.
//
// The loss of an epoch is averaged over the forward passes made during that
// epoch, so in Stochastic mode it reflects parameters as they changed
// within the epoch.
type History struct {
	Losses []float32
}

// Epochs returns the number of recorded epochs.
func (h *History) Epochs() int {
	return len(h.Losses)
}

// Final returns the last recorded loss, or 0 if no epoch ran.
func (h *History) Final() float32 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}

// trace holds the intermediate values of one forward pass.
//
// acts[0] is the input; acts[i+1] and zs[i] are the activation and
// pre-activation of layer i.
type trace struct {
	zs   []*matrix.Matrix[float32]
	acts []*matrix.Matrix[float32]
}

// forwardTrace runs a forward pass retaining every layer's pre-activation
// and activation.
func (n *Network) forwardTrace(input *matrix.Matrix[float32]) (*trace, error) {
	tr := &trace{
		zs:   make([]*matrix.Matrix[float32], 0, len(n.layers)),
		acts: make([]*matrix.Matrix[float32], 0, len(n.layers)+1),
	}
	tr.acts = append(tr.acts, input)
	for i, layer := range n.layers {
		z, a, err := layer.forward(tr.acts[i])
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		tr.zs = append(tr.zs, z)
		tr.acts = append(tr.acts, a)
	}
	return tr, nil
}

// output returns the network output of the traced pass.
func (tr *trace) output() *matrix.Matrix[float32] {
	return tr.acts[len(tr.acts)-1]
}

// backward backpropagates outputGrad = ∂loss/∂output through the traced
// pass and adds every layer's weight and bias gradient into its Parameter.
//
// For layer l with activation a_l = σ(z_l):
//
//	δ_l      = ∂loss/∂a_l ⊙ a_l(1 - a_l)
//	∂W_l    += δ_l × a_{l-1}ᵀ
//	∂b_l    += δ_l
//	∂loss/∂a_{l-1} = W_lᵀ × δ_l
func (n *Network) backward(tr *trace, outputGrad *matrix.Matrix[float32]) error {
	grad := outputGrad
	for l := len(n.layers) - 1; l >= 0; l-- {
		layer := n.layers[l]

		delta, err := matrix.Hadamard(grad, matrix.Apply(tr.acts[l+1], SigmoidPrime))
		if err != nil {
			return errors.Wrapf(err, "layer %d delta", l)
		}

		gw, err := matrix.Mul(delta, matrix.Transpose(tr.acts[l]))
		if err != nil {
			return errors.Wrapf(err, "layer %d weight gradient", l)
		}
		if err := layer.weight.Grad().AddScaled(gw, 1); err != nil {
			return errors.Wrapf(err, "layer %d weight gradient", l)
		}
		if err := layer.bias.Grad().AddScaled(delta, 1); err != nil {
			return errors.Wrapf(err, "layer %d bias gradient", l)
		}

		if l > 0 {
			grad, err = matrix.Mul(matrix.Transpose(layer.Weights()), delta)
			if err != nil {
				return errors.Wrapf(err, "layer %d input gradient", l)
			}
		}
	}
	return nil
}

// Train fits the network to ds by backpropagation for the given number of
// epochs, updating weights and biases in place.
//
// Every epoch visits the cases in order. In Stochastic mode parameters are
// updated after each case; in Batch mode gradients are averaged over the
// epoch and applied once. epochs <= 0 trains nothing.
//
// Returns matrix.ErrShape, before touching any parameter, if ds does not
// match the network's input and output sizes.
func (n *Network) Train(ds *Dataset, epochs int, cfg TrainConfig) (*History, error) {
	if err := ds.checkCompatible(n); err != nil {
		return nil, errors.Wrap(err, "Network.Train")
	}

	cfg = cfg.withDefaults()
	loss := cfg.Loss.New()
	optimizer := cfg.newOptimizer(n.OptimParams())
	history := &History{Losses: make([]float32, 0, max(epochs, 0))}

	klog.V(1).Infof("training %v for %d epochs on %d cases: optimizer=%s lr=%g momentum=%g loss=%s mode=%s",
		n.sizes, epochs, ds.Len(), cfg.Optimizer, cfg.LearningRate, cfg.Momentum, cfg.Loss, cfg.Mode)

	optimizer.ZeroGrad()
	for epoch := 0; epoch < epochs; epoch++ {
		var total float32
		for i, c := range ds.Cases() {
			value, err := n.accumulate(c, loss)
			if err != nil {
				return history, errors.Wrapf(err, "Network.Train: epoch %d case %d", epoch, i)
			}
			total += value

			if cfg.Mode == Stochastic {
				optimizer.Step()
				optimizer.ZeroGrad()
			}
		}

		if cfg.Mode == Batch && ds.Len() > 0 {
			scale := 1 / float32(ds.Len())
			for _, p := range n.Parameters() {
				p.Grad().ScaleInPlace(scale)
			}
			optimizer.Step()
			optimizer.ZeroGrad()
		}

		mean := total / float32(max(ds.Len(), 1))
		history.Losses = append(history.Losses, mean)
		if klog.V(2).Enabled() {
			klog.Infof("epoch %d/%d: loss=%.6f", epoch+1, epochs, mean)
		}
		if cfg.OnEpoch != nil {
			cfg.OnEpoch(epoch, mean)
		}
	}

	klog.V(1).Infof("training done: final loss=%.6f", history.Final())
	return history, nil
}

// accumulate runs one forward/backward pass for c, adds the gradients into
// the parameters and returns the case loss.
func (n *Network) accumulate(c Case, loss Loss) (float32, error) {
	tr, err := n.forwardTrace(c.Input)
	if err != nil {
		return 0, err
	}
	value, err := loss.Forward(tr.output(), c.Label)
	if err != nil {
		return 0, err
	}
	outputGrad, err := loss.Backward(tr.output(), c.Label)
	if err != nil {
		return 0, err
	}
	if err := n.backward(tr, outputGrad); err != nil {
		return 0, err
	}
	return value, nil
}
