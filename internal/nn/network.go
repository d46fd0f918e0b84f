package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/pkg/errors"
)

// Network is a feedforward network: an ordered stack of sigmoid layers.
//
// A network built from sizes [n0, n1, ..., nk] has k layers; layer i maps
// sizes[i] inputs to sizes[i+1] outputs. Each layer's output becomes the
// next layer's input.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 2, 1})
//	net.Randomize(rand.New(rand.NewPCG(1, 2)))
//	out, err := net.Infer(input) // input [2,1] -> out [1,1]
type Network struct {
	sizes  []int
	layers []*Layer
}

var _ Module = (*Network)(nil)

// NewNetwork creates a network with one zero-initialized layer per
// consecutive pair in sizes.
//
// Returns matrix.ErrCreate if sizes has fewer than two entries (no layer
// could be built) or if any size is not strictly positive.
func NewNetwork(sizes []int) (*Network, error) {
	if len(sizes) < 2 {
		return nil, errors.Wrapf(matrix.ErrCreate,
			"NewNetwork: need at least 2 sizes (input and output), got %v", sizes)
	}

	layers := make([]*Layer, 0, len(sizes)-1)
	for i := 0; i+1 < len(sizes); i++ {
		layer, err := NewLayer(sizes[i], sizes[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "NewNetwork: layer %d (%d -> %d)", i, sizes[i], sizes[i+1])
		}
		layer.weight.name = fmt.Sprintf("layer%d.weight", i)
		layer.bias.name = fmt.Sprintf("layer%d.bias", i)
		layers = append(layers, layer)
	}

	return &Network{
		sizes:  append([]int(nil), sizes...),
		layers: layers,
	}, nil
}

// Sizes returns a copy of the layer sizes the network was built from.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// InputSize returns sizes[0].
func (n *Network) InputSize() int {
	return n.sizes[0]
}

// OutputSize returns the last entry of sizes.
func (n *Network) OutputSize() int {
	return n.sizes[len(n.sizes)-1]
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Network) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// Parameters returns every weight and bias, layer by layer.
func (n *Network) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range n.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// OptimParams returns Parameters as optim.Param values.
func (n *Network) OptimParams() []optim.Param {
	params := n.Parameters()
	out := make([]optim.Param, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}

// CopyFrom overwrites every weight and bias with other's.
//
// Returns matrix.ErrShape unless both networks were built from the same
// sizes; n is left unchanged in that case.
func (n *Network) CopyFrom(other *Network) error {
	dst, src := n.Parameters(), other.Parameters()
	if len(dst) != len(src) {
		return errors.Wrapf(matrix.ErrShape, "Network.CopyFrom: sizes %v from %v", n.sizes, other.sizes)
	}
	for i, p := range dst {
		if !p.Value().SameShape(src[i].Value()) {
			return errors.Wrapf(matrix.ErrShape, "Network.CopyFrom: sizes %v from %v", n.sizes, other.sizes)
		}
	}
	for i, p := range dst {
		if err := p.Value().CopyFrom(src[i].Value()); err != nil {
			return errors.Wrapf(err, "Network.CopyFrom: %s", p.Name())
		}
	}
	return nil
}

// Randomize overwrites every weight and bias with an independent uniform
// [0, 1) draw from src. It may be called at any time.
func (n *Network) Randomize(src Sampler) {
	for _, p := range n.Parameters() {
		Uniform(p.Value(), src)
	}
}

// RandomizeXavier draws weights with Xavier/Glorot initialization and
// resets biases to zero.
func (n *Network) RandomizeXavier(src Sampler) {
	for _, layer := range n.layers {
		Xavier(layer.Weights(), layer.InFeatures(), layer.OutFeatures(), src)
		layer.Biases().Fill(0)
	}
}

// Infer feeds input through every layer and returns the last layer's output.
//
// input must be a [InputSize(), 1] column; otherwise matrix.ErrShape is
// returned. The result has shape [OutputSize(), 1].
func (n *Network) Infer(input *matrix.Matrix[float32]) (*matrix.Matrix[float32], error) {
	if input.Rows() != n.InputSize() || input.Cols() != 1 {
		return nil, errors.Wrapf(matrix.ErrShape,
			"Network.Infer: expected input [%d,1], got [%d,%d]", n.InputSize(), input.Rows(), input.Cols())
	}

	output := input
	for i, layer := range n.layers {
		next, err := layer.Activate(output)
		if err != nil {
			return nil, errors.Wrapf(err, "Network.Infer: layer %d", i)
		}
		output = next
	}
	return output, nil
}

// Forward is Infer; it makes Network a Module.
func (n *Network) Forward(input *matrix.Matrix[float32]) (*matrix.Matrix[float32], error) {
	return n.Infer(input)
}

// Dataset builds a Dataset from m using this network's input and output
// sizes.
//
// Returns matrix.ErrShape if m's row width does not match.
func (n *Network) Dataset(m *matrix.Matrix[float32], opts ...DatasetOption) (*Dataset, error) {
	return NewDataset(m, n.InputSize(), n.OutputSize(), opts...)
}

// String renders every layer for debugging.
func (n *Network) String() string {
	var sb strings.Builder
	for i, layer := range n.layers {
		fmt.Fprintf(&sb, "Layer %d (%d -> %d):\n%s\n", i, layer.InFeatures(), layer.OutFeatures(), layer)
	}
	return sb.String()
}
