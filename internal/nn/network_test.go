package nn

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TestNewNetwork_Shapes tests the layer shapes of a [2, 2, 1] network.
func TestNewNetwork_Shapes(t *testing.T) {
	net, err := NewNetwork([]int{2, 2, 1})
	require.NoError(t, err)

	require.Equal(t, 2, net.Len())
	assert.Equal(t, 2, net.InputSize())
	assert.Equal(t, 1, net.OutputSize())
	assert.Equal(t, []int{2, 2, 1}, net.Sizes())

	shape := func(m *matrix.Matrix[float32]) [2]int {
		r, c := m.Shape()
		return [2]int{r, c}
	}
	assert.Equal(t, [2]int{2, 2}, shape(net.Layer(0).Weights()))
	assert.Equal(t, [2]int{2, 1}, shape(net.Layer(0).Biases()))
	assert.Equal(t, [2]int{1, 2}, shape(net.Layer(1).Weights()))
	assert.Equal(t, [2]int{1, 1}, shape(net.Layer(1).Biases()))
}

// TestNewNetwork_ParameterNames tests per-layer parameter naming.
func TestNewNetwork_ParameterNames(t *testing.T) {
	net, err := NewNetwork([]int{3, 4, 2})
	require.NoError(t, err)

	var names []string
	for _, p := range net.Parameters() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"layer0.weight", "layer0.bias", "layer1.weight", "layer1.bias"}, names)
	assert.Len(t, net.OptimParams(), 4)
}

// TestNewNetwork_Invalid tests rejection of size lists that cannot form a layer.
func TestNewNetwork_Invalid(t *testing.T) {
	for _, sizes := range [][]int{nil, {}, {3}} {
		_, err := NewNetwork(sizes)
		require.ErrorIs(t, err, matrix.ErrCreate, "sizes=%v", sizes)
	}

	_, err := NewNetwork([]int{2, 0, 1})
	require.ErrorIs(t, err, matrix.ErrCreate)
}

// TestNewNetwork_SizesCopied tests that the caller's slice is not retained.
func TestNewNetwork_SizesCopied(t *testing.T) {
	sizes := []int{2, 3, 1}
	net, err := NewNetwork(sizes)
	require.NoError(t, err)

	sizes[0] = 99
	net.Sizes()[1] = 99
	assert.Equal(t, []int{2, 3, 1}, net.Sizes())
}

// TestNetwork_Layer_OutOfBounds tests the panic on a bad layer index.
func TestNetwork_Layer_OutOfBounds(t *testing.T) {
	net, err := NewNetwork([]int{2, 1})
	require.NoError(t, err)

	assert.Panics(t, func() { net.Layer(1) })
	assert.Panics(t, func() { net.Layer(-1) })
}

// TestNetwork_Randomize tests range and determinism of uniform initialization.
func TestNetwork_Randomize(t *testing.T) {
	a, err := NewNetwork([]int{2, 3, 1})
	require.NoError(t, err)
	b, err := NewNetwork([]int{2, 3, 1})
	require.NoError(t, err)

	a.Randomize(seeded(42))
	b.Randomize(seeded(42))

	nonZero := 0
	for i, p := range a.Parameters() {
		for _, v := range p.Value().All() {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.Less(t, v, float32(1))
			if v != 0 {
				nonZero++
			}
		}
		assert.Equal(t, p.Value().Data(), b.Parameters()[i].Value().Data())
	}
	assert.Positive(t, nonZero)

	// Different seed, different parameters.
	b.Randomize(seeded(7))
	assert.NotEqual(t, a.Layer(0).Weights().Data(), b.Layer(0).Weights().Data())
}

// TestNetwork_RandomizeXavier tests Xavier bounds and zero biases.
func TestNetwork_RandomizeXavier(t *testing.T) {
	net, err := NewNetwork([]int{4, 8, 2})
	require.NoError(t, err)
	net.Randomize(seeded(1))
	net.RandomizeXavier(seeded(2))

	bounds := []float64{0.7071, 0.7746} // sqrt(6/12), sqrt(6/10)
	for i := 0; i < net.Len(); i++ {
		for _, v := range net.Layer(i).Weights().All() {
			assert.LessOrEqual(t, float64(v), bounds[i]+1e-4)
			assert.GreaterOrEqual(t, float64(v), -bounds[i]-1e-4)
		}
		for _, v := range net.Layer(i).Biases().All() {
			assert.Zero(t, v)
		}
	}
}

// TestNetwork_InferZero tests that a zero network outputs sigmoid(0).
func TestNetwork_InferZero(t *testing.T) {
	net, err := NewNetwork([]int{2, 2, 1})
	require.NoError(t, err)

	out, err := net.Infer(column(t, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rows())
	assert.Equal(t, 1, out.Cols())
	assert.Equal(t, float32(0.5), out.Data()[0])
}

// TestNetwork_InferComposition tests that Infer chains Activate layer by layer.
func TestNetwork_InferComposition(t *testing.T) {
	net, err := NewNetwork([]int{3, 4, 2})
	require.NoError(t, err)
	net.Randomize(seeded(3))

	input := column(t, 0.2, -0.5, 1)
	hidden, err := net.Layer(0).Activate(input)
	require.NoError(t, err)
	want, err := net.Layer(1).Activate(hidden)
	require.NoError(t, err)

	got, err := net.Infer(input)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())

	fwd, err := net.Forward(input)
	require.NoError(t, err)
	assert.Equal(t, got.Data(), fwd.Data())
}

// TestNetwork_InferShapeMismatch tests the input precondition.
func TestNetwork_InferShapeMismatch(t *testing.T) {
	net, err := NewNetwork([]int{2, 2, 1})
	require.NoError(t, err)

	_, err = net.Infer(column(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShape)

	wide, err := matrix.New[float32](2, 2)
	require.NoError(t, err)
	_, err = net.Infer(wide)
	require.ErrorIs(t, err, matrix.ErrShape)
}

// TestNetwork_String tests the debug rendering.
func TestNetwork_String(t *testing.T) {
	net, err := NewNetwork([]int{2, 2, 1})
	require.NoError(t, err)

	s := net.String()
	assert.Contains(t, s, "Layer 0 (2 -> 2):")
	assert.Contains(t, s, "Layer 1 (2 -> 1):")
}

// TestNetwork_CopyFrom tests that weights are copied, not shared, and that
// networks of different sizes are rejected without changes.
func TestNetwork_CopyFrom(t *testing.T) {
	src, err := NewNetwork([]int{2, 3, 1})
	require.NoError(t, err)
	src.Randomize(seeded(21))
	dst, err := NewNetwork([]int{2, 3, 1})
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(src))
	want := snapshot(src)
	assert.Equal(t, want, snapshot(dst))

	src.Layer(0).Weights().Fill(9)
	assert.Equal(t, want, snapshot(dst))

	for _, sizes := range [][]int{{2, 2, 1}, {2, 3}, {2, 3, 1, 1}} {
		other, err := NewNetwork(sizes)
		require.NoError(t, err)
		other.Randomize(seeded(22))
		before := snapshot(dst)
		require.ErrorIs(t, dst.CopyFrom(other), matrix.ErrShape, "sizes %v", sizes)
		assert.Equal(t, before, snapshot(dst))
	}
}
