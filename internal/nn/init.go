package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/chewxy/math32"
)

// Sampler is a uniform random source over [0, 1).
//
// *math/rand/v2.Rand and *math/rand.Rand both satisfy it, so tests can pass
// a deterministically seeded generator:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	net.Randomize(src)
type Sampler interface {
	Float32() float32
}

// Uniform overwrites every element of m with an independent draw from src
// in [0, 1).
func Uniform(m *matrix.Matrix[float32], src Sampler) {
	data := m.Data()
	for i := range data {
		data[i] = src.Float32()
	}
}

// Xavier (Glorot) initialization for weights.
//
// Overwrites m with values drawn uniformly from
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
//
// Parameters:
//   - m: Weight matrix to initialize in place
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - src: Uniform [0, 1) random source
func Xavier(m *matrix.Matrix[float32], fanIn, fanOut int, src Sampler) {
	bound := math32.Sqrt(6 / float32(fanIn+fanOut))

	data := m.Data()
	for i := range data {
		data[i] = (src.Float32()*2 - 1) * bound
	}
}
