// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Numeric is the element constraint: any integer or floating-point type.
type Numeric = matrix.Numeric

// Matrix is a dense, row-major rows×cols matrix of T.
type Matrix[T Numeric] = matrix.Matrix[T]

// Sentinel errors. Match them with errors.Is.
var (
	// ErrCreate is returned for a non-positive dimension or a data length
	// that does not equal rows×cols.
	ErrCreate = matrix.ErrCreate

	// ErrGet is returned when a row or column index is out of range.
	ErrGet = matrix.ErrGet

	// ErrShape is returned when operand shapes are incompatible.
	ErrShape = matrix.ErrShape
)

// New creates a zero-filled rows×cols matrix.
//
// Example:
//
//	m, err := matrix.New[float32](2, 3)
func New[T Numeric](rows, cols int) (*Matrix[T], error) {
	return matrix.New[T](rows, cols)
}

// FromSlice creates a rows×cols matrix taking ownership of data in row-major order.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
func FromSlice[T Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	return matrix.FromSlice(rows, cols, data)
}

// Element-wise operations

// Add returns a + b.
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return matrix.Add(a, b)
}

// Sub returns a - b.
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return matrix.Sub(a, b)
}

// Hadamard returns the element-wise product of a and b.
func Hadamard[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return matrix.Hadamard(a, b)
}

// Matrix product

// Mul returns the matrix product a × b.
//
// Example:
//
//	w, _ := matrix.FromSlice(1, 2, []float32{0.5, -1})
//	x, _ := matrix.FromSlice(2, 1, []float32{2, 1})
//	y, err := matrix.Mul(w, x) // [ 0.00 ]
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return matrix.Mul(a, b)
}

// MustAdd is Add that panics on a shape mismatch.
func MustAdd[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	return matrix.MustAdd(a, b)
}

// MustMul is Mul that panics on a shape mismatch.
func MustMul[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	return matrix.MustMul(a, b)
}

// Transformations

// Transpose returns mᵀ.
func Transpose[T Numeric](m *Matrix[T]) *Matrix[T] {
	return matrix.Transpose(m)
}

// Scale returns m with every element multiplied by s.
func Scale[T Numeric](m *Matrix[T], s T) *Matrix[T] {
	return matrix.Scale(m, s)
}

// Apply returns a new matrix with fn applied to every element of m.
func Apply[T Numeric](m *Matrix[T], fn func(T) T) *Matrix[T] {
	return matrix.Apply(m, fn)
}
