// Package matrix provides a generic dense, row-major matrix for the MLP framework.
package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Numeric is a constraint for matrix element types.
//
// Any integer or floating point type qualifies: it has a zero value and
// supports addition and multiplication.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Matrix is a dense rows×cols matrix stored as a flat row-major slice.
//
// The element at (row, col) lives at data[row*cols+col]. A Matrix exclusively
// owns its backing slice; Clone produces an independent copy.
//
// Example:
//
//	m, err := matrix.New[float32](2, 3)
//	if err != nil {
//	    return err
//	}
//	m.Fill(1)
//	fmt.Println(m)
type Matrix[T Numeric] struct {
	rows int
	cols int
	data []T // len(data) == rows*cols
}

// checkDims rejects non-positive dimensions and element counts that overflow int.
func checkDims(ctor string, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return createErrorf(ctor, rows, cols, "dimensions must be > 0")
	}
	if cols > math.MaxInt/rows {
		return createErrorf(ctor, rows, cols, "element count overflows int")
	}
	return nil
}

// New creates a rows×cols matrix filled with T's zero value.
//
// Returns ErrCreate if either dimension is not strictly positive or
// rows*cols overflows int.
func New[T Numeric](rows, cols int) (*Matrix[T], error) {
	if err := checkDims("New", rows, cols); err != nil {
		return nil, err
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// FromSlice creates a rows×cols matrix backed by data.
//
// The matrix takes ownership of data: the caller must not modify it
// afterwards. Returns ErrCreate unless len(data) == rows*cols and both
// dimensions are strictly positive. A rows*cols that overflows int is
// rejected rather than wrapped.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
func FromSlice[T Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	if err := checkDims("FromSlice", rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, createErrorf("FromSlice", rows, cols, "requires %d elements, got %d", rows*cols, len(data))
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Size returns the number of elements, rows*cols.
func (m *Matrix[T]) Size() int {
	return m.rows * m.cols
}

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix[T]) SameShape(other *Matrix[T]) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// index validates (row, col) per dimension and returns the flat offset.
func (m *Matrix[T]) index(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, getErrorf(method, row, col, m.rows, m.cols)
	}
	return row*m.cols + col, nil
}

// At returns the element at (row, col).
//
// Returns ErrGet if row or col is out of range.
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.index("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[idx], nil
}

// Ptr returns a pointer to the element at (row, col) for in-place updates.
//
// Returns ErrGet if row or col is out of range.
func (m *Matrix[T]) Ptr(row, col int) (*T, error) {
	idx, err := m.index("Ptr", row, col)
	if err != nil {
		return nil, err
	}
	return &m.data[idx], nil
}

// Set assigns v to the element at (row, col).
//
// Returns ErrGet if row or col is out of range.
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.index("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Data returns the row-major backing slice.
//
// WARNING: the slice aliases the matrix storage; writes through it modify
// the matrix.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// All returns a read-only iterator over (flat index, value) pairs in
// row-major order.
func (m *Matrix[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range m.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// RowChunks returns an iterator over (row index, row slice) pairs in order.
//
// Each slice has length Cols() and aliases the matrix storage; it must be
// treated as read-only.
func (m *Matrix[T]) RowChunks() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < m.rows; r++ {
			start := r * m.cols
			if !yield(r, m.data[start:start+m.cols:start+m.cols]) {
				return
			}
		}
	}
}

// Fill overwrites every element with v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// String renders the matrix row by row with two decimals, for debugging.
//
//	[ 1.00 2.00
//	  3.00 4.00 ]
func (m *Matrix[T]) String() string {
	if len(m.data) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[ ")
	for i, v := range m.data {
		fmt.Fprintf(&sb, "%.2f", float64(v))
		switch {
		case i+1 == len(m.data):
			sb.WriteString(" ]")
		case (i+1)%m.cols == 0:
			sb.WriteString("\n  ")
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
