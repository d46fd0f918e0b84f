package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the matrix package.
//
// Callers match them with errors.Is; methods wrap them with the operation
// name and the offending dimensions.
var (
	// ErrCreate is returned when a matrix cannot be constructed: a
	// non-positive dimension, or a backing slice whose length is not rows*cols.
	ErrCreate = errors.New("matrix: invalid construction")

	// ErrGet is returned when an element access falls outside the matrix.
	ErrGet = errors.New("matrix: index out of range")

	// ErrShape is returned when operand shapes are incompatible, e.g. Add on
	// different shapes or Mul where a.Cols() != b.Rows().
	ErrShape = errors.New("matrix: shape mismatch")
)

// createErrorf wraps ErrCreate with constructor context.
func createErrorf(ctor string, rows, cols int, format string, args ...any) error {
	return fmt.Errorf("%s(%d,%d): %s: %w", ctor, rows, cols, fmt.Sprintf(format, args...), ErrCreate)
}

// getErrorf wraps ErrGet with accessor context and coordinates.
func getErrorf(method string, row, col, rows, cols int) error {
	return fmt.Errorf("Matrix.%s(%d,%d) on %dx%d: %w", method, row, col, rows, cols, ErrGet)
}

// shapeErrorf wraps ErrShape with both operand shapes.
func shapeErrorf(op string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s(%dx%d, %dx%d): %w", op, ar, ac, br, bc, ErrShape)
}
