// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a generic dense two-dimensional matrix.
//
// # Overview
//
// Matrix[T] stores rows×cols values of any integer or floating-point type
// in a single row-major slice. This package provides:
//   - Construction: New (zero-filled), FromSlice (takes ownership)
//   - Bounds-checked element access: At, Ptr, Set
//   - Element-wise operations: Add, Sub, Hadamard
//   - Matrix product: Mul
//   - Transformations: Transpose, Scale, Apply
//   - Iteration: All, RowChunks
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/matrix"
//
//	func main() {
//	    a, _ := matrix.FromSlice(2, 2, []int{1, 2, 3, 4})
//	    b, _ := matrix.FromSlice(2, 2, []int{5, 6, 7, 8})
//
//	    sum, _ := matrix.Add(a, b)     // [ 6 8 / 10 12 ]
//	    prod, err := matrix.Mul(a, b)  // [ 19 22 / 43 50 ]
//	    if errors.Is(err, matrix.ErrShape) {
//	        // incompatible shapes
//	    }
//	}
//
// # Errors
//
// Every fallible operation returns an error wrapping one of ErrCreate,
// ErrGet or ErrShape. The Must variants panic instead.
//
// # Mutability
//
// Element access and Data return views into the matrix storage. Binary
// operations and transformations always allocate a new result.
package matrix
