package matrix

// Add returns the element-wise sum a + b.
//
// Returns ErrShape unless a and b have identical dimensions.
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if !a.SameShape(b) {
		return nil, shapeErrorf("Add", a.rows, a.cols, b.rows, b.cols)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] += v
	}
	return out, nil
}

// Sub returns the element-wise difference a - b.
//
// Returns ErrShape unless a and b have identical dimensions.
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if !a.SameShape(b) {
		return nil, shapeErrorf("Sub", a.rows, a.cols, b.rows, b.cols)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] -= v
	}
	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b.
//
// Returns ErrShape unless a and b have identical dimensions.
func Hadamard[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if !a.SameShape(b) {
		return nil, shapeErrorf("Hadamard", a.rows, a.cols, b.rows, b.cols)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] *= v
	}
	return out, nil
}

// Mul returns the matrix product a × b with shape (a.Rows(), b.Cols()).
//
// Each output element is the dot product of a row of a and a column of b,
// accumulated from T's zero value. Returns ErrShape unless
// a.Cols() == b.Rows().
//
// Example:
//
//	a, _ := matrix.FromSlice(1, 2, []float32{1, 2})
//	b, _ := matrix.FromSlice(2, 1, []float32{3, 4})
//	c, _ := matrix.Mul(a, b) // [ 11.00 ]
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.cols != b.rows {
		return nil, shapeErrorf("Mul", a.rows, a.cols, b.rows, b.cols)
	}
	out := &Matrix[T]{rows: a.rows, cols: b.cols, data: make([]T, a.rows*b.cols)}
	for i := 0; i < a.rows; i++ {
		row := a.data[i*a.cols : (i+1)*a.cols]
		for j := 0; j < b.cols; j++ {
			var acc T
			for k, v := range row {
				acc += v * b.data[k*b.cols+j]
			}
			out.data[i*out.cols+j] = acc
		}
	}
	return out, nil
}

// MustAdd is like Add but panics on a shape mismatch.
//
// The panic value is the ErrShape-wrapping error, so it can be recovered
// and matched with errors.Is.
func MustAdd[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	out, err := Add(a, b)
	if err != nil {
		panic(err)
	}
	return out
}

// MustMul is like Mul but panics on a shape mismatch.
func MustMul[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	out, err := Mul(a, b)
	if err != nil {
		panic(err)
	}
	return out
}

// Transpose returns a new cols×rows matrix with m's rows as columns.
func Transpose[T Numeric](m *Matrix[T]) *Matrix[T] {
	out := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Scale returns a new matrix with every element multiplied by s.
func Scale[T Numeric](m *Matrix[T], s T) *Matrix[T] {
	out := m.Clone()
	out.ScaleInPlace(s)
	return out
}

// Apply returns a new matrix with fn applied to every element.
func Apply[T Numeric](m *Matrix[T], fn func(T) T) *Matrix[T] {
	out := m.Clone()
	out.ApplyInPlace(fn)
	return out
}

// ScaleInPlace multiplies every element by s.
func (m *Matrix[T]) ScaleInPlace(s T) {
	for i := range m.data {
		m.data[i] *= s
	}
}

// ApplyInPlace replaces every element x with fn(x).
func (m *Matrix[T]) ApplyInPlace(fn func(T) T) {
	for i, v := range m.data {
		m.data[i] = fn(v)
	}
}

// AddScaled performs m += alpha*other in place.
//
// Returns ErrShape unless m and other have identical dimensions.
func (m *Matrix[T]) AddScaled(other *Matrix[T], alpha T) error {
	if !m.SameShape(other) {
		return shapeErrorf("AddScaled", m.rows, m.cols, other.rows, other.cols)
	}
	for i, v := range other.data {
		m.data[i] += alpha * v
	}
	return nil
}

// CopyFrom overwrites m's elements with other's.
//
// Returns ErrShape unless m and other have identical dimensions.
func (m *Matrix[T]) CopyFrom(other *Matrix[T]) error {
	if !m.SameShape(other) {
		return shapeErrorf("CopyFrom", m.rows, m.cols, other.rows, other.cols)
	}
	copy(m.data, other.data)
	return nil
}
