package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ZeroFilled tests that New allocates rows*cols zero values.
func TestNew_ZeroFilled(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {5, 1}, {1, 7}, {4, 4}} {
		m, err := New[float32](dims[0], dims[1])
		require.NoError(t, err)
		assert.Equal(t, dims[0]*dims[1], m.Size())
		assert.Equal(t, dims[0], m.Rows())
		assert.Equal(t, dims[1], m.Cols())
		for _, v := range m.All() {
			assert.Zero(t, v)
		}
	}

	ints, err := New[int64](3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 0}, ints.Data())
}

// TestNew_InvalidDimensions tests that non-positive dimensions fail with ErrCreate.
func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {0, 0}, {-1, 3}, {3, -2}} {
		m, err := New[float64](dims[0], dims[1])
		require.ErrorIs(t, err, ErrCreate, "dims %v", dims)
		assert.Nil(t, m)
	}
}

// TestNew_Overflow tests that dimensions whose product overflows int fail
// with ErrCreate instead of wrapping to a small size.
func TestNew_Overflow(t *testing.T) {
	huge := [][2]int{
		{math.MaxInt/2 + 1, 2},
		{2, math.MaxInt},
		{math.MaxInt, math.MaxInt},
	}
	for _, dims := range huge {
		m, err := New[float32](dims[0], dims[1])
		require.ErrorIs(t, err, ErrCreate, "dims %v", dims)
		assert.Nil(t, m)

		m, err = FromSlice[float32](dims[0], dims[1], nil)
		require.ErrorIs(t, err, ErrCreate, "dims %v", dims)
		assert.Nil(t, m)
	}

	// MaxInt*MaxInt wraps to 1 in int arithmetic.
	m, err := FromSlice(math.MaxInt, math.MaxInt, []float32{7})
	require.ErrorIs(t, err, ErrCreate)
	assert.Nil(t, m)
}

// TestFromSlice tests FromSlice fails iff len(data) != rows*cols.
func TestFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		data    []float32
		wantErr bool
	}{
		{"exact", 2, 2, []float32{1, 2, 3, 4}, false},
		{"column", 3, 1, []float32{1, 2, 3}, false},
		{"too short", 2, 2, []float32{1, 2, 3}, true},
		{"too long", 2, 2, []float32{1, 2, 3, 4, 5}, true},
		{"empty", 1, 1, nil, true},
		{"zero rows", 0, 2, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromSlice(tt.rows, tt.cols, tt.data)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCreate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.data, m.Data())
		})
	}
}

// TestFromSlice_TakesOwnership tests that the matrix aliases the supplied slice.
func TestFromSlice_TakesOwnership(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	m, err := FromSlice(2, 2, data)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 9))
	assert.Equal(t, float32(9), data[0])
}

// TestAccess tests At, Ptr and Set on a 2x3 matrix.
func TestAccess(t *testing.T) {
	m, err := FromSlice(2, 3, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	p, err := m.Ptr(0, 1)
	require.NoError(t, err)
	*p = 10
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	require.NoError(t, m.Set(1, 0, 30))
	assert.Equal(t, []int{0, 10, 2, 30, 4, 5}, m.Data())
}

// TestAccess_OutOfRange tests that every out-of-range coordinate fails,
// including pairs whose flat index would land inside the backing slice.
func TestAccess_OutOfRange(t *testing.T) {
	m, err := New[float32](2, 3)
	require.NoError(t, err)

	for _, rc := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}, {0, 4}, {1, 3}, {5, 5}} {
		_, err := m.At(rc[0], rc[1])
		require.ErrorIs(t, err, ErrGet, "At%v", rc)

		_, err = m.Ptr(rc[0], rc[1])
		require.ErrorIs(t, err, ErrGet, "Ptr%v", rc)

		require.ErrorIs(t, m.Set(rc[0], rc[1], 1), ErrGet, "Set%v", rc)
	}
	assert.Equal(t, make([]float32, 6), m.Data())
}

// TestAll_RowMajor tests iteration order and early termination.
func TestAll_RowMajor(t *testing.T) {
	m, err := FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	var got []float64
	for i, v := range m.All() {
		assert.Equal(t, float64(i+1), v)
		got = append(got, v)
	}
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// TestData_Mutable tests in-place updates through the Data view.
func TestData_Mutable(t *testing.T) {
	m, err := New[float32](2, 2)
	require.NoError(t, err)
	for i := range m.Data() {
		m.Data()[i] = float32(i) * 2
	}
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)
}

// TestRowChunks tests one slice per row in order.
func TestRowChunks(t *testing.T) {
	m, err := FromSlice(3, 2, []int32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	var rows [][]int32
	for r, chunk := range m.RowChunks() {
		assert.Len(t, chunk, 2)
		assert.Equal(t, len(rows), r)
		rows = append(rows, chunk)
	}
	assert.Equal(t, [][]int32{{1, 2}, {3, 4}, {5, 6}}, rows)
}

// TestFill tests that Fill overwrites every element.
func TestFill(t *testing.T) {
	m, err := New[float32](3, 3)
	require.NoError(t, err)
	m.Fill(0.25)
	for _, v := range m.All() {
		assert.Equal(t, float32(0.25), v)
	}
}

// TestClone_Independent tests that a clone shares no storage.
func TestClone_Independent(t *testing.T) {
	m, err := FromSlice(1, 3, []float32{1, 2, 3})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	m.Fill(7)

	assert.Equal(t, []float32{100, 2, 3}, c.Data())
	assert.Equal(t, []float32{7, 7, 7}, m.Data())
}

// TestString tests the two-decimal debug rendering.
func TestString(t *testing.T) {
	m, err := FromSlice(2, 2, []float32{1, 2.5, -3, 0.126})
	require.NoError(t, err)
	assert.Equal(t, "[ 1.00 2.50\n  -3.00 0.13 ]", m.String())

	single, err := FromSlice(1, 1, []int{4})
	require.NoError(t, err)
	assert.Equal(t, "[ 4.00 ]", single.String())
}
