package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/pkg/errors"
)

// Case is one labeled example: an input column and its expected output column.
type Case struct {
	Input *matrix.Matrix[float32] // [input_size, 1]
	Label *matrix.Matrix[float32] // [output_size, 1]
}

// Dataset is a set of labeled examples packed as the rows of a matrix.
//
// Each row is laid out as
//
//	[ skip columns... | input_size features... | output_size labels... ]
//
// The leading skip columns (zero by default) are ignored; they accommodate
// tables that carry a constant flag column in front of the features.
//
// Every column is accounted for: a 4×3 table read with WithSkip(1) needs
// inputSize+outputSize == 2, so "skip one, feed two, compare the last" is
// not expressible and returns matrix.ErrShape.
//
// Example (XOR, two features and one label per row):
//
//	m, _ := matrix.FromSlice(4, 3, []float32{
//	    0, 0, 0,
//	    0, 1, 1,
//	    1, 0, 1,
//	    1, 1, 0,
//	})
//	ds, err := nn.NewDataset(m, 2, 1)
type Dataset struct {
	inputSize  int
	outputSize int
	skip       int
	cases      []Case
}

// DatasetOption configures NewDataset.
type DatasetOption func(*Dataset)

// WithSkip ignores the first n columns of every row.
func WithSkip(n int) DatasetOption {
	return func(d *Dataset) {
		d.skip = n
	}
}

// NewDataset splits m into cases of inputSize features and outputSize labels.
//
// Returns matrix.ErrShape unless m.Cols() == skip + inputSize + outputSize,
// and matrix.ErrCreate if inputSize or outputSize is not strictly positive.
// The cases are copies; later changes to m do not affect the dataset.
func NewDataset(m *matrix.Matrix[float32], inputSize, outputSize int, opts ...DatasetOption) (*Dataset, error) {
	d := &Dataset{inputSize: inputSize, outputSize: outputSize}
	for _, opt := range opts {
		opt(d)
	}

	if inputSize <= 0 || outputSize <= 0 || d.skip < 0 {
		return nil, errors.Wrapf(matrix.ErrCreate,
			"NewDataset: input=%d output=%d skip=%d", inputSize, outputSize, d.skip)
	}
	width := d.skip + inputSize + outputSize
	if m.Cols() != width {
		return nil, errors.Wrapf(matrix.ErrShape,
			"NewDataset: rows have %d columns, want %d (skip=%d input=%d output=%d)",
			m.Cols(), width, d.skip, inputSize, outputSize)
	}

	d.cases = make([]Case, 0, m.Rows())
	for r, row := range m.RowChunks() {
		features := append([]float32(nil), row[d.skip:d.skip+inputSize]...)
		labels := append([]float32(nil), row[d.skip+inputSize:]...)

		input, err := matrix.FromSlice(inputSize, 1, features)
		if err != nil {
			return nil, errors.Wrapf(err, "NewDataset: row %d input", r)
		}
		label, err := matrix.FromSlice(outputSize, 1, labels)
		if err != nil {
			return nil, errors.Wrapf(err, "NewDataset: row %d label", r)
		}
		d.cases = append(d.cases, Case{Input: input, Label: label})
	}
	return d, nil
}

// Len returns the number of cases.
func (d *Dataset) Len() int {
	return len(d.cases)
}

// InputSize returns the number of features per case.
func (d *Dataset) InputSize() int {
	return d.inputSize
}

// OutputSize returns the number of labels per case.
func (d *Dataset) OutputSize() int {
	return d.outputSize
}

// Cases returns the cases in row order.
//
// The returned slice and matrices are owned by the dataset and must not be
// modified.
func (d *Dataset) Cases() []Case {
	return d.cases
}

// checkCompatible returns matrix.ErrShape unless d matches net's input and
// output sizes.
func (d *Dataset) checkCompatible(net *Network) error {
	if d.inputSize != net.InputSize() || d.outputSize != net.OutputSize() {
		return errors.Wrapf(matrix.ErrShape,
			"dataset has %d inputs / %d outputs, network expects %d / %d",
			d.inputSize, d.outputSize, net.InputSize(), net.OutputSize())
	}
	return nil
}
