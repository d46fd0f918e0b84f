package nn

import (
	"bytes"
	"errors"
	"testing"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate tests that every case yields a prediction in row order.
func TestEvaluate(t *testing.T) {
	net, ds := xorNetwork(t, []int{2, 2, 1}, 12)
	before := snapshot(net)

	preds, err := net.Evaluate(ds)
	require.NoError(t, err)
	require.Len(t, preds, 4)

	for i, p := range preds {
		assert.Equal(t, i, p.Case)
		assert.Same(t, ds.Cases()[i].Input, p.Input)
		assert.Same(t, ds.Cases()[i].Label, p.Expected)

		want, err := net.Infer(p.Input)
		require.NoError(t, err)
		assert.Equal(t, want.Data(), p.Result.Data())
	}
	assert.Equal(t, before, snapshot(net))
}

// TestEvaluate_ShapeMismatch tests ErrShape on an incompatible dataset.
func TestEvaluate_ShapeMismatch(t *testing.T) {
	net, err := NewNetwork([]int{2, 2})
	require.NoError(t, err)
	ds, err := NewDataset(xorTable(t), 2, 1)
	require.NoError(t, err)

	_, err = net.Evaluate(ds)
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = net.MeanLoss(ds, MSE)
	require.ErrorIs(t, err, matrix.ErrShape)
}

// TestMeanLoss_ZeroNetwork tests the mean loss of a network that outputs 0.5.
func TestMeanLoss_ZeroNetwork(t *testing.T) {
	net, err := NewNetwork([]int{2, 2, 1})
	require.NoError(t, err)
	ds, err := net.Dataset(xorTable(t))
	require.NoError(t, err)

	mse, err := net.MeanLoss(ds, MSE)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, mse, 1e-7)

	bce, err := net.MeanLoss(ds, BinaryCrossEntropy)
	require.NoError(t, err)
	assert.InDelta(t, 0.6931, bce, 1e-4)
}

// TestReport tests the textual prediction format.
func TestReport(t *testing.T) {
	net, err := NewNetwork([]int{2, 2, 1})
	require.NoError(t, err)
	ds, err := net.Dataset(xorTable(t))
	require.NoError(t, err)
	preds, err := net.Evaluate(ds)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, preds[:2]))
	assert.Equal(t,
		"Case 0:\n\tResult: [ 0.50 ]\n\tExpected: [ 0.00 ]\n"+
			"Case 1:\n\tResult: [ 0.50 ]\n\tExpected: [ 1.00 ]\n",
		buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// TestReport_WriteError tests that writer errors are returned.
func TestReport_WriteError(t *testing.T) {
	net, ds := xorNetwork(t, []int{2, 1}, 1)
	preds, err := net.Evaluate(ds)
	require.NoError(t, err)

	require.EqualError(t, Report(failingWriter{}, preds), "disk full")
}
