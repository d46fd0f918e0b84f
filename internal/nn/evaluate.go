package nn

import (
	"fmt"
	"io"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Prediction pairs the network output for one case with its expected label.
type Prediction struct {
	Case     int                     // Row index in the dataset
	Input    *matrix.Matrix[float32] // [input_size, 1], owned by the dataset
	Result   *matrix.Matrix[float32] // [output_size, 1]
	Expected *matrix.Matrix[float32] // [output_size, 1], owned by the dataset
}

// Evaluate runs inference on every case of ds and returns the predictions
// alongside the expected labels, in row order.
//
// Evaluate is observational: it neither scores nor asserts. Returns
// matrix.ErrShape if ds does not match the network's input and output sizes.
func (n *Network) Evaluate(ds *Dataset) ([]Prediction, error) {
	if err := ds.checkCompatible(n); err != nil {
		return nil, errors.Wrap(err, "Network.Evaluate")
	}

	preds := make([]Prediction, 0, ds.Len())
	for i, c := range ds.Cases() {
		out, err := n.Infer(c.Input)
		if err != nil {
			return nil, errors.Wrapf(err, "Network.Evaluate: case %d", i)
		}
		if klog.V(2).Enabled() {
			klog.Infof("case %d: result=%v expected=%v", i, out.Data(), c.Label.Data())
		}
		preds = append(preds, Prediction{Case: i, Input: c.Input, Result: out, Expected: c.Label})
	}
	return preds, nil
}

// MeanLoss returns the loss of kind averaged over every case of ds.
//
// Returns matrix.ErrShape if ds does not match the network.
func (n *Network) MeanLoss(ds *Dataset, kind LossKind) (float32, error) {
	preds, err := n.Evaluate(ds)
	if err != nil {
		return 0, err
	}
	if len(preds) == 0 {
		return 0, nil
	}

	loss := kind.New()
	var total float32
	for _, p := range preds {
		v, err := loss.Forward(p.Result, p.Expected)
		if err != nil {
			return 0, errors.Wrapf(err, "Network.MeanLoss: case %d", p.Case)
		}
		total += v
	}
	return total / float32(len(preds)), nil
}

// Report writes one human-readable block per prediction:
//
//	Case 0:
//		Result: [ 0.52 ]
//		Expected: [ 1.00 ]
func Report(w io.Writer, preds []Prediction) error {
	for _, p := range preds {
		if _, err := fmt.Fprintf(w, "Case %d:\n\tResult: %s\n\tExpected: %s\n", p.Case, p.Result, p.Expected); err != nil {
			return err
		}
	}
	return nil
}
