package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/matrix"
	"github.com/born-ml/mlp/nn"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

// candidate is one trained network of a run. With Restarts > 1 every
// candidate is built and trained by its own goroutine.
type candidate struct {
	seed    uint64
	net     *nn.Network
	ds      *nn.Dataset
	history *nn.History
	loss    float32
}

// runXOR builds a network from cfg, reports its predictions on the truth
// table, trains it and reports again. Progress, when enabled, goes to
// progress; everything else goes to out.
func runXOR(ctx context.Context, cfg Config, out, progress io.Writer) error {
	return exceptions.TryCatch[error](func() {
		runID := uuid.NewString()
		klog.V(1).Infof("run %s: config %+v", runID, cfg)

		trainCfg := must.M1(cfg.TrainConfig())
		untrained := must.M1(newCandidate(cfg, cfg.Seed))

		fmt.Fprintf(out, "Network %v, %s parameters, table %q\n",
			cfg.Sizes, humanize.Comma(int64(countParams(untrained.net))), cfg.Table)
		must.M(report(out, "Before training", cfg, untrained, trainCfg.Loss))

		fmt.Fprintf(out, "\nTraining for %s epochs (%s, %s, %s loss)\n",
			humanize.Comma(int64(cfg.Epochs)), trainCfg.Optimizer, trainCfg.Mode, trainCfg.Loss)

		var best *candidate
		if cfg.Restarts == 1 {
			var bar *epochProgress
			if cfg.Progress && progress != nil && cfg.Epochs > 0 {
				bar = newEpochProgress(progress, cfg.Epochs)
				trainCfg.OnEpoch = bar.OnEpoch
			}
			best = untrained
			must.M(best.train(cfg.Epochs, trainCfg))
			if bar != nil {
				bar.Close()
			}
		} else {
			winner := must.M1(trainRestarts(ctx, cfg, trainCfg))
			fmt.Fprintf(out, "Best of %d restarts: seed %d\n", cfg.Restarts, winner.seed)
			// The network reported before training takes the winner's weights.
			must.M(untrained.net.CopyFrom(winner.net))
			best = untrained
			best.seed, best.history, best.loss = winner.seed, winner.history, winner.loss
		}
		klog.V(1).Infof("run %s: seed %d, %d epochs, final epoch loss %.6f",
			runID, best.seed, best.history.Epochs(), best.history.Final())

		must.M(report(out, "After training", cfg, best, trainCfg.Loss))
	})
}

// newCandidate builds and randomizes a network for cfg and its dataset.
func newCandidate(cfg Config, seed uint64) (*candidate, error) {
	net, err := nn.NewNetwork(cfg.Sizes)
	if err != nil {
		return nil, err
	}
	src := rand.New(rand.NewPCG(seed, seed))
	if cfg.Init == "xavier" {
		net.RandomizeXavier(src)
	} else {
		net.Randomize(src)
	}

	data := append([]float32(nil), truthTables[cfg.Table]...)
	table, err := matrix.FromSlice(4, 3, data)
	if err != nil {
		return nil, err
	}
	ds, err := net.Dataset(table)
	if err != nil {
		return nil, err
	}
	return &candidate{seed: seed, net: net, ds: ds}, nil
}

// train fits the candidate and records its mean loss afterwards.
func (c *candidate) train(epochs int, trainCfg nn.TrainConfig) error {
	history, err := c.net.Train(c.ds, epochs, trainCfg)
	if err != nil {
		return err
	}
	c.history = history
	c.loss, err = c.net.MeanLoss(c.ds, trainCfg.Loss)
	return err
}

// trainRestarts trains cfg.Restarts candidates seeded cfg.Seed,
// cfg.Seed+1, ... concurrently and returns the one with the lowest loss.
func trainRestarts(ctx context.Context, cfg Config, trainCfg nn.TrainConfig) (*candidate, error) {
	trainCfg.OnEpoch = nil
	candidates, err := parallel.Map(ctx, cfg.Restarts, parallel.DefaultConfig(),
		func(_ context.Context, i int) (*candidate, error) {
			c, err := newCandidate(cfg, cfg.Seed+uint64(i))
			if err != nil {
				return nil, err
			}
			if err := c.train(cfg.Epochs, trainCfg); err != nil {
				return nil, err
			}
			klog.V(1).Infof("restart %d (seed %d): loss %.6f", i, c.seed, c.loss)
			return c, nil
		})
	if err != nil {
		return nil, err
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.loss < best.loss {
			best = c
		}
	}
	return best, nil
}

func report(w io.Writer, title string, cfg Config, c *candidate, loss nn.LossKind) error {
	preds, err := c.net.Evaluate(c.ds)
	if err != nil {
		return err
	}
	mean, err := c.net.MeanLoss(c.ds, loss)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s (mean %s loss %.6f):\n", title, loss, mean)
	if cfg.Output == "text" {
		return nn.Report(w, preds)
	}
	_, err = fmt.Fprintln(w, predictionTable(preds))
	return err
}

func countParams(net *nn.Network) int {
	total := 0
	for _, p := range net.Parameters() {
		total += p.Value().Size()
	}
	return total
}
