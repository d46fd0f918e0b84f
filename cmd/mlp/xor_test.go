package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunXOR_Table(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 200

	var out, progress bytes.Buffer
	require.NoError(t, runXOR(context.Background(), cfg, &out, &progress))

	s := out.String()
	assert.Contains(t, s, "Network [2 2 1], 9 parameters")
	assert.Contains(t, s, "Before training")
	assert.Contains(t, s, "Training for 200 epochs (sgd, stochastic, mse loss)")
	assert.Contains(t, s, "After training")
	assert.Contains(t, s, "Expected")
	assert.NotEmpty(t, progress.String())
}

func TestRunXOR_Text(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 1_500
	cfg.Table = "conflicting"
	cfg.Output = "text"
	cfg.Progress = false

	var out bytes.Buffer
	require.NoError(t, runXOR(context.Background(), cfg, &out, nil))

	s := out.String()
	assert.Contains(t, s, "Training for 1,500 epochs")
	assert.Contains(t, s, "Case 0:\n\tResult: [ ")
	assert.Contains(t, s, "\tExpected: [ 1.00 ]\n")
	assert.Contains(t, s, "Case 3:")
}

func TestRunXOR_BadSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sizes = []int{2, 0, 1}
	cfg.Progress = false

	var out bytes.Buffer
	require.Error(t, runXOR(context.Background(), cfg, &out, nil))
}

func TestPredictionTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 0
	cfg.Progress = false

	var out bytes.Buffer
	require.NoError(t, runXOR(context.Background(), cfg, &out, nil))
	assert.Contains(t, out.String(), "Case")
	assert.Contains(t, out.String(), "OK")
}

func TestRunXOR_Restarts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 300
	cfg.Restarts = 3
	cfg.Seed = 10
	cfg.Output = "text"

	var out bytes.Buffer
	require.NoError(t, runXOR(context.Background(), cfg, &out, nil))
	assert.Regexp(t, `Best of 3 restarts: seed 1[012]\n`, out.String())

	// The reported network carries the winning weights.
	trainCfg, err := cfg.TrainConfig()
	require.NoError(t, err)
	winner, err := trainRestarts(context.Background(), cfg, trainCfg)
	require.NoError(t, err)
	assert.Contains(t, out.String(), fmt.Sprintf("After training (mean mse loss %.6f)", winner.loss))
}

func TestTrainRestarts_PicksLowestLoss(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 100
	cfg.Restarts = 4
	trainCfg, err := cfg.TrainConfig()
	require.NoError(t, err)

	best, err := trainRestarts(context.Background(), cfg, trainCfg)
	require.NoError(t, err)

	for i := 0; i < cfg.Restarts; i++ {
		c, err := newCandidate(cfg, cfg.Seed+uint64(i))
		require.NoError(t, err)
		require.NoError(t, c.train(cfg.Epochs, trainCfg))
		assert.LessOrEqual(t, best.loss, c.loss, "seed %d", c.seed)
	}
}
