package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	autograd "github.com/tektwister/scalargrad"
	"github.com/tektwister/scalargrad/pkg/config"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "scalargrad",
		Level: hclog.Info,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rand.Seed(seed)

	// Tiny regression dataset: 3 features in, 1 target out.
	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	model := autograd.NewMLP(len(xs[0]), cfg.Hidden)
	logger.Info("starting training",
		"parameters", len(model.Parameters()),
		"learning_rate", cfg.LearningRate,
		"epochs", cfg.Epochs,
		"seed", seed,
	)

	var loss *autograd.Value
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		// Forward pass: summed squared error over the whole batch.
		loss = autograd.NewLabeled(0.0, "loss")
		for i, x := range xs {
			pred := model.CallFloats(x)[0]
			loss = loss.Add(pred.SubScalar(ys[i]).Pow(2))
		}

		autograd.ZeroGradAll(model)
		if err := loss.Backward(); err != nil {
			logger.Error("backward pass failed", "error", err)
			os.Exit(1)
		}

		// Plain gradient descent.
		for _, p := range model.Parameters() {
			p.SetData(p.Data() - cfg.LearningRate*p.Grad())
		}

		logger.Info("step", "epoch", epoch, "loss", loss.Data())
	}

	if cfg.DotFile != "" && loss != nil {
		if err := os.WriteFile(cfg.DotFile, []byte(autograd.Dot(loss)), 0o644); err != nil {
			logger.Error("writing graph export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote loss graph", "path", cfg.DotFile)
	}

	logger.Info("final predictions")
	for i, x := range xs {
		pred := model.CallFloats(x)[0]
		logger.Info("sample", "index", i, "target", ys[i], "prediction", pred.Data())
	}
}
