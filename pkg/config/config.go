package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// TrainerConfig holds the hyperparameters for the training demo.
type TrainerConfig struct {
	LearningRate float64
	Epochs       int
	Seed         int64 // 0 means seed from the clock
	Hidden       []int // layer sizes after the input layer
	DotFile      string
}

// Load reads the trainer configuration from environment variables,
// attempting to find a .env file in the current or parent directories
// first. Unset variables fall back to defaults.
func Load() (*TrainerConfig, error) {
	_ = loadEnvFile()

	cfg := &TrainerConfig{
		LearningRate: 0.05,
		Epochs:       20,
		Hidden:       []int{4, 4, 1},
		DotFile:      os.Getenv("SCALARGRAD_DOT_FILE"),
	}

	if s := os.Getenv("SCALARGRAD_LEARNING_RATE"); s != "" {
		lr, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrap(err, "SCALARGRAD_LEARNING_RATE")
		}
		cfg.LearningRate = lr
	}

	if s := os.Getenv("SCALARGRAD_EPOCHS"); s != "" {
		epochs, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrap(err, "SCALARGRAD_EPOCHS")
		}
		cfg.Epochs = epochs
	}

	if s := os.Getenv("SCALARGRAD_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "SCALARGRAD_SEED")
		}
		cfg.Seed = seed
	}

	if s := os.Getenv("SCALARGRAD_HIDDEN"); s != "" {
		hidden, err := parseSizes(s)
		if err != nil {
			return nil, errors.Wrap(err, "SCALARGRAD_HIDDEN")
		}
		cfg.Hidden = hidden
	}

	return cfg, nil
}

// parseSizes parses a comma-separated layer size list like "4,4,1".
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, errors.Errorf("layer size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// loadEnvFile attempts to look up until it finds a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	// Look up to 5 levels
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
