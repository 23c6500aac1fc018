package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SCALARGRAD_LEARNING_RATE",
		"SCALARGRAD_EPOCHS",
		"SCALARGRAD_SEED",
		"SCALARGRAD_HIDDEN",
		"SCALARGRAD_DOT_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LearningRate != 0.05 {
		t.Errorf("Expected default learning rate 0.05, got %f", cfg.LearningRate)
	}
	if cfg.Epochs != 20 {
		t.Errorf("Expected default epochs 20, got %d", cfg.Epochs)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected default seed 0, got %d", cfg.Seed)
	}
	if diff := cmp.Diff([]int{4, 4, 1}, cfg.Hidden); diff != "" {
		t.Errorf("Unexpected default hidden sizes (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCALARGRAD_LEARNING_RATE", "0.01")
	t.Setenv("SCALARGRAD_EPOCHS", "50")
	t.Setenv("SCALARGRAD_SEED", "42")
	t.Setenv("SCALARGRAD_HIDDEN", "8, 4, 1")
	t.Setenv("SCALARGRAD_DOT_FILE", "loss.dot")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LearningRate != 0.01 || cfg.Epochs != 50 || cfg.Seed != 42 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if diff := cmp.Diff([]int{8, 4, 1}, cfg.Hidden); diff != "" {
		t.Errorf("Unexpected hidden sizes (-want +got):\n%s", diff)
	}
	if cfg.DotFile != "loss.dot" {
		t.Errorf("Expected dot file override, got %q", cfg.DotFile)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)

	cases := map[string]string{
		"SCALARGRAD_LEARNING_RATE": "fast",
		"SCALARGRAD_EPOCHS":        "many",
		"SCALARGRAD_SEED":          "1.5",
		"SCALARGRAD_HIDDEN":        "4,zero,1",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("Expected an error for %s=%q", key, val)
			}
		})
	}
}

func TestParseSizesRejectsNonPositive(t *testing.T) {
	if _, err := parseSizes("4,0,1"); err == nil {
		t.Error("Expected an error for a zero layer size")
	}
	if _, err := parseSizes("-2"); err == nil {
		t.Error("Expected an error for a negative layer size")
	}
}
