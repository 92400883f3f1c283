package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 784, cfg.InputSize)
	assert.Equal(t, 10, cfg.NumClasses)
	assert.Equal(t, 60000, cfg.TrainCount)
	assert.Equal(t, 10000, cfg.TestCount)
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	yaml := `
learning_rate: 0.1
train_count: 500
seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden keys.
	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 500, cfg.TrainCount)
	assert.Equal(t, int64(42), cfg.Seed)

	// Untouched keys keep defaults.
	assert.Equal(t, 784, cfg.InputSize)
	assert.Equal(t, 10000, cfg.TestCount)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("num_classes: -1"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		DataDir:      "/mnt/mnist",
		LearningRate: 0.2,
		Seed:         7,
		Workers:      4,
	})

	assert.Equal(t, filepath.Join("/mnt/mnist", "train-images-idx3-ubyte"), cfg.TrainImages)
	assert.Equal(t, filepath.Join("/mnt/mnist", "t10k-labels-idx1-ubyte"), cfg.TestLabels)
	assert.Equal(t, 0.2, cfg.LearningRate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 4, cfg.Workers)

	// Zero overrides leave everything alone.
	before := *cfg
	cfg.ApplyOverrides(Overrides{})
	assert.Equal(t, before, *cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero input size", func(c *Config) { c.InputSize = 0 }},
		{"zero classes", func(c *Config) { c.NumClasses = 0 }},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }},
		{"negative learning rate", func(c *Config) { c.LearningRate = -0.1 }},
		{"zero train count", func(c *Config) { c.TrainCount = 0 }},
		{"zero test count", func(c *Config) { c.TestCount = 0 }},
		{"empty train images", func(c *Config) { c.TrainImages = "" }},
		{"empty test labels", func(c *Config) { c.TestLabels = "" }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
