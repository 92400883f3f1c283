// Package config holds the runtime knobs for a classifier run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures everything a run needs: layer dimensions, learning rate,
// dataset locations and sizes, the PRNG seed, and the worker count for the
// per-class fan-out.
type Config struct {
	InputSize    int     `yaml:"input_size"`    // pixels per image (28×28 = 784)
	NumClasses   int     `yaml:"num_classes"`   // output classes (digits 0-9)
	LearningRate float64 `yaml:"learning_rate"` // delta-rule step size
	TrainImages  string  `yaml:"train_images"`
	TrainLabels  string  `yaml:"train_labels"`
	TestImages   string  `yaml:"test_images"`
	TestLabels   string  `yaml:"test_labels"`
	TrainCount   int     `yaml:"train_count"` // images consumed during training
	TestCount    int     `yaml:"test_count"`  // images consumed during testing
	Seed         int64   `yaml:"seed"`        // weight initialization seed
	Workers      int     `yaml:"workers"`     // per-class fan-out goroutines (0 = NumCPU)
}

// Overrides captures CLI supplied values. Zero values leave the config untouched.
type Overrides struct {
	DataDir      string
	LearningRate float64
	TrainCount   int
	TestCount    int
	Seed         int64
	Workers      int
}

// Default returns the standard MNIST configuration.
func Default() *Config {
	return &Config{
		InputSize:    28 * 28,
		NumClasses:   10,
		LearningRate: 0.05,
		TrainImages:  "data/train-images-idx3-ubyte",
		TrainLabels:  "data/train-labels-idx1-ubyte",
		TestImages:   "data/t10k-images-idx3-ubyte",
		TestLabels:   "data/t10k-labels-idx1-ubyte",
		TrainCount:   60000,
		TestCount:    10000,
		Seed:         1,
		Workers:      0,
	}
}

// Load reads a YAML config from path, layered over Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override. DataDir rewrites all
// four file paths to the standard MNIST names under that directory.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataDir != "" {
		c.TrainImages = filepath.Join(o.DataDir, "train-images-idx3-ubyte")
		c.TrainLabels = filepath.Join(o.DataDir, "train-labels-idx1-ubyte")
		c.TestImages = filepath.Join(o.DataDir, "t10k-images-idx3-ubyte")
		c.TestLabels = filepath.Join(o.DataDir, "t10k-labels-idx1-ubyte")
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.TrainCount > 0 {
		c.TrainCount = o.TrainCount
	}
	if o.TestCount > 0 {
		c.TestCount = o.TestCount
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.InputSize <= 0 {
		return fmt.Errorf("input_size must be > 0 (got %d)", c.InputSize)
	}
	if c.NumClasses <= 0 {
		return fmt.Errorf("num_classes must be > 0 (got %d)", c.NumClasses)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.TrainCount <= 0 {
		return fmt.Errorf("train_count must be > 0 (got %d)", c.TrainCount)
	}
	if c.TestCount <= 0 {
		return fmt.Errorf("test_count must be > 0 (got %d)", c.TestCount)
	}
	for name, path := range map[string]string{
		"train_images": c.TrainImages,
		"train_labels": c.TrainLabels,
		"test_images":  c.TestImages,
		"test_labels":  c.TestLabels,
	} {
		if path == "" {
			return fmt.Errorf("%s must be set", name)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	return nil
}
