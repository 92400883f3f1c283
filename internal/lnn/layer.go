// Package lnn implements a single-layer linear classifier trained by the
// delta rule: no hidden layers, no activation nonlinearity, no
// back-propagation. Each output class owns one cell whose weighted sum over
// the binarized input pixels is its score.
package lnn

import "math/rand"

// Cell is the per-class state: one weight per input pixel, the binarized
// input from the last image, and the last computed output score.
type Cell struct {
	Weight []float64
	Input  []float64 // 0 or 1 after binarization
	Output float64
}

// Layer is an ordered collection of cells, one per output class.
type Layer struct {
	Cells     []Cell
	inputSize int
}

// NewLayer constructs a layer with weights drawn independently from a uniform
// distribution over [0,1). The same seed always produces the same weights.
func NewLayer(numClasses, inputSize int, seed int64) *Layer {
	rng := rand.New(rand.NewSource(seed))

	cells := make([]Cell, numClasses)
	for i := range cells {
		weight := make([]float64, inputSize)
		for j := range weight {
			weight[j] = rng.Float64()
		}
		cells[i] = Cell{
			Weight: weight,
			Input:  make([]float64, inputSize),
		}
	}

	return &Layer{Cells: cells, inputSize: inputSize}
}

// NumClasses returns the number of output classes.
func (l *Layer) NumClasses() int { return len(l.Cells) }

// InputSize returns the number of input pixels per image.
func (l *Layer) InputSize() int { return l.inputSize }
