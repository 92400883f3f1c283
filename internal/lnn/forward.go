package lnn

import (
	"fmt"

	"github.com/linnet-ml/linnet/internal/parallel"
)

// Forward computes every cell's output for one image. Weights are read-only
// here; the fan-out across cells is safe because each cell owns a disjoint
// weight/input/output slice.
func (l *Layer) Forward(pixels []byte, cfg parallel.Config) {
	if len(pixels) != l.inputSize {
		panic(fmt.Sprintf("lnn: Forward expected %d pixels, got %d", l.inputSize, len(pixels)))
	}
	parallel.For(len(l.Cells), func(i int) {
		l.Cells[i].forward(pixels)
	}, cfg)
}

// Train runs the forward pass and applies the delta-rule update for one
// image. Each cell updates strictly after its own forward pass, so outputs
// always reflect the weights from before this image's update. Callers must
// not overlap Train calls for different images: learning from one image has
// to be visible to the next.
func (l *Layer) Train(pixels []byte, target []float64, learningRate float64, cfg parallel.Config) {
	if len(pixels) != l.inputSize {
		panic(fmt.Sprintf("lnn: Train expected %d pixels, got %d", l.inputSize, len(pixels)))
	}
	if len(target) != len(l.Cells) {
		panic(fmt.Sprintf("lnn: Train expected %d target entries, got %d", len(l.Cells), len(target)))
	}
	parallel.For(len(l.Cells), func(i int) {
		c := &l.Cells[i]
		c.forward(pixels)
		c.update(target[i], learningRate)
	}, cfg)
}

// forward binarizes the pixels into the cell's input (nonzero pixel → 1) and
// sets the output to the sum of weights over active pixels, normalized by the
// input size.
func (c *Cell) forward(pixels []byte) {
	sum := 0.0
	for j, p := range pixels {
		if p != 0 {
			c.Input[j] = 1
			sum += c.Weight[j]
		} else {
			c.Input[j] = 0
		}
	}
	c.Output = sum / float64(len(pixels))
}

// update nudges the weights of active pixels by (target − output) ×
// learningRate. Inactive pixels are never touched.
func (c *Cell) update(target, learningRate float64) {
	delta := (target - c.Output) * learningRate
	for j, active := range c.Input {
		if active != 0 {
			c.Weight[j] += delta
		}
	}
}
