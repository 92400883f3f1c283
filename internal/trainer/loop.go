// Package trainer drives the classifier over an image stream, in training or
// evaluation mode.
package trainer

import (
	"fmt"
	"time"

	"github.com/linnet-ml/linnet/internal/lnn"
	"github.com/linnet-ml/linnet/internal/metrics"
	"github.com/linnet-ml/linnet/internal/parallel"
)

// Source yields sequential (image, label) pairs in file order. It cannot be
// restarted; the drivers consume exactly the number of records they are told.
type Source interface {
	Next() (pixels []byte, label byte, err error)
}

// Result summarizes one phase over the stream.
type Result struct {
	Processed   int
	Errors      int
	SuccessRate float64 // percent of images predicted correctly
	Elapsed     time.Duration
}

// Train folds the layer over count images from src, adjusting weights after
// every image. Images are processed strictly in stream order: each forward
// pass must see the weights produced by the previous image's update.
func Train(layer *lnn.Layer, src Source, count int, learningRate float64, cfg parallel.Config) (Result, error) {
	return run(layer, src, count, learningRate, true, cfg)
}

// Evaluate scores count images from src without touching any weight.
func Evaluate(layer *lnn.Layer, src Source, count int, cfg parallel.Config) (Result, error) {
	return run(layer, src, count, 0, false, cfg)
}

func run(layer *lnn.Layer, src Source, count int, learningRate float64, learn bool, cfg parallel.Config) (Result, error) {
	var tally metrics.Tally
	tally.Start()

	for n := 0; n < count; n++ {
		pixels, label, err := src.Next()
		if err != nil {
			return Result{}, fmt.Errorf("read record %d: %w", n, err)
		}

		if learn {
			target, err := lnn.Target(int(label), layer.NumClasses())
			if err != nil {
				return Result{}, fmt.Errorf("record %d: %w", n, err)
			}
			layer.Train(pixels, target, learningRate, cfg)
		} else {
			layer.Forward(pixels, cfg)
		}

		tally.Record(layer.Predict() == int(label))
	}

	tally.Stop()
	return Result{
		Processed:   tally.Processed(),
		Errors:      tally.Errors(),
		SuccessRate: tally.SuccessRate(),
		Elapsed:     tally.Elapsed(),
	}, nil
}
