// Command linnet trains a single-layer linear classifier on the MNIST
// training set, then scores it against the MNIST test set. No state survives
// the run: weights live in memory and are discarded at exit.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/linnet-ml/linnet/internal/config"
	"github.com/linnet-ml/linnet/internal/lnn"
	"github.com/linnet-ml/linnet/internal/mnist"
	"github.com/linnet-ml/linnet/internal/parallel"
	"github.com/linnet-ml/linnet/internal/trainer"
)

func main() {
	start := time.Now()

	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	dataDir := flag.String("data-dir", "", "Directory holding the four MNIST files")
	lr := flag.Float64("lr", 0, "Learning rate")
	trainCount := flag.Int("train-count", 0, "Number of training images")
	testCount := flag.Int("test-count", 0, "Number of testing images")
	seed := flag.Int64("seed", 0, "PRNG seed for weight initialization")
	workers := flag.Int("workers", 0, "Goroutines for the per-class fan-out (0 = NumCPU)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(config.Overrides{
		DataDir:      *dataDir,
		LearningRate: *lr,
		TrainCount:   *trainCount,
		TestCount:    *testCount,
		Seed:         *seed,
		Workers:      *workers,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	par := parallel.WithWorkers(cfg.Workers)

	fmt.Println("linnet: a single-layer classifier for the MNIST handwriting images")

	layer := lnn.NewLayer(cfg.NumClasses, cfg.InputSize, cfg.Seed)

	trainRes := runPhase(layer, cfg.TrainImages, cfg.TrainLabels, cfg.TrainCount, cfg, par, true)
	fmt.Printf("training time: %.1f sec\n", trainRes.Elapsed.Seconds())
	fmt.Printf("training success rate: %.2f%% (%d of %d images)\n",
		trainRes.SuccessRate, trainRes.Processed-trainRes.Errors, trainRes.Processed)
	fmt.Println("done training")

	testRes := runPhase(layer, cfg.TestImages, cfg.TestLabels, cfg.TestCount, cfg, par, false)
	fmt.Printf("testing success rate: %.2f%% (%d of %d images)\n",
		testRes.SuccessRate, testRes.Processed-testRes.Errors, testRes.Processed)
	fmt.Printf("testing time: %.1f sec\n", testRes.Elapsed.Seconds())

	fmt.Printf("done, total execution time: %.1f sec\n", time.Since(start).Seconds())
}

// runPhase opens an image/label file pair and drives one full pass over it.
// Any failure here is unrecoverable for the run.
func runPhase(layer *lnn.Layer, imagePath, labelPath string, count int, cfg *config.Config, par parallel.Config, learn bool) trainer.Result {
	src, err := mnist.Open(imagePath, labelPath)
	if err != nil {
		log.Fatalf("failed to open dataset: %v", err)
	}
	defer src.Close()

	if got := src.PixelsPerImage(); got != cfg.InputSize {
		log.Fatalf("dataset %s has %d pixels per image, config expects %d", imagePath, got, cfg.InputSize)
	}
	if src.Count() < count {
		log.Fatalf("dataset %s has %d records, config expects %d", imagePath, src.Count(), count)
	}

	var res trainer.Result
	if learn {
		res, err = trainer.Train(layer, src, count, cfg.LearningRate, par)
	} else {
		res, err = trainer.Evaluate(layer, src, count, par)
	}
	if err != nil {
		log.Fatalf("phase failed: %v", err)
	}
	return res
}
