package lnn

import "fmt"

// Target encodes a class label as a one-hot vector: 1.0 at the label's index,
// 0.0 everywhere else. A label outside [0, numClasses) indicates a corrupt or
// mismatched dataset and returns an error rather than clamping.
func Target(label, numClasses int) ([]float64, error) {
	if label < 0 || label >= numClasses {
		return nil, fmt.Errorf("label %d outside [0, %d)", label, numClasses)
	}
	target := make([]float64, numClasses)
	target[label] = 1.0
	return target, nil
}
