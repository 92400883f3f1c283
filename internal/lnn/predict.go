package lnn

// Predict returns the class whose cell produced the highest output in the
// last forward pass. The scan runs left to right and only a strictly greater
// output replaces the current best, so ties resolve to the lowest index.
func (l *Layer) Predict() int {
	best := 0
	max := l.Cells[0].Output
	for i := 1; i < len(l.Cells); i++ {
		if l.Cells[i].Output > max {
			max = l.Cells[i].Output
			best = i
		}
	}
	return best
}
