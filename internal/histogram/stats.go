package histogram

import "math"

// Mean returns the arithmetic mean game length.
func (h *Histogram) Mean() float64 {
	total := h.TotalGames()
	if total == 0 {
		return 0
	}
	var sum float64
	for turns, count := range h.counts {
		sum += float64(turns) * float64(count)
	}
	return sum / float64(total)
}

// Variance returns the sample variance of game lengths.
func (h *Histogram) Variance() float64 {
	total := h.TotalGames()
	if total < 2 {
		return 0
	}
	mean := h.Mean()
	var sumSq float64
	for turns, count := range h.counts {
		d := float64(turns) - mean
		sumSq += d * d * float64(count)
	}
	return sumSq / float64(total-1)
}

// StdDev returns the sample standard deviation of game lengths.
func (h *Histogram) StdDev() float64 {
	return math.Sqrt(h.Variance())
}

// Median returns the median game length.
func (h *Histogram) Median() float64 {
	return h.Percentile(0.5)
}

// Percentile returns the game length at the given percentile (0.0 to
// 1.0), walking the sorted buckets by cumulative count.
func (h *Histogram) Percentile(p float64) float64 {
	total := h.TotalGames()
	if total == 0 {
		return 0
	}
	target := uint64(math.Ceil(p * float64(total)))
	if target == 0 {
		target = 1
	}

	var cumulative uint64
	lengths := h.Lengths()
	for _, turns := range lengths {
		cumulative += h.counts[turns]
		if cumulative >= target {
			return float64(turns)
		}
	}
	return float64(lengths[len(lengths)-1])
}

// Min returns the shortest recorded game length, or 0 when empty.
func (h *Histogram) Min() int {
	lengths := h.Lengths()
	if len(lengths) == 0 {
		return 0
	}
	return lengths[0]
}

// Max returns the longest recorded game length, or 0 when empty.
func (h *Histogram) Max() int {
	lengths := h.Lengths()
	if len(lengths) == 0 {
		return 0
	}
	return lengths[len(lengths)-1]
}
