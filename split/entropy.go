package split

import (
	"math"
	"sort"
)

// Entropy returns the base-2 Shannon entropy of a label count distribution.
// Labels with zero count contribute nothing, guarding log2(0). Terms are
// accumulated in label order so the result is bit-identical across calls.
func Entropy(counts map[int]int, total int) float64 {
	if total <= 0 {
		return 0
	}
	labels := make([]int, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	entropy := 0.0
	for _, label := range labels {
		count := counts[label]
		if count == 0 {
			continue
		}
		prob := float64(count) / float64(total)
		entropy -= prob * math.Log2(prob)
	}
	return entropy
}
