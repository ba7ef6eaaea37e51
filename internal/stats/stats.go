// Package stats provides the per-column statistical primitives used by
// imputation, outlier handling, and numeric summaries.
package stats

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Mean computes the average of a slice. Returns 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// StdDev computes the sample standard deviation (n-1 denominator).
// Returns 0 when fewer than two values are given; constant columns
// also yield 0 and are the caller's zero-variance guard case.
func StdDev(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	mean := Mean(x)
	sumSq := 0.0
	for _, v := range x {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// Quantile computes the q-th quantile (0 <= q <= 1) using linear
// interpolation between closest ranks. Returns 0 for an empty slice.
func Quantile(x []float64, q float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Median computes the middle value of a slice.
func Median(x []float64) float64 {
	return Quantile(x, 0.5)
}

// Mode returns the most frequent value. Ties break toward the smallest
// value. The second return is false for an empty slice.
func Mode[T constraints.Ordered](x []T) (T, bool) {
	var best T
	if len(x) == 0 {
		return best, false
	}
	counts := make(map[T]int, len(x))
	for _, v := range x {
		counts[v]++
	}
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best = v
			bestCount = n
		}
	}
	return best, true
}
