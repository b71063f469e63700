package common

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Shared statistical helpers used across the groove algorithms, backed by
// gonum where it has an equivalent. All variance/deviation figures here are
// population statistics (divide by n), which is what the descriptor features
// are defined on.

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// PopVariance calculates the population variance (biased, divide by n)
func PopVariance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.PopVariance(data, nil)
}

// PopStdDev calculates the population standard deviation
func PopStdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.PopStdDev(data, nil)
}

// Median calculates the median with linear interpolation between the two
// middle samples for even-length input
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0.0
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

// Min returns the smallest value in the slice
func Min(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Min(data)
}

// Max returns the largest value in the slice
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// Clip returns a copy of data with every value limited to [lo, hi]
func Clip(data []float64, lo, hi float64) []float64 {
	clipped := make([]float64, len(data))
	for i, v := range data {
		clipped[i] = math.Min(math.Max(v, lo), hi)
	}
	return clipped
}

// MedianFilter3 applies a 3-tap median smoothing filter. Edges are treated
// as zero padded, so the first and last samples are the median of the sample,
// its single neighbor, and zero.
func MedianFilter3(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}

	smoothed := make([]float64, n)
	for i := range data {
		var prev, next float64
		if i > 0 {
			prev = data[i-1]
		}
		if i < n-1 {
			next = data[i+1]
		}
		smoothed[i] = medianOf3(prev, data[i], next)
	}
	return smoothed
}

func medianOf3(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}

// RoundTo rounds a value to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
