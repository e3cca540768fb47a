package stats

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundHalfUp rounds to the nearest integer with ties toward +Inf,
// so -12.5 becomes -12 and 12.5 becomes 13.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// roundOneDecimal rounds through a decimal so values like 7.05 are not
// pulled down by their binary representation.
func roundOneDecimal(x float64) float64 {
	return decimal.NewFromFloat(x).Round(1).InexactFloat64()
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation; it is 0 for fewer than two values.
func sampleStdDev(values []int) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := meanInts(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := float64(v) - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
