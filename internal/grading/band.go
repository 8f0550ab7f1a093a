package grading

import "math"

// MaxBand is the top of the band scale.
const MaxBand = 9.0

// ToBand maps a raw score to the 0-9 band scale in half points:
// round(correct/total * 9 * 2) / 2, ties rounding up. A zero total yields 0.
func ToBand(correct, total int) float64 {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct >= total {
		return MaxBand
	}
	// floor(18c/t + 1/2) in integers, so x.5 ties are exact.
	halfSteps := (36*correct + total) / (2 * total)
	return float64(halfSteps) / 2
}

// SnapBand clamps an estimated band to [0, 9] and rounds it to the nearest
// half point, ties up. NaN maps to 0.
func SnapBand(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= MaxBand {
		return MaxBand
	}
	return math.Floor(v*2+0.5) / 2
}
