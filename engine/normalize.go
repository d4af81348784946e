package engine

import (
	"medrisk/domain/clinical"
)

// Normalize maps a raw value into the calibration range: (v-min)/(max-min).
// Returns exactly 0 when max == min; the degenerate range is defined
// behavior, not an error. Results are deliberately NOT clamped to [0,1]:
// raw inputs beyond the calibration bounds land outside the unit interval
// so outliers still carry their full weight in relative distance.
func Normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// NormalizeVector applies Normalize elementwise using the disease's static
// FeatureRange table. The ranges slice must match the vector length;
// callers validate length before normalization.
func NormalizeVector(features []float64, ranges []clinical.FeatureRange) []float64 {
	out := make([]float64, len(features))
	for i, v := range features {
		out[i] = Normalize(v, ranges[i].Min, ranges[i].Max)
	}
	return out
}
