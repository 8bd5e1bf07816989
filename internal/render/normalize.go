package render

import "gonum.org/v1/gonum/floats"

// midGray is the fallback level for fields with no dynamic range.
const midGray = 128

// Normalize linearly rescales values into the 0..255 range using the
// slice's own minimum and maximum, producing a per-frame-normalized
// 8-bit buffer. A uniform slice has no range to stretch and maps to a
// constant mid-gray frame.
func Normalize(values []float64) []uint8 {
	out := make([]uint8, len(values))
	if len(values) == 0 {
		return out
	}
	min := floats.Min(values)
	max := floats.Max(values)
	if max == min {
		for i := range out {
			out[i] = midGray
		}
		return out
	}
	scale := 255 / (max - min)
	for i, v := range values {
		out[i] = uint8(scale * (v - min))
	}
	return out
}
