package layout

import "math"

// This file defines unit helpers shared by the layout engine and renderers.
//
// Layout works in integer image pixels. Vector backends work in millimetres
// and take font sizes in points; rendering at one dot per millimetre makes a
// pixel and a millimetre the same length, so only pt↔mm needs converting.

// Conversion constants between pt and mm.
const (
	PtToMm = 25.4 / 72
	MmToPt = 72 / 25.4
)

// PxToPt converts a pixel length (rendered at 1 dot/mm) to points.
func PxToPt(px float64) float64 { return px * MmToPt }

// PtToPx converts points to pixels (rendered at 1 dot/mm).
func PtToPx(pt float64) float64 { return pt * PtToMm }

// CeilPx rounds a fractional length up to whole pixels, never below zero.
// Values within a tiny epsilon of an integer are snapped to it so that
// floating point noise does not add a pixel.
func CeilPx(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if r := math.Round(v); math.Abs(v-r) < 1e-6 {
		return int(r)
	}
	return int(math.Ceil(v))
}

// FontSizeFor returns the font size in pixels for an image of the given
// height: one twelfth of the height, never below 24.
func FontSizeFor(imageHeight int) int {
	return max(24, imageHeight/12)
}

// SpacingFor returns the gap in pixels between stacked characters,
// floor(fontSize × 0.12).
func SpacingFor(fontSize int) int {
	return int(math.Floor(float64(fontSize) * 0.12))
}
