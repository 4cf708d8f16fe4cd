package geometry

import "math"

// The editor canvas uses a fixed scale of 5 screen pixels per millimeter.
// Both conversion directions round to the nearest integer, so positions
// carried through a px round-trip land back on the original whole-mm value.
const PxPerMm = 5.0

// MmPerInch is the millimeter length of one inch, used for DPI conversion.
const MmPerInch = 25.4

// MmToPx converts millimeters to editor pixels at the fixed canvas scale.
func MmToPx(mm float64) float64 {
	return math.Round(mm * PxPerMm)
}

// PxToMm converts editor pixels back to millimeters at the fixed canvas scale.
func PxToMm(px float64) float64 {
	return math.Round(px / PxPerMm)
}

// MmToDots converts millimeters to device dots at the given print resolution.
func MmToDots(mm, dpi float64) int {
	return int(math.Round(mm / MmPerInch * dpi))
}

// SnapMm rounds a millimeter coordinate to the nearest whole millimeter.
func SnapMm(mm float64) float64 {
	return math.Round(mm)
}
