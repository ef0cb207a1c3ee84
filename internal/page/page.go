// Package page holds the shared fixed-dimension page contract. Every
// template variant lays out against this size and the export pipeline
// embeds into exactly one page of it; neither side re-verifies the other.
package page

import "math"

// A4 portrait, in millimetres.
const (
	WidthMM  = 210.0
	HeightMM = 297.0
)

// AspectRatio is width over height, ~0.7071.
const AspectRatio = WidthMM / HeightMM

// NativeDPI is the on-screen resolution the preview renders at. The
// rasterizer multiplies it by the oversampling factor for output sharpness.
const NativeDPI = 96.0

// DefaultOversample matches the original capture quality setting.
const DefaultOversample = 4

const (
	mmPerInch = 25.4
	ptPerInch = 72.0
)

// MMToPx converts a length in page millimetres to device pixels at the
// given oversampling factor.
func MMToPx(mm float64, oversample int) float64 {
	return mm / mmPerInch * NativeDPI * float64(oversample)
}

// PtToPx converts a font size in points to device pixels at the given
// oversampling factor.
func PtToPx(pt float64, oversample int) float64 {
	return pt / ptPerInch * NativeDPI * float64(oversample)
}

// PtToMM converts points to millimetres (1pt = 1/72in).
func PtToMM(pt float64) float64 {
	return pt / ptPerInch * mmPerInch
}

// PixelSize returns the raster dimensions of one full page at the given
// oversampling factor, rounded to whole pixels.
func PixelSize(oversample int) (w, h int) {
	return int(math.Round(MMToPx(WidthMM, oversample))),
		int(math.Round(MMToPx(HeightMM, oversample)))
}
