package carousel

import "math"

// Offsets are expressed as a percentage of the viewport width. The track
// for slide i rests at -i*100; the valid range for n slides is
// [-(n-1)*100, 0].

// RestingOffset returns the track offset at which slide index is shown.
func RestingOffset(index int) float64 {
	if index == 0 {
		return 0
	}
	return -float64(index) * 100
}

// MinOffset returns the most negative valid offset for count slides.
func MinOffset(count int) float64 {
	if count <= 1 {
		return 0
	}
	return RestingOffset(count - 1)
}

// ClampOffset limits offset to the valid range for count slides.
func ClampOffset(offset float64, count int) float64 {
	return math.Max(MinOffset(count), math.Min(0, offset))
}

// DragOffset converts a horizontal drag distance in pixels into a live
// track offset relative to the resting offset of index. There is no
// overscroll: the result is hard-clamped to the valid range.
func DragOffset(index, count int, deltaX, viewportWidth float64) float64 {
	if viewportWidth <= 0 {
		return ClampOffset(RestingOffset(index), count)
	}
	return ClampOffset(RestingOffset(index)+deltaX/viewportWidth*100, count)
}
