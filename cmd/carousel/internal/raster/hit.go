package raster

import "github.com/go-drift/carousel/pkg/carousel"

// Target is the control under a point.
type Target int

const (
	// TargetNone is the slide area itself.
	TargetNone Target = iota
	// TargetPrev is the previous button.
	TargetPrev
	// TargetNext is the next button.
	TargetNext
	// TargetDot is an indicator dot.
	TargetDot
)

// HitTest returns the control at (x, y) in a w x h viewport drawn for f.
// For TargetDot, index is the dot's slide.
func HitTest(f carousel.Frame, w, h, x, y float64) (target Target, index int) {
	if f.Count == 0 {
		return TargetNone, 0
	}
	if within(x, y, buttonInset, h/2, buttonRadius) {
		return TargetPrev, 0
	}
	if within(x, y, w-buttonInset, h/2, buttonRadius) {
		return TargetNext, 0
	}
	// Dots accept touches within half the spacing.
	for i := range f.Dots {
		cx, cy := DotCenter(i, len(f.Dots), w, h)
		if within(x, y, cx, cy, dotSpacing/2) {
			return TargetDot, i
		}
	}
	return TargetNone, 0
}

func within(x, y, cx, cy, r float64) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
