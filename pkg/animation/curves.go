package animation

import "math"

// Curves map linear progress t in [0, 1] to eased progress. Assign one to
// an [AnimationController]'s Curve field.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is the general-purpose curve. Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn accelerates from rest. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts fast and decelerates into its target. Used for content
// settling into a resting position, such as a slide track after navigation.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut accelerates then decelerates. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier() with
// control points (x1,y1) and (x2,y2). The curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t for u with Newton-Raphson, then bisection if the
		// derivative flattens out.
		u := t
		for range 8 {
			x := bezierAt(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierAt(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 16 {
			x := bezierAt(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezierAt(y1, y2, u)
	}
}

// bezierAt evaluates one axis of the curve with endpoints 0 and 1.
func bezierAt(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func clampUnit(value float64) float64 {
	return math.Max(0, math.Min(1, value))
}
