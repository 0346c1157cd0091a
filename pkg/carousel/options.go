package carousel

import (
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/gestures"
)

const (
	// DefaultNavigationDuration is the length of a committed slide change.
	DefaultNavigationDuration = 400 * time.Millisecond
	// DefaultSnapBackDuration is the length of the return to the resting
	// offset after a drag that did not cross the swipe threshold.
	DefaultSnapBackDuration = 300 * time.Millisecond
	// DefaultSwipeThreshold is the fraction of viewport width a drag must
	// cross to commit to a slide change.
	DefaultSwipeThreshold = 0.15
)

// ViewportFunc reports the current viewport width in pixels.
type ViewportFunc func() float64

// Options configures a Carousel. The zero value uses the defaults above,
// except that gestures are ignored until Viewport is set.
type Options struct {
	NavigationDuration time.Duration
	SnapBackDuration   time.Duration
	SwipeThreshold     float64

	// Curve eases both navigation and snap-back. Defaults to animation.EaseOut.
	Curve func(float64) float64

	// Clock drives the carousel's animation scheduler. Nil uses the
	// animation package clock.
	Clock animation.Clock

	// Viewport is queried at drag start. Layout is assumed stable for the
	// duration of a single drag.
	Viewport ViewportFunc

	// Router receives the carousel's drag-scoped move/up/cancel listeners.
	// Nil gives the carousel a private router fed by HandlePointer.
	Router *gestures.Router
}

func (o Options) withDefaults() Options {
	if o.NavigationDuration == 0 {
		o.NavigationDuration = DefaultNavigationDuration
	}
	if o.SnapBackDuration == 0 {
		o.SnapBackDuration = DefaultSnapBackDuration
	}
	if o.SwipeThreshold <= 0 || o.SwipeThreshold >= 1 {
		o.SwipeThreshold = DefaultSwipeThreshold
	}
	if o.Curve == nil {
		o.Curve = animation.EaseOut
	}
	if o.Viewport == nil {
		o.Viewport = func() float64 { return 0 }
	}
	return o
}
