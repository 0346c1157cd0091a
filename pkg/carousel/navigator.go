package carousel

import (
	"time"

	"github.com/go-drift/carousel/pkg/animation"
)

// Navigator owns the current slide index and animates the track toward the
// index's resting offset.
//
// Requests outside [0, Count()-1] or equal to the current index are
// silently ignored.
type Navigator struct {
	count    int
	index    int
	track    *Track
	ctrl     *animation.AnimationController
	duration time.Duration
	onChange func(from, to int)
	disposed bool
}

func newNavigator(count int, track *Track, ctrl *animation.AnimationController, duration time.Duration, onChange func(from, to int)) *Navigator {
	return &Navigator{
		count:    count,
		track:    track,
		ctrl:     ctrl,
		duration: duration,
		onChange: onChange,
	}
}

// GoTo moves to target. The index updates synchronously; the track then
// animates from wherever it is to the new resting offset, superseding any
// animation already running. While a drag owns the track only the index
// changes; the release hands the track back and settles it.
func (n *Navigator) GoTo(target int) {
	n.moveTo(target)
}

// GoPrev moves one slide back.
func (n *Navigator) GoPrev() {
	n.moveTo(n.index - 1)
}

// GoNext moves one slide forward.
func (n *Navigator) GoNext() {
	n.moveTo(n.index + 1)
}

// Index returns the committed slide index.
func (n *Navigator) Index() int {
	return n.index
}

// Count returns the number of slides.
func (n *Navigator) Count() int {
	return n.count
}

// CanGoPrev reports whether a previous slide exists.
func (n *Navigator) CanGoPrev() bool {
	return n.index > 0
}

// CanGoNext reports whether a next slide exists.
func (n *Navigator) CanGoNext() bool {
	return n.index < n.count-1
}

// IsActive reports whether slide i is the current one.
func (n *Navigator) IsActive(i int) bool {
	return i == n.index && i < n.count
}

func (n *Navigator) moveTo(target int) bool {
	if n.disposed || target < 0 || target >= n.count || target == n.index {
		return false
	}
	from := n.index
	n.index = target
	Logger().Debug("carousel: navigate", "from", from, "to", target, "owner", n.track.Owner().String())

	if n.track.Owner() == OwnerAnimator {
		n.animate(RestingOffset(target), n.duration)
	}
	if n.onChange != nil {
		n.onChange(from, target)
	}
	return true
}

// settle animates the track back to the current resting offset.
func (n *Navigator) settle(d time.Duration) {
	if n.disposed {
		return
	}
	n.animate(RestingOffset(n.index), d)
}

func (n *Navigator) animate(target float64, d time.Duration) {
	n.ctrl.Value = n.track.Offset()
	n.ctrl.AnimateToWithDuration(target, d)
}
