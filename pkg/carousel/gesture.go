package carousel

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/gestures"
)

// DragState is the gesture tracker's state.
type DragState int

const (
	// DragIdle means no pointer is being tracked.
	DragIdle DragState = iota
	// DragDragging means a pointer went down on the carousel and has not
	// been released. The tracker owns the track.
	DragDragging
	// DragReleasing is the instantaneous decision point between release
	// and handing the track back to the navigator.
	DragReleasing
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragReleasing:
		return "releasing"
	default:
		return fmt.Sprintf("DragState(%d)", int(s))
	}
}

// Release is the outcome of a finished drag.
type Release int

const (
	// ReleaseSnapBack returns the track to the current resting offset.
	ReleaseSnapBack Release = iota
	// ReleaseAdvance commits to the next slide.
	ReleaseAdvance
	// ReleaseRetreat commits to the previous slide.
	ReleaseRetreat
)

func (r Release) String() string {
	switch r {
	case ReleaseSnapBack:
		return "snap-back"
	case ReleaseAdvance:
		return "advance"
	case ReleaseRetreat:
		return "retreat"
	default:
		return fmt.Sprintf("Release(%d)", int(r))
	}
}

// DecideRelease classifies a drag of deltaX pixels. A drag must move
// strictly further than threshold*viewportWidth to commit; dragging left
// (negative deltaX) advances.
func DecideRelease(deltaX, viewportWidth, threshold float64) Release {
	limit := viewportWidth * threshold
	switch {
	case deltaX < -limit:
		return ReleaseAdvance
	case deltaX > limit:
		return ReleaseRetreat
	default:
		return ReleaseSnapBack
	}
}

// GestureTracker turns a single pointer's down/move/up sequence into live
// track offsets and a release decision.
//
// On press it kills any running animation and takes the track. Moves are
// claimed only when the horizontal component dominates (|dx| > |dy|);
// claimed moves prevent the host's default scrolling and write the clamped
// offset directly. Vertical-dominant moves are left alone so the host can
// scroll. Move, up and cancel listeners live on the router only while a
// drag is active.
type GestureTracker struct {
	nav       *Navigator
	track     *Track
	ctrl      *animation.AnimationController
	router    *gestures.Router
	viewport  ViewportFunc
	threshold float64
	snapBack  time.Duration

	state      DragState
	pointer    int64
	origin     gestures.Offset
	last       gestures.Offset
	width      float64
	dragOffset float64
	remove     []func()
}

func newGestureTracker(nav *Navigator, track *Track, ctrl *animation.AnimationController, router *gestures.Router, opts Options) *GestureTracker {
	return &GestureTracker{
		nav:       nav,
		track:     track,
		ctrl:      ctrl,
		router:    router,
		viewport:  opts.Viewport,
		threshold: opts.SwipeThreshold,
		snapBack:  opts.SnapBackDuration,
	}
}

// State returns the current drag state.
func (g *GestureTracker) State() DragState {
	return g.state
}

// DragOffset returns the live drag offset. ok is false when no drag is
// active.
func (g *GestureTracker) DragOffset() (offset float64, ok bool) {
	if g.state != DragDragging {
		return 0, false
	}
	return g.dragOffset, true
}

// handleDown starts a drag. Presses while a drag is active (a second
// finger) are ignored.
func (g *GestureTracker) handleDown(event *gestures.PointerEvent) {
	if g.state != DragIdle || g.nav.Count() == 0 || g.nav.disposed {
		return
	}
	width := g.viewport()
	if width <= 0 {
		return
	}

	g.state = DragDragging
	g.pointer = event.PointerID
	g.origin = event.Position
	g.last = event.Position
	g.width = width

	g.ctrl.Stop()
	g.track.acquire(OwnerGesture)
	g.dragOffset = g.track.Offset()

	g.remove = append(g.remove,
		g.router.Listen(gestures.PointerPhaseMove, g.handleMove),
		g.router.Listen(gestures.PointerPhaseUp, g.handleEnd),
		g.router.Listen(gestures.PointerPhaseCancel, g.handleEnd),
	)
	Logger().Debug("carousel: drag start", "index", g.nav.Index(), "x", event.Position.X, "y", event.Position.Y)
}

func (g *GestureTracker) handleMove(event *gestures.PointerEvent) {
	if g.state != DragDragging || event.PointerID != g.pointer {
		return
	}
	g.last = event.Position

	delta := event.Position.Sub(g.origin)
	if math.Abs(delta.X) <= math.Abs(delta.Y) {
		return
	}
	event.PreventDefault()

	offset := DragOffset(g.nav.Index(), g.nav.Count(), delta.X, g.width)
	if g.track.write(OwnerGesture, offset) {
		g.dragOffset = offset
	}
}

func (g *GestureTracker) handleEnd(event *gestures.PointerEvent) {
	if g.state != DragDragging || event.PointerID != g.pointer {
		return
	}
	end := g.last
	if event.Phase == gestures.PointerPhaseUp {
		end = event.Position
	}
	g.release(end.X - g.origin.X)
}

func (g *GestureTracker) release(deltaX float64) {
	g.state = DragReleasing
	g.detach()
	g.track.acquire(OwnerAnimator)

	decision := DecideRelease(deltaX, g.width, g.threshold)
	committed := false
	switch decision {
	case ReleaseAdvance:
		committed = g.nav.moveTo(g.nav.Index() + 1)
	case ReleaseRetreat:
		committed = g.nav.moveTo(g.nav.Index() - 1)
	}
	if !committed {
		g.nav.settle(g.snapBack)
	}
	Logger().Debug("carousel: release", "deltaX", deltaX, "decision", decision.String(), "committed", committed, "index", g.nav.Index())

	g.dragOffset = 0
	g.state = DragIdle
}

// abort ends a drag without a decision, used on teardown.
func (g *GestureTracker) abort() {
	g.detach()
	g.dragOffset = 0
	g.state = DragIdle
	g.track.acquire(OwnerAnimator)
}

func (g *GestureTracker) detach() {
	for _, remove := range g.remove {
		remove()
	}
	g.remove = nil
}
