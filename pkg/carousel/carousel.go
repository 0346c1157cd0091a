package carousel

import (
	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/gestures"
)

// Carousel is one mounted carousel instance. Instances share no state.
type Carousel struct {
	items   []SlideItem
	opts    Options
	sched   *animation.Scheduler
	ctrl    *animation.AnimationController
	track   *Track
	router  *gestures.Router
	nav     *Navigator
	tracker *GestureTracker

	changeListeners map[int]func(index int)
	nextListenerID  int
	removeValue     func()
	closed          bool
}

// New mounts a carousel over items at index 0. The slice is copied. An
// empty slice yields a carousel on which every operation is a no-op.
func New(items []SlideItem, opts Options) *Carousel {
	opts = opts.withDefaults()

	c := &Carousel{
		items:           append([]SlideItem(nil), items...),
		opts:            opts,
		sched:           animation.NewScheduler(opts.Clock),
		track:           &Track{},
		router:          opts.Router,
		changeListeners: make(map[int]func(int)),
	}
	if c.router == nil {
		c.router = gestures.NewRouter()
	}

	c.ctrl = animation.NewAnimationController(opts.NavigationDuration, c.sched)
	c.ctrl.Curve = opts.Curve
	c.removeValue = c.ctrl.AddListener(func() {
		c.track.write(OwnerAnimator, c.ctrl.Value)
	})

	c.nav = newNavigator(len(c.items), c.track, c.ctrl, opts.NavigationDuration, c.notifyChange)
	c.tracker = newGestureTracker(c.nav, c.track, c.ctrl, c.router, opts)
	return c
}

// Navigator returns the navigation controller.
func (c *Carousel) Navigator() *Navigator { return c.nav }

// Tracker returns the gesture tracker.
func (c *Carousel) Tracker() *GestureTracker { return c.tracker }

// Router returns the router holding drag-scoped listeners.
func (c *Carousel) Router() *gestures.Router { return c.router }

// Items returns the slides in display order.
func (c *Carousel) Items() []SlideItem { return c.items }

// GoTo moves to slide target; see Navigator.GoTo.
func (c *Carousel) GoTo(target int) { c.nav.GoTo(target) }

// GoPrev moves one slide back.
func (c *Carousel) GoPrev() { c.nav.GoPrev() }

// GoNext moves one slide forward.
func (c *Carousel) GoNext() { c.nav.GoNext() }

// Index returns the committed slide index.
func (c *Carousel) Index() int { return c.nav.Index() }

// Count returns the number of slides.
func (c *Carousel) Count() int { return c.nav.Count() }

// CanGoPrev reports whether the previous button should be enabled.
func (c *Carousel) CanGoPrev() bool { return c.nav.CanGoPrev() }

// CanGoNext reports whether the next button should be enabled.
func (c *Carousel) CanGoNext() bool { return c.nav.CanGoNext() }

// IsActive reports whether dot i should be shown as active.
func (c *Carousel) IsActive(i int) bool { return c.nav.IsActive(i) }

// Offset returns the authoritative track offset in percent of viewport
// width.
func (c *Carousel) Offset() float64 { return c.track.Offset() }

// IsAnimating reports whether a navigation or snap-back animation is in
// flight.
func (c *Carousel) IsAnimating() bool { return c.ctrl.IsAnimating() }

// IsDragging reports whether a drag owns the track.
func (c *Carousel) IsDragging() bool { return c.tracker.State() == DragDragging }

// State returns the index and, during a drag, the live drag offset.
func (c *Carousel) State() State {
	s := State{Index: c.nav.Index()}
	if offset, ok := c.tracker.DragOffset(); ok {
		s.DragOffset = &offset
	}
	return s
}

// HandlePointer feeds a host pointer event to the carousel. Presses are
// taken as landing on the carousel; the host is responsible for hit
// testing. Other phases go through the router. Returns true when the
// host should suppress its default action for the event.
func (c *Carousel) HandlePointer(event *gestures.PointerEvent) bool {
	if c.closed {
		return false
	}
	if event.Phase == gestures.PointerPhaseDown {
		c.tracker.handleDown(event)
		return event.DefaultPrevented()
	}
	return c.router.Dispatch(event)
}

// Tick advances the carousel's animation by one frame. Call once per frame
// from the host loop.
func (c *Carousel) Tick() {
	if c.closed {
		return
	}
	c.sched.Step()
}

// OnChange registers fn to be called with the new index after every
// committed slide change. Returns an unsubscribe function.
func (c *Carousel) OnChange(fn func(index int)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.changeListeners[id] = fn
	return func() {
		delete(c.changeListeners, id)
	}
}

func (c *Carousel) notifyChange(_, to int) {
	for _, fn := range c.changeListeners {
		fn(to)
	}
}

// Close tears the carousel down: any in-flight animation is cancelled and
// listeners registered for an active drag are removed. Further calls are
// no-ops.
func (c *Carousel) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.tracker.abort()
	c.nav.disposed = true
	c.removeValue()
	c.ctrl.Dispose()
	c.sched.StopAll()
	c.changeListeners = make(map[int]func(int))
}

// State is the carousel's mutable state. DragOffset is non-nil only while
// a drag is active.
type State struct {
	Index      int
	DragOffset *float64
}
