package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
//	             AnimateTo()
//	Idle ─────────────────────► Forward / Reverse
//	                               │        │
//	             reached target    │        │  Stop() / retarget
//	Completed ◄────────────────────┘        └──────────► Stopped
//
// Forward means the value is increasing toward the target, Reverse that it
// is decreasing. A new AnimateTo from any state restarts the machine from
// the current value.
type AnimationStatus int

const (
	// AnimationIdle means no animation has run since creation or SetValue.
	AnimationIdle AnimationStatus = iota
	// AnimationForward means the value is animating upward.
	AnimationForward
	// AnimationReverse means the value is animating downward.
	AnimationReverse
	// AnimationCompleted means the last animation reached its target.
	AnimationCompleted
	// AnimationStopped means the last animation was interrupted.
	AnimationStopped
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	case AnimationStopped:
		return "stopped"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives a single float64 value toward a target over
// time.
//
// Unlike a unit-interval controller, the value is unbounded: callers animate
// directly in their own units (pixels, percent of a viewport, degrees). Only
// one animation runs at a time; AnimateTo while running supersedes the
// previous animation, starting from the instantaneous Value.
//
// Always call Dispose when done to stop the animation and release listeners.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is used by AnimateTo when no explicit duration is given.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	provider        TickerProvider
	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	duration        time.Duration
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates a controller whose tickers come from
// provider. A nil provider uses DefaultScheduler.
func NewAnimationController(duration time.Duration, provider TickerProvider) *AnimationController {
	if provider == nil {
		provider = DefaultScheduler
	}
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		provider:        provider,
		status:          AnimationIdle,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// AnimateTo animates from the current value to target over Duration.
func (c *AnimationController) AnimateTo(target float64) {
	c.AnimateToWithDuration(target, c.Duration)
}

// AnimateToWithDuration animates from the current value to target over d.
func (c *AnimationController) AnimateToWithDuration(target float64, d time.Duration) {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}

	c.target = target
	c.startValue = c.Value
	c.duration = d
	if target >= c.Value {
		c.setStatus(AnimationForward)
	} else {
		c.setStatus(AnimationReverse)
	}

	c.ticker = c.provider.CreateTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.finish()
		return
	}

	progress := float64(elapsed) / float64(c.duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	if progress >= 1.0 {
		c.Value = c.target
	} else {
		c.Value = LerpFloat64(c.startValue, c.target, eased)
	}
	c.notifyListeners()

	if progress >= 1.0 {
		c.finish()
	}
}

func (c *AnimationController) finish() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.setStatus(AnimationCompleted)
}

// SetValue stops any animation and jumps to v.
func (c *AnimationController) SetValue(v float64) {
	c.Stop()
	c.Value = v
	c.target = v
	c.setStatus(AnimationIdle)
	c.notifyListeners()
}

// Stop stops the animation at the current value. Remaining frames of the
// interrupted animation are discarded.
func (c *AnimationController) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
	c.setStatus(AnimationStopped)
}

// Target returns the value the current (or last) animation heads toward.
func (c *AnimationController) Target() float64 {
	return c.target
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = make(map[int]func())
	c.statusListeners = make(map[int]func(AnimationStatus))
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}
