// Package animation provides the timing primitives used to animate widget
// state between discrete values.
//
// # Core Components
//
//   - [Scheduler]: a per-owner set of tickers, stepped once per frame by the
//     host loop. Owning a scheduler per widget keeps instances independent.
//
//   - [AnimationController]: drives one float64 value toward a target over a
//     duration with an easing curve. Starting a new animation supersedes the
//     running one from the current value.
//
//   - Curves: easing functions such as [EaseOut] and [EaseInOut]; use
//     [CubicBezier] for custom curves matching CSS cubic-bezier().
//
// # Basic Usage
//
//	sched := animation.NewScheduler(nil)
//	ctrl := animation.NewAnimationController(400*time.Millisecond, sched)
//	ctrl.Curve = animation.EaseOut
//	ctrl.AddListener(func() { track.Set(ctrl.Value) })
//	ctrl.AnimateTo(-200)
//
//	// once per frame
//	sched.Step()
//
//	// on teardown
//	ctrl.Dispose()
package animation
