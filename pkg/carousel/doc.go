// Package carousel implements the state machine behind a one-slide-per-view
// image carousel: a discrete slide index, a live drag offset and an
// animated track offset, reconciled so that exactly one writer drives the
// track at any instant.
//
// A [Carousel] composes a [Navigator], which owns the index and animates
// the track to its resting offset, and a [GestureTracker], which owns the
// track while a pointer drag is in progress and decides on release whether
// to advance, retreat or snap back. Offsets are percentages of the viewport
// width: slide i rests at -i*100.
//
// All methods are meant to be called from a single UI goroutine. The host
// forwards pointer events to HandlePointer, calls Tick once per frame and
// renders whatever Snapshot returns.
//
//	c := carousel.New(items, carousel.Options{
//	    Viewport: func() float64 { return float64(screenWidth) },
//	})
//	defer c.Close()
//
//	// input
//	c.HandlePointer(&gestures.PointerEvent{Phase: gestures.PointerPhaseDown, ...})
//	c.GoNext()
//
//	// every frame
//	c.Tick()
//	frame := c.Snapshot()
package carousel
