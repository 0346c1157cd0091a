// Package testing provides deterministic test harnesses for carousels.
//
// # Quick Start
//
//	func TestSwipe(t *testing.T) {
//	    tester := carouseltest.NewTester(t, slides, carousel.Options{})
//	    tester.DragBy(-0.2 * tester.Width(), 0)
//	    tester.PumpAndSettle(time.Second)
//
//	    if tester.Carousel().Index() != 1 {
//	        t.Error("expected swipe to advance")
//	    }
//	}
//
// # Animation Testing
//
// Each tester owns a [FakeClock] wired into its carousel. Pump advances the
// clock by one frame and ticks; PumpAndSettle repeats until nothing is
// animating:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import carouseltest "github.com/go-drift/carousel/pkg/testing"
package testing
