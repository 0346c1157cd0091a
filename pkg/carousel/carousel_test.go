package carousel_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/gestures"
	carouseltest "github.com/go-drift/carousel/pkg/testing"
)

func newTester(t *testing.T, n int) *carouseltest.Tester {
	t.Helper()
	return carouseltest.NewTester(t, carouseltest.Slides(n), carousel.Options{})
}

func settle(t *testing.T, tester *carouseltest.Tester) {
	t.Helper()
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatal(err)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertAtRest(t *testing.T, c *carousel.Carousel) {
	t.Helper()
	if c.IsAnimating() || c.IsDragging() {
		t.Fatalf("carousel not at rest: animating=%v dragging=%v", c.IsAnimating(), c.IsDragging())
	}
	if want := carousel.RestingOffset(c.Index()); c.Offset() != want {
		t.Fatalf("Offset = %v at rest, want %v for index %d", c.Offset(), want, c.Index())
	}
}

func TestNew_StartsAtFirstSlide(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()

	if c.Index() != 0 || c.Count() != 5 {
		t.Fatalf("Index=%d Count=%d", c.Index(), c.Count())
	}
	if c.CanGoPrev() || !c.CanGoNext() {
		t.Errorf("CanGoPrev=%v CanGoNext=%v at index 0", c.CanGoPrev(), c.CanGoNext())
	}
	if s := c.State(); s.DragOffset != nil {
		t.Error("DragOffset should be nil without a drag")
	}
	assertAtRest(t, c)
}

func TestGoTo_CurrentIndexIsNoop(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()
	c.GoTo(2)
	settle(t, tester)

	c.GoTo(2)

	if c.IsAnimating() {
		t.Error("GoTo(current) started an animation")
	}
	assertAtRest(t, c)
}

func TestGoTo_OutOfRangeIsNoop(t *testing.T) {
	tester := newTester(t, 3)
	c := tester.Carousel()

	for _, target := range []int{-1, 3, 100, math.MinInt} {
		c.GoTo(target)
		if c.Index() != 0 || c.IsAnimating() {
			t.Errorf("GoTo(%d) changed state: index=%d animating=%v", target, c.Index(), c.IsAnimating())
		}
	}
}

func TestGoTo_UpdatesIndexSynchronouslyAndAnimates(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()

	c.GoTo(3)
	if c.Index() != 3 {
		t.Fatalf("Index = %d, want 3 immediately", c.Index())
	}
	if !c.IsAnimating() {
		t.Fatal("expected an animation toward the new resting offset")
	}

	tester.Pump()
	if off := c.Offset(); off >= 0 || off <= -300 {
		t.Errorf("first frame offset = %v, want strictly between 0 and -300", off)
	}

	settle(t, tester)
	assertAtRest(t, c)
}

func TestNavigationDurations(t *testing.T) {
	tester := newTester(t, 3)
	c := tester.Carousel()

	c.GoNext()
	tester.PumpFor(300 * time.Millisecond)
	if !c.IsAnimating() {
		t.Error("navigation should still run after 300ms")
	}
	tester.PumpFor(100 * time.Millisecond)
	if c.IsAnimating() {
		t.Error("navigation should be done after 400ms")
	}
	assertAtRest(t, c)

	// A short drag snaps back within 300ms.
	tester.DragBy(-20, 0)
	if !c.IsAnimating() {
		t.Fatal("expected snap-back animation")
	}
	tester.PumpFor(300 * time.Millisecond)
	if c.IsAnimating() {
		t.Error("snap-back should be done after 300ms")
	}
	assertAtRest(t, c)
}

func TestBoundaries(t *testing.T) {
	tester := newTester(t, 4)
	c := tester.Carousel()

	c.GoPrev()
	if c.Index() != 0 || c.IsAnimating() {
		t.Error("GoPrev at first slide should be a no-op")
	}

	c.GoTo(3)
	settle(t, tester)
	c.GoNext()
	if c.Index() != 3 || c.IsAnimating() {
		t.Error("GoNext at last slide should be a no-op")
	}
}

func TestScenario_ThirteenSlidesNextTwelveTimes(t *testing.T) {
	tester := newTester(t, 13)
	c := tester.Carousel()

	for i := range 12 {
		if !tester.TapNext() {
			t.Fatalf("next button disabled at index %d", i)
		}
		tester.Pump()
	}

	if c.Index() != 12 {
		t.Fatalf("Index = %d, want 12", c.Index())
	}
	if c.CanGoNext() {
		t.Error("next button should be disabled on the last slide")
	}
	if !c.CanGoPrev() {
		t.Error("prev button should be enabled on the last slide")
	}

	c.GoNext()
	if c.Index() != 12 {
		t.Errorf("13th GoNext moved to %d", c.Index())
	}
	if tester.TapNext() {
		t.Error("TapNext should report a disabled button")
	}

	settle(t, tester)
	assertAtRest(t, c)
	if c.Offset() != -1200 {
		t.Errorf("Offset = %v, want -1200", c.Offset())
	}
}

func TestScenario_DragPastThresholdLandsOnNextSlide(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()
	c.GoTo(1)
	settle(t, tester)

	tester.DragBy(-0.16*tester.Width(), 0)

	if c.Index() != 2 {
		t.Fatalf("Index = %d, want 2", c.Index())
	}
	if !c.IsAnimating() {
		t.Fatal("expected the navigator to animate the rest of the way")
	}
	settle(t, tester)
	if c.Offset() != -200 {
		t.Errorf("Offset = %v, want -200", c.Offset())
	}

	frame := c.Snapshot()
	for i, active := range frame.Dots {
		if active != (i == 2) {
			t.Errorf("dot %d active=%v", i, active)
		}
	}
}

func TestSwipeDecisionLaw(t *testing.T) {
	tests := []struct {
		name string
		frac float64
		want int
	}{
		{"left swipe advances", -0.2, 3},
		{"right swipe retreats", 0.2, 1},
		{"short drag snaps back", 0.05, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := newTester(t, 5)
			c := tester.Carousel()
			c.GoTo(2)
			settle(t, tester)

			tester.DragBy(tt.frac*tester.Width(), 0)
			settle(t, tester)

			if c.Index() != tt.want {
				t.Errorf("Index = %d, want %d", c.Index(), tt.want)
			}
			assertAtRest(t, c)
		})
	}
}

func TestAxisDisambiguation(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()
	c.GoTo(1)
	settle(t, tester)

	start := tester.Center()
	tester.SendPointerDown(start, 1)

	vertical := tester.SendPointerMove(gestures.Offset{X: start.X + 10, Y: start.Y + 20}, 1)
	if vertical {
		t.Error("vertical-dominant move must not prevent default scrolling")
	}
	if c.Offset() != -100 {
		t.Errorf("vertical-dominant move changed offset to %v", c.Offset())
	}

	horizontal := tester.SendPointerMove(gestures.Offset{X: start.X + 20, Y: start.Y + 10}, 1)
	if !horizontal {
		t.Error("horizontal-dominant move must prevent default scrolling")
	}
	if want := -100 + 20/tester.Width()*100; !approx(c.Offset(), want) {
		t.Errorf("Offset = %v, want %v", c.Offset(), want)
	}

	diagonal := tester.SendPointerMove(gestures.Offset{X: start.X + 15, Y: start.Y + 15}, 1)
	if diagonal {
		t.Error("equal components are treated as vertical intent")
	}
	tester.SendPointerUp(gestures.Offset{X: start.X + 15, Y: start.Y + 15}, 1)
}

func TestDrag_TracksFingerWithoutAnimation(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()
	c.GoTo(2)
	settle(t, tester)

	start := tester.Center()
	tester.SendPointerDown(start, 1)
	tester.SendPointerMove(gestures.Offset{X: start.X - 100, Y: start.Y}, 1)

	if c.IsAnimating() {
		t.Error("drag must write the offset directly")
	}
	want := -200 - 100/tester.Width()*100
	if !approx(c.Offset(), want) {
		t.Errorf("Offset = %v, want %v", c.Offset(), want)
	}
	s := c.State()
	if s.DragOffset == nil || !approx(*s.DragOffset, want) {
		t.Errorf("State.DragOffset = %v, want %v", s.DragOffset, want)
	}

	tester.SendPointerUp(gestures.Offset{X: start.X - 100, Y: start.Y}, 1)
	if c.State().DragOffset != nil {
		t.Error("DragOffset should be cleared on release")
	}
}

func TestDrag_ClampedAtFirstSlide(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()

	start := tester.Center()
	tester.SendPointerDown(start, 1)
	for dx := 10.0; dx <= 300; dx += 10 {
		tester.SendPointerMove(gestures.Offset{X: start.X + dx, Y: start.Y}, 1)
		if c.Offset() != 0 {
			t.Fatalf("offset %v past the first slide at dx=%v", c.Offset(), dx)
		}
	}
	tester.SendPointerUp(gestures.Offset{X: start.X + 300, Y: start.Y}, 1)

	if c.Index() != 0 {
		t.Errorf("retreat at index 0 moved to %d", c.Index())
	}
	settle(t, tester)
	assertAtRest(t, c)
}

func TestDrag_ClampedAtLastSlide(t *testing.T) {
	tester := newTester(t, 3)
	c := tester.Carousel()
	c.GoTo(2)
	settle(t, tester)

	tester.DragBy(-350, 0)
	if c.Index() != 2 {
		t.Errorf("advance at last slide moved to %d", c.Index())
	}
	if c.Offset() != -200 {
		t.Errorf("Offset = %v, want clamp at -200", c.Offset())
	}
	settle(t, tester)
	assertAtRest(t, c)
}

func TestDrag_ZeroDistanceSnapsBack(t *testing.T) {
	tester := newTester(t, 3)
	c := tester.Carousel()

	tester.DragBy(0, 0)
	settle(t, tester)

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	assertAtRest(t, c)
}

func TestPressCancelsInFlightAnimation(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()

	c.GoNext()
	tester.PumpFor(100 * time.Millisecond)
	mid := c.Offset()
	if mid == 0 || mid == -100 {
		t.Fatalf("expected a mid-animation offset, got %v", mid)
	}

	tester.SendPointerDown(tester.Center(), 7)
	if c.IsAnimating() {
		t.Fatal("press must stop the running animation")
	}
	tester.PumpFor(500 * time.Millisecond)
	if c.Offset() != mid {
		t.Errorf("stale animation frames wrote the track: %v -> %v", mid, c.Offset())
	}

	tester.SendPointerUp(tester.Center(), 7)
	settle(t, tester)
	if c.Index() != 1 {
		t.Errorf("Index = %d, want 1", c.Index())
	}
	assertAtRest(t, c)
}

func TestReleaseHandsOffFromFingerPosition(t *testing.T) {
	tester := newTester(t, 3)
	c := tester.Carousel()

	tester.DragBy(-0.5*tester.Width(), 0)
	if c.Index() != 1 {
		t.Fatalf("Index = %d, want 1", c.Index())
	}
	if !approx(c.Offset(), -50) {
		t.Fatalf("offset jumped on release: %v", c.Offset())
	}

	tester.Pump()
	if off := c.Offset(); off >= -50 || off <= -100 {
		t.Errorf("first frame after release = %v, want between -50 and -100", off)
	}
}

func TestRetargetSupersedesRunningAnimation(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()

	c.GoNext()
	tester.PumpFor(100 * time.Millisecond)
	before := c.Offset()
	c.GoNext()
	tester.Pump()

	if c.Offset() >= before {
		t.Errorf("retargeted animation should continue from %v, got %v", before, c.Offset())
	}
	settle(t, tester)
	if c.Offset() != -200 {
		t.Errorf("Offset = %v, want -200", c.Offset())
	}
}

func TestCancelDecidesFromLastPosition(t *testing.T) {
	tester := newTester(t, 3)
	c := tester.Carousel()

	start := tester.Center()
	tester.SendPointerDown(start, 1)
	tester.SendPointerMove(gestures.Offset{X: start.X - 100, Y: start.Y}, 1)
	tester.SendPointerCancel(1)

	if c.Index() != 1 {
		t.Errorf("Index = %d, want 1", c.Index())
	}
	if c.IsDragging() {
		t.Error("cancel should end the drag")
	}
}

func TestGoToDuringDragKeepsSingleWriter(t *testing.T) {
	tester := newTester(t, 5)
	c := tester.Carousel()

	start := tester.Center()
	tester.SendPointerDown(start, 1)
	tester.SendPointerMove(gestures.Offset{X: start.X - 20, Y: start.Y}, 1)
	dragged := c.Offset()

	c.GoTo(3)
	if c.Index() != 3 {
		t.Fatalf("Index = %d, want 3", c.Index())
	}
	if c.IsAnimating() {
		t.Error("no animation may run while the drag owns the track")
	}
	tester.PumpFor(100 * time.Millisecond)
	if c.Offset() != dragged {
		t.Errorf("track written during drag: %v -> %v", dragged, c.Offset())
	}

	tester.SendPointerUp(gestures.Offset{X: start.X - 20, Y: start.Y}, 1)
	settle(t, tester)
	assertAtRest(t, c)
	if c.Index() != 3 {
		t.Errorf("Index = %d, want 3", c.Index())
	}
}

func TestSecondPointerIgnored(t *testing.T) {
	tester := newTester(t, 3)
	c := tester.Carousel()

	start := tester.Center()
	tester.SendPointerDown(start, 1)
	tester.SendPointerDown(gestures.Offset{X: 10, Y: 10}, 2)
	tester.SendPointerMove(gestures.Offset{X: 390, Y: 10}, 2)
	tester.SendPointerUp(gestures.Offset{X: 390, Y: 10}, 2)

	if !c.IsDragging() || c.Offset() != 0 {
		t.Errorf("second pointer affected the drag: dragging=%v offset=%v", c.IsDragging(), c.Offset())
	}
	tester.SendPointerUp(start, 1)
}

func TestRestInvariantUnderRandomInput(t *testing.T) {
	tester := newTester(t, 7)
	c := tester.Carousel()
	rng := rand.New(rand.NewSource(42))

	for step := range 300 {
		switch rng.Intn(5) {
		case 0:
			c.GoNext()
		case 1:
			c.GoPrev()
		case 2:
			c.GoTo(rng.Intn(11) - 2)
		case 3:
			tester.DragBy((rng.Float64()*2-1)*tester.Width(), (rng.Float64()*2-1)*50)
		case 4:
			tester.PumpFor(time.Duration(rng.Intn(200)) * time.Millisecond)
		}
		if c.Index() < 0 || c.Index() >= c.Count() {
			t.Fatalf("step %d: index %d out of range", step, c.Index())
		}
		if c.Offset() > 0 || c.Offset() < carousel.MinOffset(c.Count()) {
			t.Fatalf("step %d: offset %v out of range", step, c.Offset())
		}
	}
	settle(t, tester)
	assertAtRest(t, c)
}

func TestSnapshot(t *testing.T) {
	items := []carousel.SlideItem{
		{Source: "a.jpg", Alt: "a", Width: 1600, Height: 900},
		{Source: "b.jpg", Alt: "b"},
	}
	tester := carouseltest.NewTester(t, items, carousel.Options{})
	c := tester.Carousel()
	c.GoNext()
	settle(t, tester)

	f := c.Snapshot()
	if f.Index != 1 || f.Count != 2 || !f.CanGoPrev || f.CanGoNext {
		t.Errorf("unexpected frame: %+v", f)
	}
	if !f.Slides[0].HasAspectRatio || f.Slides[1].HasAspectRatio {
		t.Error("aspect ratio should be reserved only for slides with dimensions")
	}
	if !f.Slides[1].Active || f.Slides[0].Active {
		t.Error("slide 1 should be the active one")
	}
	if got := f.SlideX(1, 400); got != 0 {
		t.Errorf("SlideX(1) = %v, want 0 while slide 1 is shown", got)
	}
	if got := f.TrackOffsetPixels(400); got != -400 {
		t.Errorf("TrackOffsetPixels = %v, want -400", got)
	}
}

func TestEmptyCarousel(t *testing.T) {
	tester := newTester(t, 0)
	c := tester.Carousel()

	c.GoNext()
	c.GoPrev()
	c.GoTo(0)
	tester.DragBy(-200, 0)
	tester.Pump()

	if c.Index() != 0 || c.IsDragging() || c.IsAnimating() {
		t.Error("empty carousel should ignore all input")
	}
	f := c.Snapshot()
	if len(f.Dots) != 0 || len(f.Slides) != 0 || f.CanGoNext || f.CanGoPrev {
		t.Errorf("empty frame expected, got %+v", f)
	}
}

func TestGesturesIgnoredWithoutViewport(t *testing.T) {
	c := carousel.New(carouseltest.Slides(3), carousel.Options{})
	defer c.Close()

	c.HandlePointer(&gestures.PointerEvent{Phase: gestures.PointerPhaseDown})
	if c.IsDragging() {
		t.Error("drag started without a viewport width")
	}
}

func TestClose_ReleasesListenersAndAnimation(t *testing.T) {
	router := gestures.NewRouter()
	c := carousel.New(carouseltest.Slides(3), carousel.Options{
		Viewport: func() float64 { return 400 },
		Router:   router,
	})

	c.GoNext()
	c.HandlePointer(&gestures.PointerEvent{PointerID: 1, Phase: gestures.PointerPhaseDown})
	if router.ListenerCount() == 0 {
		t.Fatal("expected drag listeners on the router")
	}

	c.Close()
	c.Close()

	if router.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d after Close", router.ListenerCount())
	}
	if c.IsAnimating() || c.IsDragging() {
		t.Error("Close should cancel animation and drag")
	}
	c.GoNext()
	if c.Index() != 1 {
		t.Errorf("navigation after Close changed index to %d", c.Index())
	}
}

func TestSharedRouterDispatch(t *testing.T) {
	router := gestures.NewRouter()
	c := carousel.New(carouseltest.Slides(3), carousel.Options{
		Viewport: func() float64 { return 400 },
		Router:   router,
	})
	defer c.Close()

	c.HandlePointer(&gestures.PointerEvent{PointerID: 3, Phase: gestures.PointerPhaseDown})
	move := &gestures.PointerEvent{PointerID: 3, Position: gestures.Offset{X: -100}, Phase: gestures.PointerPhaseMove}
	if !router.Dispatch(move) {
		t.Error("host-dispatched move should be claimed")
	}
	router.Dispatch(&gestures.PointerEvent{PointerID: 3, Position: gestures.Offset{X: -100}, Phase: gestures.PointerPhaseUp})
	if c.Index() != 1 {
		t.Errorf("Index = %d, want 1", c.Index())
	}
	if router.ListenerCount() != 0 {
		t.Errorf("listeners leaked after release: %d", router.ListenerCount())
	}
}

func TestInstancesDoNotShareState(t *testing.T) {
	a := newTester(t, 3)
	b := newTester(t, 3)

	a.Carousel().GoNext()
	a.PumpFor(time.Second)

	if b.Carousel().Index() != 0 || b.Carousel().Offset() != 0 {
		t.Error("second carousel changed by the first")
	}
}

func TestOnChange(t *testing.T) {
	tester := newTester(t, 4)
	c := tester.Carousel()
	var got []int
	remove := c.OnChange(func(i int) { got = append(got, i) })

	c.GoNext()
	c.GoNext()
	c.GoTo(2)
	tester.DragBy(-200, 0)
	remove()
	c.GoPrev()

	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("changes = %v, want %v", got, want)
		}
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	carousel.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer carousel.SetLogger(nil)

	tester := newTester(t, 3)
	tester.Carousel().GoNext()
	tester.DragBy(-200, 0)

	out := buf.String()
	for _, want := range []string{"carousel: navigate", "carousel: drag start", "decision=advance"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
