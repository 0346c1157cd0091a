package testing

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/carousel"
)

const (
	// DefaultTestWidth is the default viewport width in pixels.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default viewport height in pixels.
	DefaultTestHeight = 300
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: carousel did not settle")

// Tester mounts a carousel on a fake clock and a fixed-size viewport and
// simulates host input against it.
type Tester struct {
	carousel *carousel.Carousel
	clock    *FakeClock
	width    float64
	height   float64
	pointers map[int]*pointerState
	nextID   int
}

// NewTester mounts a carousel over items. opts.Clock and opts.Viewport are
// replaced by the tester's own. The carousel is closed via t.Cleanup.
func NewTester(t testing.TB, items []carousel.SlideItem, opts carousel.Options) *Tester {
	tester := &Tester{
		clock:    NewFakeClock(),
		width:    DefaultTestWidth,
		height:   DefaultTestHeight,
		pointers: make(map[int]*pointerState),
	}
	opts.Clock = tester.clock
	opts.Viewport = func() float64 { return tester.width }
	tester.carousel = carousel.New(items, opts)
	t.Cleanup(tester.carousel.Close)
	return tester
}

// Slides returns n placeholder slides with 4:3 dimensions.
func Slides(n int) []carousel.SlideItem {
	items := make([]carousel.SlideItem, n)
	for i := range items {
		items[i] = carousel.SlideItem{
			Source: "https://example.com/slide-" + strconv.Itoa(i) + ".jpg",
			Alt:    "slide " + strconv.Itoa(i),
			Width:  800,
			Height: 600,
		}
	}
	return items
}

// Carousel returns the carousel under test.
func (t *Tester) Carousel() *carousel.Carousel {
	return t.carousel
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Width returns the viewport width in pixels.
func (t *Tester) Width() float64 {
	return t.width
}

// SetWidth changes the viewport width. Takes effect at the next drag.
func (t *Tester) SetWidth(w float64) {
	t.width = w
}

// Pump advances the clock by one frame and ticks the carousel.
func (t *Tester) Pump() {
	t.clock.Advance(FrameInterval)
	t.carousel.Tick()
}

// PumpFor pumps frames until d of simulated time has passed.
func (t *Tester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameInterval {
		t.Pump()
	}
}

// PumpAndSettle pumps frames until no animation is in flight or the
// timeout is reached.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for t.carousel.IsAnimating() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		t.Pump()
		elapsed += FrameInterval
	}
	return nil
}

// TapPrev activates the previous button. Returns false, doing nothing,
// when the button is disabled.
func (t *Tester) TapPrev() bool {
	if !t.carousel.CanGoPrev() {
		return false
	}
	t.carousel.GoPrev()
	return true
}

// TapNext activates the next button. Returns false, doing nothing, when
// the button is disabled.
func (t *Tester) TapNext() bool {
	if !t.carousel.CanGoNext() {
		return false
	}
	t.carousel.GoNext()
	return true
}

// TapDot activates indicator dot i.
func (t *Tester) TapDot(i int) {
	t.carousel.GoTo(i)
}
